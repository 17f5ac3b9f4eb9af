package analyze

import (
	"bufio"
	"os"
	"strings"
)

// parseEnvFile reads a .env file into key-value pairs. Blank lines and
// comment lines are skipped; values are split on the first '=' only, both
// sides trimmed, and one layer of matching surrounding quotes stripped
// from the value. Read failures degrade to an empty result.
func (a *Analyzer) parseEnvFile(path string) map[string]string {
	envVars := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("error parsing env file")
		return envVars
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		envVars[strings.TrimSpace(key)] = stripQuotes(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("error parsing env file")
	}

	return envVars
}

// stripQuotes removes exactly one layer of matching single or double
// quotes. Mismatched pairs are left untouched.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '\'' || first == '"') {
		return s[1 : len(s)-1]
	}
	return s
}
