// Package docker validates generated containerization artifacts before
// they are written: a regex-based security pass over Dockerfile content
// and a YAML well-formedness check for compose output.
package docker

import (
	"regexp"
	"strings"
)

var lintChecks = []struct {
	pattern *regexp.Regexp
	message string
}{
	{regexp.MustCompile(`(?i)FROM\s+\S*:latest`), "Avoid latest tags"},
	{regexp.MustCompile(`(?i)^\s*USER\s+root\b`), "Running as root user"},
	{regexp.MustCompile(`(?i)^\s*ADD\s+`), "Use COPY instead of ADD"},
	{regexp.MustCompile(`(?i)curl\s+[^\n|]*\|`), "Insecure pipe installation"},
}

var apkAddRe = regexp.MustCompile(`(?i)apk\s+add\b`)

// LintDockerfile scans Dockerfile content for insecure constructs and
// returns one warning message per finding category. An empty slice means
// the content passed every check.
func LintDockerfile(content string) []string {
	warnings := make([]string, 0)

	lines := strings.Split(content, "\n")
	for _, check := range lintChecks {
		for _, line := range lines {
			if check.pattern.MatchString(line) {
				warnings = append(warnings, check.message)
				break
			}
		}
	}

	for _, line := range lines {
		if apkAddRe.MatchString(line) && !strings.Contains(line, "--no-cache") {
			warnings = append(warnings, "Missing cache cleanup")
			break
		}
	}

	return warnings
}
