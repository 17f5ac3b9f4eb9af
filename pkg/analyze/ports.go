package analyze

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

var (
	exposeRe = regexp.MustCompile(`EXPOSE\s+(\d+)`)

	// Lexical patterns for port assignments in source code: listen calls,
	// PORT constants, YAML-style keys and bare assignments.
	portPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\.listen\(.*?(\d{4,5})`),
		regexp.MustCompile(`PORT\s*[:=]\s*(\d+)`),
		regexp.MustCompile(`port:\s*(\d+)`),
		regexp.MustCompile(`\bport\s*=\s*(\d+)`),
	}

	sourceExtensions = map[string]bool{
		".js":   true,
		".py":   true,
		".java": true,
		".go":   true,
		".cs":   true,
	}

	// Well-known ports frameworks bind to absent explicit configuration.
	frameworkPorts = map[string]int{
		"node":        3000,
		"react":       3000,
		"express":     3000,
		"django":      8000,
		"flask":       5000,
		"spring-boot": 8080,
		"dotnet":      5000,
	}
)

// detectPorts aggregates candidate ports from the environment, service
// Dockerfiles, source-code patterns and framework defaults, then filters
// the union to the valid range and sorts it.
func (a *Analyzer) detectPorts(ctx *ProjectContext) {
	ports := make(map[int]bool)

	if raw, ok := ctx.EnvVars["PORT"]; ok {
		if p, err := strconv.Atoi(raw); err == nil {
			ports[p] = true
		}
	}

	for _, svc := range ctx.Services {
		content, err := os.ReadFile(svc.Dockerfile)
		if err != nil {
			a.logger.Warn().Err(err).Str("path", svc.Dockerfile).Msg("error reading Dockerfile")
			continue
		}
		for _, m := range exposeRe.FindAllStringSubmatch(string(content), -1) {
			if p, err := strconv.Atoi(m[1]); err == nil {
				ports[p] = true
			}
		}
	}

	for _, file := range ctx.DetectedFiles {
		if !sourceExtensions[filepath.Ext(file)] {
			continue
		}
		content, err := os.ReadFile(file)
		if err != nil {
			a.logger.Debug().Err(err).Str("path", file).Msg("error reading source file")
			continue
		}
		for _, re := range portPatterns {
			for _, m := range re.FindAllStringSubmatch(string(content), -1) {
				if p, err := strconv.Atoi(m[1]); err == nil {
					ports[p] = true
				}
			}
		}
	}

	for _, framework := range ctx.Frameworks {
		if p, ok := frameworkPorts[framework]; ok {
			ports[p] = true
		}
	}

	result := make([]int, 0, len(ports))
	for p := range ports {
		if p >= 1 && p <= 65535 {
			result = append(result, p)
		}
	}
	sort.Ints(result)
	ctx.Ports = result

	a.logger.Info().Ints("ports", ctx.Ports).Msg("detected ports")
}
