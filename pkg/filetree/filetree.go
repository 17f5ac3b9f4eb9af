// Package filetree renders a project's file layout as text for inclusion
// in LLM prompts, honoring the project's .gitignore plus a default ignore
// list.
package filetree

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

var defaultIgnores = []string{
	"node_modules/",
	"vendor/",
	"venv/",
	"__pycache__/",
	".git/",
	".idea/",
	".vscode/",
	".DS_Store",
	"*.log",
	"*.secret",
}

// Render walks root and returns one relative path per line, skipping
// anything matched by .gitignore or the default ignore patterns.
func Render(root string) (string, error) {
	var buffer bytes.Buffer

	ignorePatterns := defaultIgnores
	if content, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		ignorePatterns = append(ignorePatterns, strings.Split(string(content), "\n")...)
	}
	matcher := ignore.CompileIgnoreLines(ignorePatterns...)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		if matcher.MatchesPath(relPath) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		buffer.WriteString(relPath + "\n")
		return nil
	})
	if err != nil {
		return "", err
	}

	return buffer.String(), nil
}
