// Package analyze implements the project-introspection engine: a
// single-pass heuristic classifier that walks a project tree and produces
// a ProjectContext describing its technology stack. Detection is purely
// lexical (file names, manifests, regex scans); it never executes builds
// or resolves dependencies.
package analyze

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Analyzer walks project trees and classifies what it finds. It holds no
// per-project state; every Analyze call owns its own ProjectContext.
type Analyzer struct {
	logger zerolog.Logger
}

// NewAnalyzer creates an analyzer that logs through the given logger.
func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		logger: logger.With().Str("component", "analyzer").Logger(),
	}
}

// Directories pruned during the walk. Matched against the base name only.
var skipDirs = map[string]bool{
	"node_modules": true,
	"venv":         true,
	".git":         true,
}

// Analyze walks root and returns the populated ProjectContext. A missing
// or unreadable root is fatal; failures on individual files inside the
// tree are logged and never abort the walk.
func (a *Analyzer) Analyze(root string) (*ProjectContext, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", root)
	}

	ctx := NewProjectContext()

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			a.logger.Warn().Err(walkErr).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		ctx.DetectedFiles = append(ctx.DetectedFiles, path)
		a.inspectFile(path, d.Name(), ctx)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	a.detectPatterns(ctx)
	a.detectEntryPoints(ctx)
	a.detectPorts(ctx)

	a.logger.Info().
		Str("project_type", string(ctx.ProjectType)).
		Strs("frameworks", ctx.Frameworks).
		Int("services", len(ctx.Services)).
		Int("files", len(ctx.DetectedFiles)).
		Msg("project analysis completed")

	return ctx, nil
}

// inspectFile runs the per-file detectors: project-type markers, framework
// sniffing, env files and Dockerfiles. Multiple markers across the tree
// resolve last-writer-wins in walk order; see the package tests for the
// pinned behavior.
func (a *Analyzer) inspectFile(path, name string, ctx *ProjectContext) {
	switch {
	case name == "package.json":
		ctx.ProjectType = TypeNode
		a.sniffNodeFrameworks(path, ctx)
	case name == "requirements.txt":
		ctx.ProjectType = TypePython
		a.sniffPythonFrameworks(path, ctx)
	case name == "pom.xml":
		ctx.ProjectType = TypeJava
		a.sniffJavaFrameworks(path, ctx)
	case name == "go.mod":
		ctx.ProjectType = TypeGo
	case strings.HasSuffix(name, ".csproj"):
		ctx.ProjectType = TypeDotnet
	}

	switch name {
	case ".env":
		for k, v := range a.parseEnvFile(path) {
			ctx.EnvVars[k] = v
		}
	case "Dockerfile":
		a.registerService(path, ctx)
	}
}

// packageJSON is the subset of package.json the engine cares about.
type packageJSON struct {
	Main         string            `json:"main"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

func (a *Analyzer) readPackageJSON(path string) (*packageJSON, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (a *Analyzer) sniffNodeFrameworks(path string, ctx *ProjectContext) {
	pkg, err := a.readPackageJSON(path)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("error reading package.json")
		return
	}
	if _, ok := pkg.Dependencies["react"]; ok {
		ctx.addFramework("react")
	}
	if _, ok := pkg.Dependencies["express"]; ok {
		ctx.addFramework("express")
	}
}

func (a *Analyzer) sniffPythonFrameworks(path string, ctx *ProjectContext) {
	content, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("error reading requirements.txt")
		return
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return strings.ContainsRune("><=~![; ", r)
		})
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "django":
			ctx.addFramework("django")
		case "flask":
			ctx.addFramework("flask")
		}
	}
}

func (a *Analyzer) sniffJavaFrameworks(path string, ctx *ProjectContext) {
	content, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("error reading pom.xml")
		return
	}
	if strings.Contains(string(content), "spring-boot") {
		ctx.addFramework("spring-boot")
	}
}

// registerService records one docker service keyed by the parent directory
// name. A second Dockerfile under a same-named directory overwrites the
// first.
func (a *Analyzer) registerService(dockerfile string, ctx *ProjectContext) {
	dir := filepath.Dir(dockerfile)
	name := filepath.Base(dir)
	ctx.Services[name] = Service{
		Kind:       "docker",
		Path:       dir,
		Dockerfile: dockerfile,
	}
	a.logger.Info().Str("service", name).Msg("registered docker service")
}
