package analyze

import (
	"path/filepath"
	"strings"
)

var pythonEntryNames = map[string]bool{
	"app.py":    true,
	"main.py":   true,
	"manage.py": true,
	"wsgi.py":   true,
}

// detectEntryPoints derives likely process entry commands from
// type-specific conventions. Types without a known convention produce
// nothing.
func (a *Analyzer) detectEntryPoints(ctx *ProjectContext) {
	switch ctx.ProjectType {
	case TypeNode:
		for _, file := range ctx.DetectedFiles {
			if filepath.Base(file) != "package.json" {
				continue
			}
			pkg, err := a.readPackageJSON(file)
			if err != nil {
				a.logger.Warn().Err(err).Str("path", file).Msg("error reading package.json")
				continue
			}
			if pkg.Main != "" {
				ctx.EntryPoints = appendUnique(ctx.EntryPoints, pkg.Main)
			}
			if start, ok := pkg.Scripts["start"]; ok {
				ctx.EntryPoints = appendUnique(ctx.EntryPoints, start)
			}
		}
	case TypePython:
		for _, file := range ctx.DetectedFiles {
			if pythonEntryNames[filepath.Base(file)] {
				ctx.EntryPoints = appendUnique(ctx.EntryPoints, file)
			}
		}
	case TypeJava:
		for _, file := range ctx.DetectedFiles {
			if strings.HasSuffix(file, "Application.java") || strings.HasSuffix(file, "Main.java") {
				ctx.EntryPoints = appendUnique(ctx.EntryPoints, file)
			}
		}
	}

	a.logger.Info().Strs("entry_points", ctx.EntryPoints).Msg("detected entry points")
}
