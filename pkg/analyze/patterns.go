package analyze

import "path/filepath"

// detectPatterns derives architecture signals once the walk is complete.
// More than one registered service means a multi-service topology. Files
// living directly under a conventional service directory add the
// service-directory tag; the nested "src/services" convention is matched
// against the parent's last two path segments, since a single segment can
// never contain a separator.
func (a *Analyzer) detectPatterns(ctx *ProjectContext) {
	if len(ctx.Services) > 1 {
		ctx.ServicePatterns = appendUnique(ctx.ServicePatterns, "microservices")
		a.logger.Info().Msg("detected microservices architecture")
	}

	for _, file := range ctx.DetectedFiles {
		parent := filepath.Dir(file)
		base := filepath.Base(parent)
		tail := filepath.ToSlash(filepath.Join(filepath.Base(filepath.Dir(parent)), base))
		if base == "services" || base == "apps" || tail == "src/services" {
			ctx.ServicePatterns = appendUnique(ctx.ServicePatterns, "service-directory")
			a.logger.Info().Str("directory", base).Msg("found service directory")
		}
	}
}
