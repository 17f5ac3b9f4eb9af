// Package files writes generated artifacts to disk with conflict
// protection.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Writer writes artifacts into a single output directory. Existing files
// are never overwritten unless the writer was created with force.
type Writer struct {
	outputDir string
	force     bool
	logger    zerolog.Logger
}

func NewWriter(outputDir string, force bool, logger zerolog.Logger) *Writer {
	return &Writer{
		outputDir: outputDir,
		force:     force,
		logger:    logger.With().Str("component", "writer").Logger(),
	}
}

// Write stores content under the writer's output directory, creating
// parent directories as needed.
func (w *Writer) Write(filename, content string) error {
	outputPath := filepath.Join(w.outputDir, filename)

	if _, err := os.Stat(outputPath); err == nil && !w.force {
		return fmt.Errorf("%s exists, use --force to overwrite", outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	w.logger.Info().Str("path", outputPath).Msg("generated file")
	return nil
}
