// Package cmd wires the docker-gen CLI: project analysis, artifact
// generation and a connectivity check.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docker-gen",
	Short: "AI-powered containerization artifact generator",
	Long: `docker-gen inspects a project directory, infers its technology stack,
and generates a Dockerfile, docker-compose.yml and Docker README for it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(testCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. Debug output is gated by
// --verbose; everything is mirrored into docker-gen.log when the file is
// writable.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	writer := io.Writer(console)
	if f, err := os.OpenFile("docker-gen.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		writer = zerolog.MultiLevelWriter(console, f)
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}

// projectDir resolves the optional positional project directory argument,
// defaulting to the working directory.
func projectDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return dir, nil
}
