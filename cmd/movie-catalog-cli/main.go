// Package main is the entry point for the movie-catalog-cli application.
// It registers the movie administration commands that create, list, import
// and delete the records served by the web application.
package main

import (
	"fmt"
	"log"

	commands "github.com/MGTheTrain/movie-catalog/cmd/movie-catalog-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "movie-catalog-cli",
		Short: "Movie record administration tool",
		Long: `movie-catalog-cli manages the movie records shown by movie-catalog-web.

It reads the same configuration file as the web application. Set CONFIG_PATH
or pass --config to point it at a different file.`,
	}

	if err := commands.InitMovieCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize movie commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
