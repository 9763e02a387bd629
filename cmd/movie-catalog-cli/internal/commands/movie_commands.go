package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"

	"github.com/spf13/cobra"
)

// DefaultConfigPath is used when neither --config nor CONFIG_PATH is given.
const DefaultConfigPath = "configs/web-app.yaml"

// MovieCommandHandler encapsulates logic for managing movie records via CLI.
type MovieCommandHandler struct {
	newService ServiceFactory
	service    movies.MovieAdminService
	release    func() error
}

// NewMovieCommandHandler creates a handler opening its store through newService.
func NewMovieCommandHandler(newService ServiceFactory) *MovieCommandHandler {
	return &MovieCommandHandler{newService: newService}
}

func (handler *MovieCommandHandler) connect(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}

	service, release, err := handler.newService(configPath)
	if err != nil {
		return err
	}

	handler.service = service
	handler.release = release
	return nil
}

func (handler *MovieCommandHandler) disconnect() error {
	if handler.release == nil {
		return nil
	}
	release := handler.release
	handler.release = nil
	return release()
}

// withStore releases the store opened by connect once run returns, on success and failure.
func (handler *MovieCommandHandler) withStore(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if releaseErr := handler.disconnect(); releaseErr != nil && err == nil {
				err = fmt.Errorf("failed to close store: %w", releaseErr)
			}
		}()
		return run(cmd, args)
	}
}

// AddMovieCmd stores a new movie and prints its ID
func (handler *MovieCommandHandler) AddMovieCmd(cmd *cobra.Command, _ []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	imageURL, _ := cmd.Flags().GetString("image-url")
	url, _ := cmd.Flags().GetString("url")

	movie, err := handler.service.Add(cmd.Context(), title, description, imageURL, url)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), movie.ID)
	return nil
}

// ListMoviesCmd prints the movies whose title contains --search, or all movies
func (handler *MovieCommandHandler) ListMoviesCmd(cmd *cobra.Command, _ []string) error {
	search, _ := cmd.Flags().GetString("search")

	movieList, err := handler.service.List(cmd.Context(), movies.NewMovieQuery(search))
	if err != nil {
		return err
	}

	return printMovies(cmd.OutOrStdout(), movieList)
}

// GetMovieCmd prints a single movie
func (handler *MovieCommandHandler) GetMovieCmd(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")

	movie, err := handler.service.GetByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:          %s\n", movie.ID)
	fmt.Fprintf(out, "Title:       %s\n", movie.Title)
	fmt.Fprintf(out, "Description: %s\n", movie.Description)
	fmt.Fprintf(out, "Image:       %s\n", movie.ImageURL)
	fmt.Fprintf(out, "URL:         %s\n", movie.URL)
	fmt.Fprintf(out, "Created:     %s\n", movie.DateTimeCreated.Format("2006-01-02 15:04:05"))
	return nil
}

// DeleteMovieCmd removes a movie by ID
func (handler *MovieCommandHandler) DeleteMovieCmd(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")

	if err := handler.service.DeleteByID(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "deleted", id)
	return nil
}

// ImportMoviesCmd adds every movie of a YAML file; "-" reads stdin
func (handler *MovieCommandHandler) ImportMoviesCmd(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	created, err := handler.service.Import(cmd.Context(), r)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d movies\n", len(created))
	return err
}

func printMovies(w io.Writer, movieList []*movies.Movie) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tURL")
	for _, m := range movieList {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Title, m.URL)
	}
	return tw.Flush()
}

// NewMovieCommand builds the "movies" command group.
func NewMovieCommand(newService ServiceFactory) *cobra.Command {
	handler := NewMovieCommandHandler(newService)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	moviesCmd := &cobra.Command{
		Use:                "movies",
		Short:              "Manage movie records",
		PersistentPreRunE: handler.connect,
		SilenceUsage:      true,
	}
	moviesCmd.PersistentFlags().StringP("config", "c", configPath, "Path to the configuration file")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie",
		Args:  cobra.NoArgs,
		RunE:  handler.withStore(handler.AddMovieCmd),
	}
	addCmd.Flags().StringP("title", "t", "", "Movie title")
	addCmd.Flags().StringP("description", "d", "", "Movie description")
	addCmd.Flags().StringP("image-url", "", "", "Poster image URL")
	addCmd.Flags().StringP("url", "", "", "Movie link")
	_ = addCmd.MarkFlagRequired("title")
	moviesCmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List movies, optionally filtered by a title substring",
		Args:  cobra.NoArgs,
		RunE:  handler.withStore(handler.ListMoviesCmd),
	}
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive title substring")
	moviesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show a movie",
		Args:  cobra.NoArgs,
		RunE:  handler.withStore(handler.GetMovieCmd),
	}
	getCmd.Flags().StringP("id", "", "", "Movie ID")
	_ = getCmd.MarkFlagRequired("id")
	moviesCmd.AddCommand(getCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a movie",
		Args:  cobra.NoArgs,
		RunE:  handler.withStore(handler.DeleteMovieCmd),
	}
	deleteCmd.Flags().StringP("id", "", "", "Movie ID")
	_ = deleteCmd.MarkFlagRequired("id")
	moviesCmd.AddCommand(deleteCmd)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import movies from a YAML list",
		Args:  cobra.NoArgs,
		RunE:  handler.withStore(handler.ImportMoviesCmd),
	}
	importCmd.Flags().StringP("file", "f", "", "YAML file with a list of movies, - for stdin")
	_ = importCmd.MarkFlagRequired("file")
	moviesCmd.AddCommand(importCmd)

	return moviesCmd
}

// InitMovieCommands registers the movie commands backed by the configured store.
func InitMovieCommands(rootCmd *cobra.Command) error {
	rootCmd.AddCommand(NewMovieCommand(NewStoreServiceFactory()))
	return nil
}
