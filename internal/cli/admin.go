package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/guard"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

var adminGuard = guard.Requirements{Auth: true, Role: model.RoleAdmin}

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Catalog management and sales reports (admin only)",
	}
	cmd.AddCommand(newAdminDashboardCmd())
	cmd.AddCommand(newAdminMoviesCmd())
	cmd.AddCommand(newAdminAddMovieCmd())
	cmd.AddCommand(newAdminDeleteMovieCmd())
	return cmd
}

func newAdminDashboardCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show ticket sales grouped by movie, genre, or location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(adminGuard); err != nil {
				return err
			}
			switch filter {
			case "movie", "genre", "location":
			default:
				return fmt.Errorf("invalid filter %q (want movie, genre, or location)", filter)
			}

			points, err := client.TicketSales(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				fmt.Println("No sales yet.")
				return nil
			}

			fmt.Printf("Ticket sales by %s\n", filter)
			for _, p := range points {
				fmt.Printf("%-28s  %s\n", p.Name, rupiah(p.Total))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "movie", "Group sales by movie, genre, or location")
	return cmd
}

func newAdminMoviesCmd() *cobra.Command {
	var filter model.MovieFilter

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List the movie catalog for management",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(adminGuard); err != nil {
				return err
			}

			movies, page, err := client.Movies(cmd.Context(), filter)
			if err != nil {
				return err
			}

			fmt.Printf("%-5s  %-32s  %-12s  %s\n", "ID", "TITLE", "RELEASE", "GENRES")
			for _, m := range movies {
				fmt.Printf("%-5d  %-32s  %-12s  %s\n", m.ID, m.Title, m.ReleaseDate, strings.Join(m.Genres, ", "))
			}
			if page != nil {
				fmt.Printf("(page %d of %d, %d movies)\n", page.Page, page.TotalPages, page.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&filter.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&filter.Limit, "limit", 8, "Movies per page")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Filter by title")
	return cmd
}

func newAdminAddMovieCmd() *cobra.Command {
	var movie model.Movie
	var genres, directors, casts string

	cmd := &cobra.Command{
		Use:   "add-movie",
		Short: "Add a movie to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(adminGuard); err != nil {
				return err
			}
			if movie.Title == "" {
				return fmt.Errorf("--title is required")
			}

			movie.Genres = splitList(genres)
			movie.Directors = splitList(directors)
			movie.Casts = splitList(casts)

			created, err := client.CreateMovie(cmd.Context(), movie)
			if err != nil {
				return err
			}

			fmt.Printf("Added %q with id %d\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&movie.Title, "title", "", "Movie title")
	cmd.Flags().StringVar(&movie.Overview, "overview", "", "Synopsis")
	cmd.Flags().StringVar(&genres, "genres", "", "Comma-separated genres")
	cmd.Flags().StringVar(&directors, "directors", "", "Comma-separated directors")
	cmd.Flags().StringVar(&casts, "casts", "", "Comma-separated cast names")
	cmd.Flags().StringVar(&movie.ReleaseDate, "release-date", "", "Release date (yyyy-mm-dd)")
	cmd.Flags().IntVar(&movie.Runtime, "runtime", 0, "Runtime in minutes")
	return cmd
}

func newAdminDeleteMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-movie <movie-id>",
		Short: "Remove a movie from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(adminGuard); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			if err := client.DeleteMovie(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted movie %d\n", id)
			return nil
		},
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
