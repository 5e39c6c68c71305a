package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

func newMoviesCmd() *cobra.Command {
	var filter model.MovieFilter

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse the movie catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, pageInfo, err := client.Movies(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if len(movies) == 0 {
				fmt.Println("No movies found.")
				return nil
			}

			fmt.Printf("%-5s  %-32s  %-28s  %s\n", "ID", "TITLE", "GENRES", "RATING")
			fmt.Printf("%-5s  %-32s  %-28s  %s\n", "--", "-----", "------", "------")
			for _, m := range movies {
				fmt.Printf("%-5d  %-32s  %-28s  %.1f\n", m.ID, m.Title, strings.Join(m.Genres, ", "), m.VoteAverage)
			}

			if pageInfo != nil {
				fmt.Printf("\n(page %d of %d, %d movies)\n", pageInfo.Page, pageInfo.TotalPages, pageInfo.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "Filter by title")
	cmd.Flags().StringVar(&filter.Genre, "genre", "", "Filter by genre")
	cmd.Flags().IntVar(&filter.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&filter.Limit, "limit", 8, "Movies per page")
	return cmd
}

func newMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movie <id>",
		Short: "Show a movie's detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			movie, err := client.Movie(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d)\n", movie.Title, movie.ID)
			if movie.ReleaseDate != "" {
				fmt.Printf("  Released:  %s\n", movie.ReleaseDate)
			}
			if movie.Runtime > 0 {
				fmt.Printf("  Runtime:   %dm\n", movie.Runtime)
			}
			if movie.VoteAverage > 0 {
				fmt.Printf("  Rating:    %.1f\n", movie.VoteAverage)
			}
			if len(movie.Genres) > 0 {
				fmt.Printf("  Genres:    %s\n", strings.Join(movie.Genres, ", "))
			}
			if len(movie.Directors) > 0 {
				fmt.Printf("  Directors: %s\n", strings.Join(movie.Directors, ", "))
			}
			if len(movie.Casts) > 0 {
				fmt.Printf("  Casts:     %s\n", strings.Join(movie.Casts, ", "))
			}
			if movie.Overview != "" {
				fmt.Printf("\n%s\n", movie.Overview)
			}
			fmt.Printf("\nBook with: cinevo book %d --date <yyyy-mm-dd> --time <hh:mm> --location <city> --cinema <name>\n", movie.ID)
			return nil
		},
	}
}
