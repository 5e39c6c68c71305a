package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/auth"
	"github.com/cinevo/cinevo-cli/internal/guard"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Cinevo",
		Long:  "Authenticate against the Cinevo service and store the session locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			token, err := client.Login(ctx, email, password)
			if err != nil {
				return err
			}

			claims := auth.Parse(token)
			profile, err := client.WithToken(token).Profile(ctx)
			if err != nil {
				return err
			}

			role := profile.Role
			if role == "" {
				role = claims.Role
			}
			store.SetSession(model.Session{Token: token, Role: role, TokenExp: claims.Expiry})
			store.SetUser(profile)

			fmt.Printf("Logged in as %s (%s)\n", profile.Email, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sess := store.Session(); !sess.IsAuthenticated() {
				fmt.Println("Not logged in.")
				return nil
			}
			store.ClearSession()
			store.ClearUser()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}

			sess := store.Session()
			user := store.User()
			fmt.Printf("Email: %s\n", user.Email)
			fmt.Printf("Role:  %s\n", sess.Role)
			if !sess.TokenExp.IsZero() {
				fmt.Printf("Token expires %s\n", humanize.Time(sess.TokenExp))
			}
			return nil
		},
	}
}

// prompt reads one trimmed line from stdin.
func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
