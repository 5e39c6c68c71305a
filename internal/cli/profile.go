package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/api"
	"github.com/cinevo/cinevo-cli/internal/guard"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}

			profile, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			store.SetUser(profile)

			fmt.Printf("Email:    %s\n", profile.Email)
			if profile.Fullname != "" {
				fmt.Printf("Name:     %s\n", profile.Fullname)
			}
			if profile.Phone != "" {
				fmt.Printf("Phone:    %s\n", profile.Phone)
			}
			fmt.Printf("Role:     %s\n", profile.Role)
			return nil
		},
	}

	cmd.AddCommand(newProfileUpdateCmd())
	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var update api.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your name, phone number, or password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}
			if update.Fullname == "" && update.Phone == "" && update.Password == "" {
				return fmt.Errorf("nothing to update; pass --fullname, --phone, or --password")
			}

			if err := client.UpdateProfile(cmd.Context(), update); err != nil {
				return err
			}

			// Refresh the cached profile so whoami and persistence see the
			// new values.
			profile, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			store.SetUser(profile)

			fmt.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Fullname, "fullname", "", "Full name")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&update.Password, "password", "", "New password")
	return cmd
}
