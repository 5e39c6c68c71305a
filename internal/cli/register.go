package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new Cinevo account",
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

			if err := client.Register(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Printf("Account created for %s. Run \"cinevo login\" to sign in.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}

			if err := client.ForgotPassword(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Println("OTP sent. Use \"cinevo reset-password\" with the code from your email.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	return cmd
}

func newResetPasswordCmd() *cobra.Command {
	var email, otp, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using a reset OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if otp == "" {
				if otp, err = prompt("OTP: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("New password: "); err != nil {
					return err
				}
			}

			if err := client.ResetPassword(cmd.Context(), email, otp, password); err != nil {
				return err
			}
			fmt.Println("Password reset. Log in with your new password.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&otp, "otp", "", "Reset code from the email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "New password (prompted if omitted)")
	return cmd
}
