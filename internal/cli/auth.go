package cli

import (
	"github.com/spf13/cobra"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	Username string
	Password string
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start an admin session",
		Long: `Validate admin credentials against the database and persist the
session flag in the store. Admin-only commands check this flag.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			ok, err := app.Service.Login(cmd.Context(), opts.Username, opts.Password)
			if err != nil {
				return WrapExitError(ExitCommandError, "login failed", err)
			}
			if !ok {
				return NewExitError(ExitFailure, "invalid credentials")
			}
			if err := app.Service.SetAuthSession(true); err != nil {
				return WrapExitError(ExitCommandError, "failed to persist session", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("logged in")
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "admin username (required)")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "admin password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "End the admin session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Service.SetAuthSession(false); err != nil {
				return WrapExitError(ExitCommandError, "failed to clear session", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("logged out")
		},
	}
}
