package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Initialize the database and seed the catalog",
		Long: `Initialize the embedded database, creating the schema and seeding the
default catalog on first run. Subsequent runs are no-ops: existing data,
including the snapshot persisted in the store, is left untouched.

Example:
  portfolio seed
  portfolio seed --store ./portfolio.json --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Service.Init(cmd.Context()); err != nil {
				return WrapExitError(ExitCommandError, "failed to initialize database", err)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			projects, err := app.Service.GetProjects(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read catalog", err)
			}
			posts, err := app.Service.GetBlogPosts(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read blog posts", err)
			}
			if rootOpts.Format == "json" {
				return f.Success(map[string]int{
					"projects": len(projects),
					"posts":    len(posts),
				})
			}
			return f.Success(fmt.Sprintf("database ready: %d projects, %d posts", len(projects), len(posts)))
		},
	}
	return cmd
}
