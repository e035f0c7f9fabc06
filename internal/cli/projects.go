package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

// ProjectOptions holds flags for the project add command.
type ProjectOptions struct {
	Title        string
	Description  string
	Roles        []string
	Technologies []string
	BuyURL       string
	Price        float64
}

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage the project catalog",
	}
	cmd.AddCommand(newProjectsListCommand(rootOpts))
	cmd.AddCommand(newProjectsAddCommand(rootOpts))
	cmd.AddCommand(newProjectsDeleteCommand(rootOpts))
	return cmd
}

func newProjectsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List catalog projects",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			projects, err := app.Service.GetProjects(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list projects", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(projects)
			}
			if len(projects) == 0 {
				return f.Success("no projects")
			}
			var b strings.Builder
			for _, p := range projects {
				fmt.Fprintf(&b, "%d\t%s", p.ID, p.Title)
				if p.Price > 0 {
					fmt.Fprintf(&b, "\t%s", f.Money(p.Price))
				}
				b.WriteByte('\n')
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func newProjectsAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProjectOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project to the catalog",
		Long: `Add a project to the catalog. Requires an active admin session.

Example:
  portfolio projects add --title "API Gateway" --description "Edge service" \
    --role backend --role api --tech Go --tech SQLite --price 99.99`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := requireSession(app); err != nil {
				return err
			}
			roles := make([]model.Role, 0, len(opts.Roles))
			for _, r := range opts.Roles {
				roles = append(roles, model.Role(r))
			}
			p := model.Project{
				Title:        opts.Title,
				Description:  opts.Description,
				Roles:        roles,
				Technologies: opts.Technologies,
				BuyURL:       opts.BuyURL,
				Price:        opts.Price,
			}
			if err := app.Service.AddProject(cmd.Context(), p); err != nil {
				return WrapExitError(ExitCommandError, "failed to add project", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("project added")
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "project title (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "project description")
	cmd.Flags().StringArrayVar(&opts.Roles, "role", nil, "project role (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Technologies, "tech", nil, "technology (repeatable)")
	cmd.Flags().StringVar(&opts.BuyURL, "buy-url", "", "purchase link")
	cmd.Flags().Float64Var(&opts.Price, "price", 0, "price in dollars")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectsDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a project from the catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid project id %q", args[0]), err)
			}
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := requireSession(app); err != nil {
				return err
			}
			if err := app.Service.DeleteProject(cmd.Context(), id); err != nil {
				return WrapExitError(ExitCommandError, "failed to delete project", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("project deleted")
		},
	}
}
