package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

// PostOptions holds flags for the post add command.
type PostOptions struct {
	Title    string
	Excerpt  string
	Date     string
	ReadTime string
	Category string
	URL      string
}

// NewPostsCommand creates the posts command group.
func NewPostsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage blog posts",
	}
	cmd.AddCommand(newPostsListCommand(rootOpts))
	cmd.AddCommand(newPostsAddCommand(rootOpts))
	cmd.AddCommand(newPostsDeleteCommand(rootOpts))
	return cmd
}

func newPostsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List blog posts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			posts, err := app.Service.GetBlogPosts(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list posts", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(posts)
			}
			if len(posts) == 0 {
				return f.Success("no posts")
			}
			var b strings.Builder
			for _, p := range posts {
				fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", p.ID, p.Date, p.Category, p.Title)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func newPostsAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PostOptions{}

	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Publish a blog post",
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
			post := model.BlogPost{
				Title:    opts.Title,
				Excerpt:  opts.Excerpt,
				Date:     opts.Date,
				ReadTime: opts.ReadTime,
				Category: opts.Category,
				URL:      opts.URL,
			}
			if err := app.Service.AddBlogPost(cmd.Context(), post); err != nil {
				return WrapExitError(ExitCommandError, "failed to add post", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("post published")
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "post title (required)")
	cmd.Flags().StringVar(&opts.Excerpt, "excerpt", "", "short summary")
	cmd.Flags().StringVar(&opts.Date, "date", "", "publication date")
	cmd.Flags().StringVar(&opts.URL, "url", "", "external article link")
	cmd.Flags().StringVar(&opts.ReadTime, "read-time", "", "estimated read time, e.g. \"5 min\"")
	cmd.Flags().StringVar(&opts.Category, "category", "", "post category")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPostsDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a blog post",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid post id %q", args[0]), err)
			}
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := requireSession(app); err != nil {
				return err
			}
			if err := app.Service.DeleteBlogPost(cmd.Context(), id); err != nil {
				return WrapExitError(ExitCommandError, "failed to delete post", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("post deleted")
		},
	}
}
