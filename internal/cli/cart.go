package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fsince94/PortfolioApp/internal/cart"
	"github.com/Fsince94/PortfolioApp/internal/model"
)

// CheckoutOptions holds flags for the cart checkout command.
type CheckoutOptions struct {
	Name      string
	Email     string
	Method    string
	Reference string
}

// NewCartCommand creates the cart command group.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(newCartListCommand(rootOpts))
	cmd.AddCommand(newCartAddCommand(rootOpts))
	cmd.AddCommand(newCartRemoveCommand(rootOpts))
	cmd.AddCommand(newCartClearCommand(rootOpts))
	cmd.AddCommand(newCartCheckoutCommand(rootOpts))
	return cmd
}

func newCartListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "Show cart contents and total",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			items := app.Cart.Items()
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(map[string]interface{}{
					"items": items,
					"total": app.Cart.Total(),
				})
			}
			if len(items) == 0 {
				return f.Success("cart is empty")
			}
			var b strings.Builder
			for _, item := range items {
				fmt.Fprintf(&b, "%d\t%s\tx%d\t%s\n",
					item.ID, item.Title, item.Quantity, f.Money(item.Price*float64(item.Quantity)))
			}
			fmt.Fprintf(&b, "total\t%s\n", f.Money(app.Cart.Total()))
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func newCartAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <project-id>",
		Short: "Add a catalog project to the cart",
		Long: `Add a catalog project to the cart by id. Adding a project that is
already in the cart increments its quantity.`,
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

			projects, err := app.Service.GetProjects(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load catalog", err)
			}
			var found *model.Project
			for i := range projects {
				if projects[i].ID == id {
					found = &projects[i]
					break
				}
			}
			if found == nil {
				return NewExitError(ExitFailure, fmt.Sprintf("project %d not found", id))
			}
			if err := app.Cart.Add(*found); err != nil {
				return WrapExitError(ExitCommandError, "failed to add to cart", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success(fmt.Sprintf("added %q to cart", found.Title))
		},
	}
}

func newCartRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <project-id>",
		Short:         "Remove a project from the cart",
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

			if err := app.Cart.Remove(id); err != nil {
				return WrapExitError(ExitCommandError, "failed to update cart", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("removed from cart")
		},
	}
}

func newCartClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Empty the cart",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Cart.Clear(); err != nil {
				return WrapExitError(ExitCommandError, "failed to clear cart", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success("cart cleared")
		},
	}
}

func newCartCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckoutOptions{}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart contents",
		Long: `Place an order for the current cart contents. The order is recorded
with pending status for later review, and the cart is cleared.

Example:
  portfolio cart checkout --name "Ada Lovelace" --email ada@example.com \
    --method binance --reference TX12345`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			info := cart.CheckoutInfo{
				CustomerName:     opts.Name,
				CustomerEmail:    opts.Email,
				PaymentMethod:    model.PaymentMethod(opts.Method),
				PaymentReference: opts.Reference,
			}
			total := app.Cart.Total()
			if err := app.Cart.Checkout(cmd.Context(), info); err != nil {
				return WrapExitError(ExitFailure, "checkout failed", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(map[string]interface{}{"total": total})
			}
			return f.Success(fmt.Sprintf("order placed for %s", f.Money(total)))
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "customer name (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "customer email (required)")
	cmd.Flags().StringVar(&opts.Method, "method", "", "payment method (pago_movil|binance|kontigo)")
	cmd.Flags().StringVar(&opts.Reference, "reference", "", "payment reference")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
