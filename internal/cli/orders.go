package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Review and resolve customer orders",
	}
	cmd.AddCommand(newOrdersListCommand(rootOpts))
	cmd.AddCommand(newOrdersSetStatusCommand(rootOpts, "approve", model.StatusApproved))
	cmd.AddCommand(newOrdersSetStatusCommand(rootOpts, "reject", model.StatusRejected))
	return cmd
}

func newOrdersListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List orders, newest first",
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
			orders, err := app.Service.GetOrders(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list orders", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(orders)
			}
			if len(orders) == 0 {
				return f.Success("no orders")
			}
			var b strings.Builder
			for _, o := range orders {
				fmt.Fprintf(&b, "%d\t%s\t%s\t%s\t%s\n",
					o.ID, o.Status, o.CustomerName, f.Money(o.TotalAmount), o.Date)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func newOrdersSetStatusCommand(rootOpts *RootOptions, verb string, status model.OrderStatus) *cobra.Command {
	return &cobra.Command{
		Use:           verb + " <id>",
		Short:         cases.Title(language.English).String(verb) + " an order",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid order id %q", args[0]), err)
			}
			app, err := openApp(rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := requireSession(app); err != nil {
				return err
			}
			if err := app.Service.UpdateOrderStatus(cmd.Context(), id, status); err != nil {
				return WrapExitError(ExitCommandError, "failed to update order", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success(fmt.Sprintf("order %d %s", id, status))
		},
	}
}
