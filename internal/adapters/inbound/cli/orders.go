package cli

import (
	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newOrdersCmd(flags *globalFlags) *cobra.Command {
	var (
		filter     domain.OrderFilter
		page       pageFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders",
		Long:  "List orders, optionally filtered by customer and order date (YYYY-MM-DD, inclusive of the start day).",
		Example: `  orderdesk orders --user 7
  orderdesk orders --from 2024-01-01 --to 2024-01-31 --limit 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}
			pager, err := page.pager(sess.cfg)
			if err != nil {
				return err
			}

			ctl := application.NewOrdersController(sess.api, pager.Limit)
			err = ctl.Mount(cmd.Context(), filter, pager)

			st := ctl.State()
			pg := ctl.Pagination()
			return finish(cmd, jsonOutput, listJSON[domain.OrderFilter, domain.OrderSummary]{ListState: st, Pagination: pg},
				func() string { return tui.RenderOrders(st.Rows, listView(st, pg)) }, err)
		},
	}

	cmd.Flags().StringVar(&filter.UserID, "user", "", "Customer (user) ID")
	cmd.Flags().StringVar(&filter.StartDate, "from", "", "Earliest order date, YYYY-MM-DD")
	cmd.Flags().StringVar(&filter.EndDate, "to", "", "Latest order date, YYYY-MM-DD")
	page.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newUsersCmd(flags *globalFlags) *cobra.Command {
	var (
		page       pageFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}
			pager, err := page.pager(sess.cfg)
			if err != nil {
				return err
			}

			ctl := application.NewUsersController(sess.api, pager.Limit)
			err = ctl.Mount(cmd.Context(), domain.UserFilter{}, pager)

			st := ctl.State()
			pg := ctl.Pagination()
			return finish(cmd, jsonOutput, listJSON[domain.UserFilter, domain.User]{ListState: st, Pagination: pg},
				func() string { return tui.RenderUsers(st.Rows, listView(st, pg)) }, err)
		},
	}

	page.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
