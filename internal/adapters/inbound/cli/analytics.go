package cli

import (
	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newAnalyticsCmd(flags *globalFlags) *cobra.Command {
	var (
		window     domain.SalesWindow
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Chart daily sales",
		Long:  "Chart total sales per day, optionally limited to a date range (YYYY-MM-DD).",
		Example: `  orderdesk analytics
  orderdesk analytics --from 2024-01-01 --to 2024-01-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}

			ctl := application.NewAnalyticsController(sess.api)
			ctl.SetWindow(window)
			err = ctl.Apply(cmd.Context())

			st := ctl.State()
			return finish(cmd, jsonOutput, st, func() string {
				return tui.RenderSales(tui.SalesView{
					Loading: st.Loading,
					Error:   st.Error,
					Window:  st.Window,
					Series:  st.Series,
				})
			}, err)
		},
	}

	cmd.Flags().StringVar(&window.StartDate, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&window.EndDate, "to", "", "Last day, YYYY-MM-DD")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
