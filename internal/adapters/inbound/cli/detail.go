package cli

import (
	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
)

func newOrderCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "order <id>",
		Short: "Show one order with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}

			ctl := application.NewOrderDetailController(sess.api)
			err = ctl.Load(cmd.Context(), args[0])

			st := ctl.State()
			return finish(cmd, jsonOutput, st,
				func() string { return tui.RenderOrderDetail(st.View(), st.Entity, st.Error) }, err)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newProductCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}

			ctl := application.NewProductDetailController(sess.api)
			err = ctl.Load(cmd.Context(), args[0])

			st := ctl.State()
			return finish(cmd, jsonOutput, st,
				func() string { return tui.RenderProductDetail(st.View(), st.Entity, st.Error) }, err)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
