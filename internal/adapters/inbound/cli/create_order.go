package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newCreateOrderCmd(flags *globalFlags) *cobra.Command {
	var (
		userID     string
		status     string
		items      []string
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "create-order",
		Short: "Create an order",
		Long: `Create an order for a customer. Each --item is PRODUCT_ID[:QUANTITY];
quantity defaults to 1 and a product may appear only once.`,
		Example: `  orderdesk create-order --user 7 --item 5:2 --item 9
  orderdesk create-order --user 7 --status paid --item 5 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := domain.ParseOrderStatus(status)
			if err != nil {
				return err
			}

			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}

			ctl := application.NewCreateOrderController(sess.api)
			ctl.SetUserID(userID)
			ctl.SetStatus(st)
			if err := fillDraft(ctl, items); err != nil {
				return err
			}

			if dryRun {
				draft := ctl.State().Draft
				_, err := draft.Build()
				return finish(cmd, jsonOutput, ctl.State(), func() string {
					out := tui.RenderDraft(draft)
					if err != nil {
						out += tui.RenderError(domain.MessageOf(err))
					}
					return out
				}, err)
			}

			draft := ctl.State().Draft
			order, err := ctl.Submit(cmd.Context())
			state := ctl.State()
			return finish(cmd, jsonOutput, state, func() string {
				if order != nil {
					return tui.RenderOrderCreated(order)
				}
				return tui.RenderDraft(draft) + tui.RenderError(state.Error)
			}, err)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Customer (user) ID")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusPending), "Order status ("+domain.StatusNames()+")")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Line item as PRODUCT_ID[:QUANTITY], repeatable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and show the draft without creating the order")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// fillDraft turns --item values into draft rows, one row per value.
func fillDraft(ctl *application.CreateOrderController, items []string) error {
	for i, raw := range items {
		productID, qty, found := strings.Cut(raw, ":")
		if !found {
			qty = "1"
		}
		if i > 0 {
			ctl.AddItem()
		}
		if err := ctl.UpdateItem(i, domain.FieldProductID, strings.TrimSpace(productID)); err != nil {
			return fmt.Errorf("--item %q: %w", raw, err)
		}
		if err := ctl.UpdateItem(i, domain.FieldQuantity, strings.TrimSpace(qty)); err != nil {
			return fmt.Errorf("--item %q: %w", raw, err)
		}
	}
	return nil
}
