package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newProductsCmd(flags *globalFlags) *cobra.Command {
	var (
		filter     domain.ProductFilter
		page       pageFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Long:  "List products, optionally filtered by category, search text and price range.",
		Example: `  orderdesk products --q lamp
  orderdesk products --category 3 --min-price 5 --max-price 20 --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}
			pager, err := page.pager(sess.cfg)
			if err != nil {
				return err
			}

			ctl := application.NewProductsController(sess.api, pager.Limit)
			if !jsonOutput {
				ctl.LoadCategories(cmd.Context())
			}
			err = ctl.Mount(cmd.Context(), filter, pager)

			st := ctl.State()
			pg := ctl.Pagination()
			return finish(cmd, jsonOutput, listJSON[domain.ProductFilter, domain.Product]{ListState: st, Pagination: pg},
				func() string { return tui.RenderProducts(st.Rows, listView(st, pg), ctl.CategoryName) }, err)
		},
	}

	cmd.Flags().StringVar(&filter.CategoryID, "category", "", "Category ID")
	cmd.Flags().StringVar(&filter.Query, "q", "", "Search text")
	cmd.Flags().StringVar(&filter.MinPrice, "min-price", "", "Minimum price")
	cmd.Flags().StringVar(&filter.MaxPrice, "max-price", "", "Maximum price")
	page.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCategoriesCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}
			cats := application.NewProductsController(sess.api, sess.cfg.PageSize).LoadCategories(cmd.Context())
			if jsonOutput {
				return renderJSON(cmd, domain.ItemList[domain.Category]{Items: cats})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCategories(cats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
