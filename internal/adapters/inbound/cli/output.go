package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// listJSON is the --json shape of every list command.
type listJSON[F domain.Filter, R any] struct {
	application.ListState[F, R]
	Pagination domain.Pagination `json:"pagination"`
}

type pageFlags struct {
	limit int
	page  int
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.limit, "limit", 0, "Rows per page (default from config, usually 10)")
	cmd.Flags().IntVar(&p.page, "page", 1, "Page number, starting at 1")
}

// pager builds the requested window, falling back to the configured page size.
func (p *pageFlags) pager(cfg domain.ClientConfig) (domain.Pager, error) {
	limit := p.limit
	if limit == 0 {
		limit = cfg.PageSize
	}
	if limit < 1 || limit > domain.MaxPageSize {
		return domain.Pager{}, domain.Invalidf("--limit must be between 1 and %d", domain.MaxPageSize)
	}
	if p.page < 1 {
		return domain.Pager{}, domain.Invalidf("--page must be 1 or greater")
	}
	pager := domain.NewPager(limit)
	pager.SeekPage(p.page)
	return pager, nil
}

func listView[F domain.Filter, R any](st application.ListState[F, R], pg domain.Pagination) tui.ListView {
	return tui.ListView{Loading: st.Loading, Error: st.Error, Pagination: pg}
}

// finish writes either the JSON state or the rendered screen, then hands back
// err marked as already shown.
func finish(cmd *cobra.Command, jsonOutput bool, state any, render func() string, err error) error {
	if jsonOutput {
		if encErr := renderJSON(cmd, state); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), render())
	}
	return shown(err)
}
