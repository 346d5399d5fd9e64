package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newHealthCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}

			status, err := application.Ping(cmd.Context(), sess.api)
			if jsonOutput {
				out := map[string]string{"base_url": sess.api.BaseURL(), "status": status}
				if err != nil {
					out["error"] = domain.MessageOf(err)
				}
				if encErr := renderJSON(cmd, out); encErr != nil {
					return encErr
				}
				return shown(err)
			}
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderError(domain.MessageOf(err)))
				return shown(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHealth(sess.api.BaseURL(), status))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
