package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/config"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newInitCmd(flags *globalFlags) *cobra.Command {
	var (
		pageSize int
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Create a " + config.FileName + " pointing orderdesk at an order-management API. The URL written is --base-url, or the local default.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			baseURL := flags.baseURL
			if baseURL == "" {
				baseURL = domain.DefaultBaseURL
			}
			cfg := domain.ClientConfig{BaseURL: baseURL, PageSize: pageSize}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if pageSize == 0 {
				return fmt.Errorf("page_size: must be between 1 and %d, got 0", domain.MaxPageSize)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", domain.DefaultPageSize, "Default rows per page")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}

func generateConfig(cfg domain.ClientConfig) string {
	return fmt.Sprintf(`# orderdesk configuration
# $%s overrides base_url; --base-url overrides both.

base_url: %s
page_size: %d

# user_agent: orderdesk-admin
`, config.EnvBaseURL, cfg.BaseURL, cfg.PageSize)
}
