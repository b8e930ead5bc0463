package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/portal-comunidad/portal-api/internal/pkg/config"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the environment configuration and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration:\n%w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "backend:        %s\n", cfg.Backend.URL)
		fmt.Fprintf(out, "session cookie: %s\n", cfg.SessionCookieName())
		fmt.Fprintf(out, "service key:    %s\n", presence(cfg.Backend.ServiceKey != ""))
		fmt.Fprintf(out, "site mode:      %s\n", siteModeSource(cfg))
		fmt.Fprintln(out, "configuration OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkConfigCmd)
}

func presence(ok bool) string {
	if ok {
		return "configured"
	}
	return "missing (admin user listing will fail)"
}

func siteModeSource(cfg *config.Config) string {
	if cfg.Redis.Addr != "" {
		// Never print URL credentials.
		if u, err := url.Parse(cfg.Redis.Addr); err == nil && u.Host != "" {
			return "redis " + u.Host
		}
		return "redis " + cfg.Redis.Addr
	}
	return "in-process"
}
