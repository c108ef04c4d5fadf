package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	config := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the client configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(*configFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields("Setting", [][2]string{
				{"api_url", cfg.APIURL},
				{"session_file", cfg.SessionFile},
			}))
			return nil
		},
	}

	var path, apiURL string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				target = defaultConfigPath()
			}
			if err := writeSampleConfig(target, &cliConfig{APIURL: apiURL}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", target)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Destination path")
	initCmd.Flags().StringVar(&apiURL, "url", defaultAPIURL, "API base URL to store")

	config.AddCommand(show, initCmd)
	return config
}
