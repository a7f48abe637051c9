// cmd/banking/configcmd.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"onlinebanking/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var system bool
	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				p, err := config.Path(system)
				if err != nil {
					return err
				}
				target = p
			}
			if err := config.Write(target, config.Defaults()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system-wide file instead of the per-user one")
	initCmd.Flags().StringVar(&path, "path", "", "write to this path")
	cmd.AddCommand(initCmd)
	return cmd
}
