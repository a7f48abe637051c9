// cmd/banking/export.go
package main

import (
	"github.com/spf13/cobra"

	"onlinebanking/internal/config"
	"onlinebanking/internal/logging"
	"onlinebanking/internal/storage"
)

// newExportCmd 將目前的帳戶表匯出成 JSON 快照；未指定 --out 時寫到 stdout。
func newExportCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBank(*cfg)
			if err != nil {
				return err
			}
			snap := b.Snapshot()
			if out == "" {
				return storage.EncodeSnapshot(cmd.OutOrStdout(), snap)
			}
			if err := storage.SaveSnapshot(out, snap); err != nil {
				return err
			}
			logging.Infof("exported %d account(s) to %s", len(snap.Accounts), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the snapshot to this file instead of stdout")
	return cmd
}
