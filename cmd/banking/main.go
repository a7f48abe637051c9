// cmd/banking/main.go

// banking 是帳戶帳本的命令列程式。
// 不帶子命令時啟動互動式選單；另提供 export 與 config init 子命令。
// 所有變更在操作當下就已寫入資料檔，因此收到 SIGINT/SIGTERM 時可直接結束。
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"onlinebanking/internal/bank"
	"onlinebanking/internal/config"
	"onlinebanking/internal/console"
	"onlinebanking/internal/credential"
	"onlinebanking/internal/logging"
	"onlinebanking/internal/storage"
)

var version = "dev" // 由 linker 設定

func main() {
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logging.Infof("interrupted; every change is already saved")
		os.Exit(0)
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 建立根命令；測試可建立獨立的實例。
func newRootCmd() *cobra.Command {
	var cfgFile string
	var debug bool
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "banking",
		Short: "Single-user account ledger with a flat-file backing store.",
		Long: `banking keeps a bounded table of accounts in memory and rewrites the
whole data file after every change. Running without a subcommand starts the
interactive menu.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logging.SetLevel(cfg.Log.Level); err != nil {
				return err
			}
			if debug {
				logging.SetDebug(true)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: banking.yaml in the user config dir, /etc/banking or .)")
	pf.String("data-file", "", "path of the account data file")
	pf.Int("capacity", 0, "maximum number of accounts")
	pf.String("storage-format", "", `data file format ("text" or "json")`)
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, cfg)
		},
	})
	cmd.AddCommand(newExportCmd(&cfg))
	cmd.AddCommand(newConfigCmd())
	return cmd
}

func runShell(cmd *cobra.Command, cfg config.Config) error {
	b, err := openBank(cfg)
	if err != nil {
		return err
	}
	return console.New(b, cmd.InOrStdin(), cmd.OutOrStdout()).Run(context.Background())
}

// openBank 依設定選擇後端並載入帳戶表。
func openBank(cfg config.Config) (*bank.Bank, error) {
	var backend storage.Backend
	switch cfg.Storage.Format {
	case config.FormatJSON:
		backend = storage.NewJSONSnapshot(cfg.DataFile)
	default:
		backend = storage.NewFlatFile(cfg.DataFile)
	}
	opts := bank.Options{
		Capacity: cfg.Capacity,
		Hasher: credential.Hasher{
			Cost:      cfg.Security.BcryptCost,
			Plaintext: cfg.Security.PlaintextPasswords,
		},
	}
	b, err := bank.Open(backend, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DataFile, err)
	}
	return b, nil
}
