// internal/logging/logging.go
//
// Package logging 提供全域共用的結構化日誌器。
// 日誌一律寫到 stderr，避免與 console 的提示文字（stdout）交錯。
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L 為套件層級的 logger；測試可替換成寫入 buffer 的實例。
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "bank"})

// SetOutput 變更日誌輸出目的地。
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// SetLevel 以字串設定日誌等級（debug / info / warn / error）。
// 無法辨識的等級回傳錯誤，並維持原設定。
func SetLevel(level string) error {
	lv, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("logging: unknown level %q", level)
	}
	L.SetLevel(lv)
	return nil
}

// SetDebug 開啟或關閉 debug 等級輸出。
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
