// internal/config/config.go
//
// Package config 載入執行期設定，優先順序（低到高）：
// 預設值 → banking.yaml → BANKING_* 環境變數 → 命令列旗標。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// 儲存格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	DataFile string   `mapstructure:"data_file" yaml:"data_file"`
	Capacity int      `mapstructure:"capacity" yaml:"capacity"`
	Storage  Storage  `mapstructure:"storage" yaml:"storage"`
	Security Security `mapstructure:"security" yaml:"security"`
	Log      Log      `mapstructure:"log" yaml:"log"`
}

type Storage struct {
	Format string `mapstructure:"format" yaml:"format"`
}

type Security struct {
	BcryptCost int `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
	// PlaintextPasswords 保留舊版明文格式，使資料檔與舊系統逐位元組相容。
	PlaintextPasswords bool `mapstructure:"plaintext_passwords" yaml:"plaintext_passwords"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults 回傳預設設定。
func Defaults() Config {
	return Config{
		DataFile: "bank_data.txt",
		Capacity: 100,
		Storage:  Storage{Format: FormatText},
		Security: Security{BcryptCost: 10},
		Log:      Log{Level: "info"},
	}
}

func defaultMap() map[string]any {
	d := Defaults()
	return map[string]any{
		"data_file":                    d.DataFile,
		"capacity":                     d.Capacity,
		"storage.format":               d.Storage.Format,
		"security.bcrypt_cost":         d.Security.BcryptCost,
		"security.plaintext_passwords": d.Security.PlaintextPasswords,
		"log.level":                    d.Log.Level,
	}
}

// flagKeys 對應命令列旗標名稱與設定鍵。
var flagKeys = map[string]string{
	"data-file":      "data_file",
	"capacity":       "capacity",
	"storage-format": "storage.format",
	"log-level":      "log.level",
}

// Load 讀取設定。configFile 為空字串時依序搜尋使用者設定目錄、
// 系統設定目錄與目前目錄；找不到設定檔不算錯誤。flags 可為 nil。
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaultMap() {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("banking")
		v.SetConfigType("yaml")
		if p, err := Path(false); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
		if p, err := Path(true); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("banking")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("config: bind %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// Validate 檢查設定值是否可用。
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("config: data_file must not be empty")
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("config: capacity must be positive, got %d", c.Capacity)
	}
	switch c.Storage.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: unknown storage.format %q", c.Storage.Format)
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("config: security.bcrypt_cost must be within 4..31, got %d", c.Security.BcryptCost)
	}
	return nil
}

// Path 回傳設定檔的完整路徑。
func Path(system bool) (string, error) {
	var dir string
	if system {
		switch runtime.GOOS {
		case "windows":
			dir = filepath.Join(os.Getenv("ProgramData"), "Banking")
		default:
			dir = "/etc/banking"
		}
	} else {
		d, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		dir = filepath.Join(d, "banking")
	}
	return filepath.Join(dir, "banking.yaml"), nil
}

// Write 以 YAML 寫出設定檔，必要時建立目錄。
func Write(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
