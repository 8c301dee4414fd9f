package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig настройки запуска, читаемые из файла nova.json.
type AppConfig struct {
	LogLevel         string `mapstructure:"logLevel"`
	LogFile          string `mapstructure:"logFile"`
	SettingsStore    string `mapstructure:"settingsStore"` // file | sqlite
	SettingsPath     string `mapstructure:"settingsPath"`
	Seed             int64  `mapstructure:"seed"`
	DefsDir          string `mapstructure:"defsDir"`
	AssetsDir        string `mapstructure:"assetsDir"`
	AudioEnabled     bool   `mapstructure:"audioEnabled"`
	TelemetryEnabled bool   `mapstructure:"telemetryEnabled"`
	StartCharacter   string `mapstructure:"startCharacter"`
}

// SetDefaults регистрирует значения по умолчанию.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("settingsStore", "file")
	v.SetDefault("settingsPath", ".")
	v.SetDefault("seed", 0)
	v.SetDefault("defsDir", "")
	v.SetDefault("assetsDir", "assets")
	v.SetDefault("audioEnabled", true)
	v.SetDefault("telemetryEnabled", false)
	v.SetDefault("startCharacter", "")
}

// Load читает конфигурацию. Если path пустой или файл отсутствует,
// используются значения по умолчанию и переменные окружения NOVA_*.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("nova")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	switch cfg.SettingsStore {
	case "file", "sqlite":
	default:
		return nil, fmt.Errorf("unknown settings store %q", cfg.SettingsStore)
	}
	return &cfg, nil
}
