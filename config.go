package coordconv

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RunConfig configures the window, logging and gesture recognition.
type RunConfig struct {
	Title         string `mapstructure:"title"`
	Width         int    `mapstructure:"width"`
	Height        int    `mapstructure:"height"`
	ShowFPS       bool   `mapstructure:"showFPS"`
	Resizable     bool   `mapstructure:"resizable"`
	LogLevel      string `mapstructure:"logLevel"`
	ScreenshotDir string `mapstructure:"screenshotDir"`

	// Script is an optional path to a JSON input script run at startup.
	Script string `mapstructure:"script"`

	DoubleTapWindow float64 `mapstructure:"doubleTapWindow"`
	DoubleTapSlop   float64 `mapstructure:"doubleTapSlop"`
	PanSlop         float64 `mapstructure:"panSlop"`
}

// Router returns the gesture settings as a RouterConfig.
func (c RunConfig) Router() RouterConfig {
	return RouterConfig{
		DoubleTapWindow: c.DoubleTapWindow,
		DoubleTapSlop:   c.DoubleTapSlop,
		PanSlop:         c.PanSlop,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "Coordinate Conversion")
	v.SetDefault("width", 375)
	v.SetDefault("height", 812)
	v.SetDefault("showFPS", false)
	v.SetDefault("resizable", true)
	v.SetDefault("logLevel", "info")
	v.SetDefault("screenshotDir", "screenshots")
	v.SetDefault("script", "")
	v.SetDefault("doubleTapWindow", defaultDoubleTapWindow)
	v.SetDefault("doubleTapSlop", defaultDoubleTapSlop)
	v.SetDefault("panSlop", defaultPanSlop)
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() RunConfig {
	v := viper.New()
	setDefaults(v)
	cfg, err := decodeConfig(v)
	if err != nil {
		panic("coordconv: " + err.Error())
	}
	return cfg
}

func decodeConfig(v *viper.Viper) (RunConfig, error) {
	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig builds a RunConfig from defaults, then the config file at path
// (skipped when empty), then COORDCONV_* environment variables, then any
// flags in flags that were set on the command line. Flags are matched to keys
// by name.
func LoadConfig(path string, flags *pflag.FlagSet) (RunConfig, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return RunConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("COORDCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return RunConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return RunConfig{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
