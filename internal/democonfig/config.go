// Package democonfig loads the settings shared by the demo binaries.
package democonfig

import (
	"fmt"
	"strings"

	"github.com/phanxgames/pointerdnd"
	"github.com/spf13/viper"
)

// Config holds demo configuration.
type Config struct {
	Window WindowConfig
	Drag   DragConfig
	// Script is an optional path to a JSON pointer script to replay.
	Script string
}

// WindowConfig holds ebiten window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// DragConfig holds backend settings.
type DragConfig struct {
	Threshold         float64 `mapstructure:"threshold"`
	PreviewAlpha      float64 `mapstructure:"preview_alpha"`
	EndDragOnTeardown bool    `mapstructure:"end_drag_on_teardown"`
	Debug             bool    `mapstructure:"debug"`
}

// Load reads configuration from path (if non-empty) and the environment.
// Env var overrides use prefix POINTERDND_, e.g. POINTERDND_DRAG_THRESHOLD.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "pointerdnd demo")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 480)
	v.SetDefault("drag.threshold", 0.0)
	v.SetDefault("drag.preview_alpha", 0.5)
	v.SetDefault("drag.end_drag_on_teardown", false)
	v.SetDefault("drag.debug", false)
	v.SetDefault("script", "")

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("POINTERDND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Drag.PreviewAlpha < 0 || c.Drag.PreviewAlpha > 1 {
		return Config{}, fmt.Errorf("drag.preview_alpha %v out of range [0, 1]", c.Drag.PreviewAlpha)
	}
	return c, nil
}

// Options converts the drag settings to backend options.
func (c Config) Options() []pointerdnd.Option {
	return []pointerdnd.Option{
		pointerdnd.WithDragThreshold(c.Drag.Threshold),
		pointerdnd.WithPreviewAlpha(c.Drag.PreviewAlpha),
		pointerdnd.WithEndDragOnTeardown(c.Drag.EndDragOnTeardown),
		pointerdnd.WithDebug(c.Drag.Debug),
	}
}
