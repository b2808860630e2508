package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the window and scene settings read from a JSON file.
type Config struct {
	Width      int32  `json:"width"`
	Height     int32  `json:"height"`
	Title      string `json:"title"`
	VSync      bool   `json:"vsync"`
	TextureDir string `json:"texture_dir"`

	ClearColorR float32 `json:"clear_color_r"`
	ClearColorG float32 `json:"clear_color_g"`
	ClearColorB float32 `json:"clear_color_b"`
}

func DefaultConfig() Config {
	return Config{
		Width:       1024,
		Height:      768,
		Title:       "StillLife3D",
		VSync:       true,
		TextureDir:  "textures",
		ClearColorR: 0.08,
		ClearColorG: 0.08,
		ClearColorB: 0.1,
	}
}

// LoadConfig reads a config file, filling any missing fields from the
// defaults. A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the config as indented JSON.
func SaveConfig(path string, config Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
