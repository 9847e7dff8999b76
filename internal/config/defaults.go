package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/clickfield.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
			Glyph:      "█",
			ShowHelp:   true,
		},
		Field: FieldConfig{
			ZIndex:     0,
			HeaderRows: 1,
			FooterRows: 1,
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Storage: StorageConfig{
			Path: "~/.clickfield/sessions.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.clickfield/clickfield.log",
		},
	}
}
