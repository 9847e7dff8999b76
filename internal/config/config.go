// Package config provides YAML-based configuration loading for clickfield.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the application.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Field   FieldConfig   `yaml:"field"`
	SSH     SSHConfig     `yaml:"ssh"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls how page pixels map onto terminal cells.
type DisplayConfig struct {
	CellWidth  int    `yaml:"cell_width"`  // Pixels covered by one cell horizontally
	CellHeight int    `yaml:"cell_height"` // Pixels covered by one cell vertically
	Glyph      string `yaml:"glyph"`       // Rune used to fill shapes
	ShowHelp   bool   `yaml:"show_help"`
}

// FieldConfig controls the field element created at startup.
type FieldConfig struct {
	ZIndex     int `yaml:"z_index"`     // Stacking value of the field element
	HeaderRows int `yaml:"header_rows"` // Rows above the field
	FooterRows int `yaml:"footer_rows"` // Rows below the field
}

// SSHConfig holds settings for the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	Announce    bool          `yaml:"announce"` // Advertise the server via mDNS
}

// StorageConfig points at the session statistics database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the log file written while the TUI owns the terminal.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`
}

// Validate reports settings that would make the field unusable.
func (c Config) Validate() error {
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %dx%d",
			c.Display.CellWidth, c.Display.CellHeight)
	}
	if c.Field.HeaderRows < 0 || c.Field.FooterRows < 0 {
		return fmt.Errorf("config: header and footer rows must not be negative")
	}
	if c.Display.Glyph == "" {
		return fmt.Errorf("config: glyph must not be empty")
	}
	return nil
}
