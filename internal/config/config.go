// Package config defines the CLI structure and configuration for buzzd.
package config

import (
	"github.com/openbuzz/buzzd/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"BUZZD_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"BUZZD_LOG_FILE"`
	RawFile string `help:"Raw report log file path (default: none)" env:"BUZZD_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	// ConfigPath is consumed by the candidate-path pre-scan in main
	// before kong parses; declared here so kong accepts the flag.
	ConfigPath string `name:"config" help:"Configuration file path" type:"path" env:"BUZZD_CONFIG"`

	Listen cmd.Listen    `cmd:"" help:"Stream decoded button events from a Buzz report source"`
	Led    cmd.Led       `cmd:"" help:"Write one LED command to the device"`
	Config ConfigCommand `cmd:"" help:"Configuration helpers"`
}
