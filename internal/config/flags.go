package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags. Pointer fields
// distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	LogPackages     *string
	LogDisablePkgs  *string
	ScrollOff       *int
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - overrides config file")
	f.LogPackages = flag.String("log-packages", "", "Comma-separated list of packages to enable - overrides config file")
	f.LogDisablePkgs = flag.String("log-disable-packages", "", "Comma-separated list of packages to disable - overrides config file")
	f.ScrollOff = flag.Int("scrolloff", -1, "Lines of context above/below the caret - overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", DefaultSystemClipboard, "Use the system clipboard for copy and paste")
}

// ParseFlags parses the command line and returns the remaining
// non-flag arguments (the optional document path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates cfg with values from flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = *f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-packages":
			cfg.Logger.EnabledPackages = splitList(*f.LogPackages)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitList(*f.LogDisablePkgs)
		case "scrolloff":
			cfg.Surface.ScrollOff = *f.ScrollOff
		case "system-clipboard":
			cfg.Surface.SystemClipboard = *f.SystemClipboard
		}
	})
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
