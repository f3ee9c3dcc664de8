// cmd/inkwell/main.go
package main

import (
	"fmt"
	"io"
	stlog "log"
	"os"

	"github.com/inkwell-editor/inkwell/internal/app"
	"github.com/inkwell-editor/inkwell/internal/config"
	"github.com/inkwell-editor/inkwell/internal/logger"
)

const version = "0.2.0"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	logOutput, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	logger.InitWithConfig(cfg.Logger, logOutput)
	logger.Infof("starting %s %s", config.AppName, version)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
		logger.Debugf("document path: %s", filePath)
	} else {
		logger.Debugf("no document specified, starting with an empty draft")
	}

	inkwellApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "inkwell: %v\n", err)
		os.Exit(1)
	}

	if err := inkwellApp.Run(); err != nil {
		logger.Errorf("application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "inkwell: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("%s finished", config.AppName)
}

// openLogOutput resolves the configured log destination. Empty or "-"
// keeps logging on stderr so the log file flag stays optional.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
