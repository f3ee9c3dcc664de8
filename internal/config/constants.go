package config

import "time"

// Base application details
const AppName = "inkwell"
const ConfigDirName = "inkwell"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "inkwell.log"

// UI layout
const StatusBarHeight = 1

// Status bar
const MessageTimeout = 4 * time.Second

// Surface behavior defaults
const DefaultScrollOff = 3
const DefaultSystemClipboard = true
