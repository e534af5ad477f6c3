package config

// Configuration key constants
// These constants centralize all environment variable and configuration key
// names to eliminate magic strings and improve maintainability.

const (
	// Device configuration keys
	KeyDeviceHost = "DL100_HOST"
	KeyDevicePort = "DL100_PORT"

	// Publish channel configuration keys
	KeyBindAddr = "BIND_ADDR"

	// Poll configuration keys
	KeyPollCycleSeconds   = "POLL_CYCLE_SECONDS"
	KeyPollTimeoutSeconds = "POLL_TIMEOUT_SECONDS"

	// Run mode keys
	KeyMode       = "MODE"
	KeyVerbose    = "VERBOSE"
	KeySynthetic  = "SYNTHETIC"
	KeyInjectZero = "INJECT_ZERO"
)

// Default values for configuration
const (
	// Device defaults: the standard EtherNet/IP port and the bench
	// address of the scanner.
	DefaultDeviceHost = "192.168.101.217"
	DefaultDevicePort = 44818

	// Publish defaults
	DefaultBindAddr = "tcp://*:5559"

	// Poll defaults: 30 Hz with a half-second device timeout.
	DefaultPollCycleSeconds   = 1.0 / 30.0
	DefaultPollTimeoutSeconds = 0.5

	// Mode defaults
	DefaultMode = ModeMulti
)

// Run mode names.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// CLI flag name constants
const (
	// CLI flag names (kebab-case for command line)
	FlagDeviceHost         = "device-host"
	FlagDevicePort         = "device-port"
	FlagBindAddr           = "bind-addr"
	FlagPollCycleSeconds   = "cycle-seconds"
	FlagPollTimeoutSeconds = "timeout-seconds"
	FlagMode               = "mode"
	FlagVerbose            = "verbose"
	FlagSynthetic          = "synthetic"
	FlagInjectZero         = "inject-zero"
	FlagHelp               = "help"
)

// Help message constants
const (
	AppName        = "DL100 Bridge"
	AppDescription = "Publish DL100 distance/velocity readings as a conflating telemetry stream"
	UsageFormat    = "dlb [OPTIONS]"

	// Help descriptions
	HelpDeviceHost         = "IP or hostname of the DL100 distance scanner"
	HelpDevicePort         = "EtherNet/IP port of the scanner"
	HelpBindAddr           = "Publish channel bind address"
	HelpPollCycleSeconds   = "Poll cycle length in seconds"
	HelpPollTimeoutSeconds = "Per-read device timeout in seconds"
	HelpMode               = "Publish mode: single (per reading) or multi (aggregated)"
	HelpVerbose            = "Log every published record"
	HelpSynthetic          = "Generate synthetic data instead of polling the device"
	HelpInjectZero         = "Force synthetic distance to zero (dropout simulation)"
	HelpShowHelp           = "Show this help message"

	// Help section headers
	HelpOptions         = "Options:"
	HelpEnvironmentVars = "Environment Variables:"
	HelpUsage           = "Usage:"
	HelpNote            = "Note: CLI options override environment variables; PUB_USERNAME/PUB_PASSWORD are read from the environment only"
)
