package config

import "time"

type Config struct {
	Device  DeviceConfig
	Publish PublishConfig
	Poll    PollConfig

	Mode       string
	Verbose    bool
	Synthetic  bool
	InjectZero bool
}

type DeviceConfig struct {
	Host string
	Port int
}

type PublishConfig struct {
	BindAddr string
}

type PollConfig struct {
	CycleSeconds   float64
	TimeoutSeconds float64
}

// Cycle returns the poll cycle as a duration.
func (c *Config) Cycle() time.Duration {
	return time.Duration(c.Poll.CycleSeconds * float64(time.Second))
}

// Timeout returns the per-read device timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Poll.TimeoutSeconds * float64(time.Second))
}

// Load loads configuration from CLI flags and environment variables
// CLI flags take precedence over environment variables
func Load() (*Config, error) {
	// Parse CLI flags
	flagSource, showHelp := parseCLIFlags()

	if showHelp {
		printUsage()
		return nil, nil // Return nil to indicate help was shown
	}

	// Create resolver with precedence: CLI flags > Environment variables
	resolver := NewConfigResolver(flagSource, &EnvSource{})

	// Build configuration using resolver
	cfg := &Config{
		Device: DeviceConfig{
			Host: resolver.ResolveString(KeyDeviceHost, DefaultDeviceHost),
			Port: resolver.ResolveInt(KeyDevicePort, DefaultDevicePort),
		},
		Publish: PublishConfig{
			BindAddr: resolver.ResolveString(KeyBindAddr, DefaultBindAddr),
		},
		Poll: PollConfig{
			CycleSeconds:   resolver.ResolveFloat(KeyPollCycleSeconds, DefaultPollCycleSeconds),
			TimeoutSeconds: resolver.ResolveFloat(KeyPollTimeoutSeconds, DefaultPollTimeoutSeconds),
		},
		Mode:       resolver.ResolveString(KeyMode, DefaultMode),
		Verbose:    resolver.ResolveBool(KeyVerbose, true),
		Synthetic:  resolver.ResolveBool(KeySynthetic, false),
		InjectZero: resolver.ResolveBool(KeyInjectZero, false),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
