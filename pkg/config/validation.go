package config

import (
	"errors"
	"fmt"
)

// ErrInvalidMode indicates an unsupported mode string. Fatal before any
// worker starts.
var ErrInvalidMode = errors.New("invalid mode")

func (c *Config) validate() error {
	switch c.Mode {
	case ModeSingle, ModeMulti:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, c.Mode, ModeSingle, ModeMulti)
	}
	if c.Publish.BindAddr == "" {
		return fmt.Errorf("%s is required", KeyBindAddr)
	}
	if c.Poll.CycleSeconds <= 0 {
		return fmt.Errorf("%s must be positive, got %v", KeyPollCycleSeconds, c.Poll.CycleSeconds)
	}
	if c.Poll.TimeoutSeconds <= 0 {
		return fmt.Errorf("%s must be positive, got %v", KeyPollTimeoutSeconds, c.Poll.TimeoutSeconds)
	}
	if !c.Synthetic && c.Device.Host == "" {
		return fmt.Errorf("%s is required unless %s is set", KeyDeviceHost, KeySynthetic)
	}
	if c.InjectZero && !c.Synthetic {
		return fmt.Errorf("%s only applies to synthetic runs", KeyInjectZero)
	}
	return nil
}
