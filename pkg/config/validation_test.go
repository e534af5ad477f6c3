package config

import (
	"errors"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Device:  DeviceConfig{Host: DefaultDeviceHost, Port: DefaultDevicePort},
		Publish: PublishConfig{BindAddr: DefaultBindAddr},
		Poll: PollConfig{
			CycleSeconds:   DefaultPollCycleSeconds,
			TimeoutSeconds: DefaultPollTimeoutSeconds,
		},
		Mode: ModeMulti,
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts defaults", func(t *testing.T) {
		if err := validConfig().validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accepts single mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mode = ModeSingle
		if err := cfg.validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mode = "batch"
		err := cfg.validate()
		if !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("expected ErrInvalidMode, got %v", err)
		}
	})

	t.Run("rejects empty bind address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Publish.BindAddr = ""
		if err := cfg.validate(); err == nil {
			t.Fatal("expected error for empty bind address")
		}
	})

	t.Run("rejects non-positive cycle", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poll.CycleSeconds = 0
		if err := cfg.validate(); err == nil {
			t.Fatal("expected error for zero cycle")
		}
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poll.TimeoutSeconds = -1
		if err := cfg.validate(); err == nil {
			t.Fatal("expected error for negative timeout")
		}
	})

	t.Run("requires host unless synthetic", func(t *testing.T) {
		cfg := validConfig()
		cfg.Device.Host = ""
		if err := cfg.validate(); err == nil {
			t.Fatal("expected error for empty host")
		}
		cfg.Synthetic = true
		if err := cfg.validate(); err != nil {
			t.Fatalf("synthetic run should not need a host: %v", err)
		}
	})

	t.Run("inject-zero requires synthetic", func(t *testing.T) {
		cfg := validConfig()
		cfg.InjectZero = true
		if err := cfg.validate(); err == nil {
			t.Fatal("expected error for inject-zero without synthetic")
		}
		cfg.Synthetic = true
		cfg.Device.Host = ""
		if err := cfg.validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
