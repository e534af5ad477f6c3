package config

import "testing"

func TestEnvSource_GetString(t *testing.T) {
	env := &EnvSource{}

	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv(KeyDeviceHost, "10.0.0.5")
		value, found := env.GetString(KeyDeviceHost)
		if !found {
			t.Fatal("expected value to be found")
		}
		if value != "10.0.0.5" {
			t.Errorf("expected 10.0.0.5, got %q", value)
		}
	})

	t.Run("not found when empty", func(t *testing.T) {
		t.Setenv(KeyDeviceHost, "")
		if _, found := env.GetString(KeyDeviceHost); found {
			t.Error("expected empty value to be treated as unset")
		}
	})
}

func TestEnvSource_GetInt(t *testing.T) {
	env := &EnvSource{}

	t.Run("parses valid integer", func(t *testing.T) {
		t.Setenv(KeyDevicePort, "44818")
		value, found := env.GetInt(KeyDevicePort)
		if !found {
			t.Fatal("expected value to be found")
		}
		if value != 44818 {
			t.Errorf("expected 44818, got %d", value)
		}
	})

	t.Run("not found for garbage", func(t *testing.T) {
		t.Setenv(KeyDevicePort, "not-a-port")
		if _, found := env.GetInt(KeyDevicePort); found {
			t.Error("expected unparseable value to be treated as unset")
		}
	})
}

func TestEnvSource_GetFloat(t *testing.T) {
	env := &EnvSource{}

	t.Run("parses valid float", func(t *testing.T) {
		t.Setenv(KeyPollCycleSeconds, "0.0333")
		value, found := env.GetFloat(KeyPollCycleSeconds)
		if !found {
			t.Fatal("expected value to be found")
		}
		if value != 0.0333 {
			t.Errorf("expected 0.0333, got %v", value)
		}
	})

	t.Run("not found for garbage", func(t *testing.T) {
		t.Setenv(KeyPollCycleSeconds, "thirty")
		if _, found := env.GetFloat(KeyPollCycleSeconds); found {
			t.Error("expected unparseable value to be treated as unset")
		}
	})
}

func TestEnvSource_GetBool(t *testing.T) {
	env := &EnvSource{}

	cases := []struct {
		raw   string
		want  bool
		found bool
	}{
		{"true", true, true},
		{"false", false, true},
		{"1", true, true},
		{"0", false, true},
		{"yes", true, true},
		{"No", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Run("value "+tc.raw, func(t *testing.T) {
			t.Setenv(KeyVerbose, tc.raw)
			value, found := env.GetBool(KeyVerbose)
			if found != tc.found {
				t.Fatalf("found = %v, want %v", found, tc.found)
			}
			if found && value != tc.want {
				t.Errorf("value = %v, want %v", value, tc.want)
			}
		})
	}
}

func TestFlagSource(t *testing.T) {
	t.Run("returns stored values", func(t *testing.T) {
		fs := NewFlagSource()
		fs.Set(KeyDeviceHost, "192.168.1.1")
		fs.Set(KeyDevicePort, 2222)
		fs.Set(KeyPollCycleSeconds, 0.1)
		fs.Set(KeyVerbose, false)

		if v, ok := fs.GetString(KeyDeviceHost); !ok || v != "192.168.1.1" {
			t.Errorf("GetString = %q, %v", v, ok)
		}
		if v, ok := fs.GetInt(KeyDevicePort); !ok || v != 2222 {
			t.Errorf("GetInt = %d, %v", v, ok)
		}
		if v, ok := fs.GetFloat(KeyPollCycleSeconds); !ok || v != 0.1 {
			t.Errorf("GetFloat = %v, %v", v, ok)
		}
		if v, ok := fs.GetBool(KeyVerbose); !ok || v != false {
			t.Errorf("GetBool = %v, %v", v, ok)
		}
	})

	t.Run("missing keys are not found", func(t *testing.T) {
		fs := NewFlagSource()
		if _, ok := fs.GetString(KeyDeviceHost); ok {
			t.Error("expected missing string key to be unset")
		}
		if _, ok := fs.GetInt(KeyDevicePort); ok {
			t.Error("expected missing int key to be unset")
		}
		if _, ok := fs.GetBool(KeySynthetic); ok {
			t.Error("expected missing bool key to be unset")
		}
	})

	t.Run("empty string is treated as unset", func(t *testing.T) {
		fs := NewFlagSource()
		fs.Set(KeyDeviceHost, "")
		if _, ok := fs.GetString(KeyDeviceHost); ok {
			t.Error("expected empty string to be unset")
		}
	})

	t.Run("wrong type is not found", func(t *testing.T) {
		fs := NewFlagSource()
		fs.Set(KeyDevicePort, "44818")
		if _, ok := fs.GetInt(KeyDevicePort); ok {
			t.Error("expected string stored under int key to be unset")
		}
	})
}
