package auth

import "testing"

func TestFromEnv_Unset(t *testing.T) {
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")

	creds, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !creds.IsZero() {
		t.Errorf("expected zero credentials, got %+v", creds)
	}
}

func TestFromEnv_BothSet(t *testing.T) {
	t.Setenv(EnvUsername, "operator")
	t.Setenv(EnvPassword, "s3cret")

	creds, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Username != "operator" || creds.Password != "s3cret" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
	if creds.IsZero() {
		t.Error("expected non-zero credentials")
	}
}

func TestFromEnv_PartialPair(t *testing.T) {
	t.Setenv(EnvUsername, "operator")
	t.Setenv(EnvPassword, "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for username without password")
	}

	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "s3cret")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for password without username")
	}
}
