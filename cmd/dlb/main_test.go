package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	bin := "./test_dlb"
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build binary: %v", err)
	}
	t.Cleanup(func() { os.Remove(bin) })
	return bin
}

func TestMainVersionFlag(t *testing.T) {
	bin := buildBinary(t)

	output, err := exec.Command(bin, "--version").Output()
	if err != nil {
		t.Fatalf("failed to run version command: %v", err)
	}
	if !strings.Contains(string(output), "dlb version") {
		t.Errorf("expected version output to contain 'dlb version', got: %s", output)
	}
}

func TestMainInvalidMode(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "--mode", "batch")
	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected error for invalid mode, but command succeeded")
	}
	if !strings.Contains(string(output), "Error loading configuration") {
		t.Errorf("expected configuration error, got: %s", output)
	}
}

func TestMainPartialCredentials(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "--synthetic")
	cmd.Env = append(os.Environ(), "PUB_USERNAME=operator", "PUB_PASSWORD=")
	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected error for partial credentials, but command succeeded")
	}
	if !strings.Contains(string(output), "Error loading configuration") {
		t.Errorf("expected configuration error, got: %s", output)
	}
}

func TestMainHelp(t *testing.T) {
	bin := buildBinary(t)

	output, err := exec.Command(bin, "--help").Output()
	if err != nil {
		t.Fatalf("failed to run help command: %v", err)
	}
	outputStr := string(output)
	if !strings.Contains(outputStr, "DL100 Bridge") {
		t.Errorf("expected help output to contain header, got: %s", outputStr)
	}
	if !strings.Contains(outputStr, "Usage:") {
		t.Errorf("expected help output to contain 'Usage:', got: %s", outputStr)
	}
	if !strings.Contains(outputStr, "Options:") {
		t.Errorf("expected help output to contain 'Options:', got: %s", outputStr)
	}
	if !strings.Contains(outputStr, "Environment Variables:") {
		t.Errorf("expected help output to contain 'Environment Variables:', got: %s", outputStr)
	}
}
