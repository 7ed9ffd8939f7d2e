package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	if config.Dir == "" {
		t.Error("Dir not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
}

// TestLoadConfig_DefaultDir verifies the current directory default.
func TestLoadConfig_DefaultDir(t *testing.T) {
	oldDir := os.Getenv("DIR")
	defer os.Setenv("DIR", oldDir)
	os.Unsetenv("DIR")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Dir != "." {
		t.Errorf("Dir = %s, want .", config.Dir)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	oldDir := os.Getenv("DIR")
	oldLevel := os.Getenv("LOG_LEVEL")
	defer func() {
		os.Setenv("DIR", oldDir)
		os.Setenv("LOG_LEVEL", oldLevel)
	}()

	os.Setenv("DIR", "/tmp/examples")
	os.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Dir != "/tmp/examples" {
		t.Errorf("Dir = %s, want /tmp/examples", config.Dir)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Dir:      ".",
		LogLevel: "info",
	}

	config.UpdateFromFlags(true, false, "./examples", "index.md", "")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if config.Dir != "./examples" {
		t.Errorf("Dir = %s, want ./examples", config.Dir)
	}
	if config.OutputFile != "index.md" {
		t.Errorf("OutputFile = %s, want index.md", config.OutputFile)
	}
	// Empty flag values must not clobber loaded values
	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", config.LogLevel)
	}
}

// TestConfig_UpdateFromFlags_EmptyKeepsDefaults verifies unset string
// flags leave the loaded configuration alone.
func TestConfig_UpdateFromFlags_EmptyKeepsDefaults(t *testing.T) {
	config := &Config{
		Dir:        ".",
		OutputFile: "from-config.md",
		LogLevel:   "warn",
	}

	config.UpdateFromFlags(false, false, "", "", "")

	if config.Dir != "." {
		t.Errorf("Dir = %s, want .", config.Dir)
	}
	if config.OutputFile != "from-config.md" {
		t.Errorf("OutputFile = %s, want from-config.md", config.OutputFile)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", config.LogLevel)
	}
}
