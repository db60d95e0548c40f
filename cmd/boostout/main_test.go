package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and restores the global flags.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagLogFile = ""
		flagConfig = ""
		flagDifficulty = ""
		flagPractice = false
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCommandErrorsAreReturned(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "boostout.log")

	err := execute(t, "play", "nosuch", "--log-file", logPath)
	if err == nil || !strings.Contains(err.Error(), `"nosuch"`) {
		t.Fatalf("err = %v, want unknown game", err)
	}
	if _, statErr := os.Stat(logPath); statErr != nil {
		t.Errorf("log file not created: %v", statErr)
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("bricks:\n  pattern: pyramid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("bricks:\n  pattern: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "config", "validate", good); err != nil {
		t.Errorf("validate %s: %v", good, err)
	}
	err := execute(t, "config", "validate", bad)
	if err == nil || !strings.Contains(err.Error(), "bricks.pattern") {
		t.Errorf("err = %v, want a bricks.pattern error", err)
	}
}

func TestInvalidGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero fps", []string{"list", "--fps", "0"}, "--fps"},
		{"unknown difficulty", []string{"list", "--difficulty", "insane"}, "insane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { flagFPS = 60 })
			err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
