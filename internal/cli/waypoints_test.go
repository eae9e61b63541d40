package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		waypointsSort = "title"
		waypointsDesc = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestWaypointsCommandListsBuiltinDataset(t *testing.T) {
	out := runCommand(t, "waypoints")

	if !strings.Contains(out, "PLACE ID") {
		t.Errorf("expected table header, got: %s", out)
	}
	if !strings.Contains(out, "Carthage") {
		t.Errorf("expected builtin waypoint, got: %s", out)
	}

	// Default sort is by title, so Alexandria comes before Carthage.
	alex := strings.Index(out, "Alexandria")
	carthage := strings.Index(out, "Carthage")
	if alex == -1 || carthage == -1 || alex > carthage {
		t.Errorf("expected title order, got: %s", out)
	}
}

func TestWaypointsCommandSortFlag(t *testing.T) {
	out := runCommand(t, "waypoints", "--sort", "start_year", "--desc")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header plus rows, got: %s", out)
	}
	if !strings.HasPrefix(lines[1], "0") {
		t.Errorf("expected zero-based sequence index, got: %s", lines[1])
	}
}

func TestWaypointsCommandRejectsUnknownSort(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"waypoints", "--sort", "altitude"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		waypointsSort = "title"
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown sort column")
	}
}
