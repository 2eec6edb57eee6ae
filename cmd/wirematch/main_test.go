package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPreviewPrintsPairs(t *testing.T) {
	t.Parallel()
	out, err := run(t, "preview", "--level", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "level 4: 5 pairs (seed 7)" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines) != 6 {
		t.Fatalf("expected 5 pair lines, got:\n%s", out)
	}
}

func TestPreviewRejectsLevelZero(t *testing.T) {
	t.Parallel()
	if _, err := run(t, "preview", "--level", "0"); err == nil {
		t.Fatalf("expected level 0 to be rejected")
	}
}

func TestScoreShowAndClear(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	out, err := run(t, "--data-dir", dir, "score", "show")
	if err != nil {
		t.Fatalf("score show: %v", err)
	}
	if !strings.Contains(out, "high score: 1 (nothing stored under wiringHighScore)") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := run(t, "--data-dir", dir, "score", "clear"); err == nil {
		t.Fatalf("expected clear without --yes to fail")
	}
	out, err = run(t, "--data-dir", dir, "score", "clear", "--yes")
	if err != nil {
		t.Fatalf("score clear: %v", err)
	}
	if strings.TrimSpace(out) != "high score cleared" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUnknownBackendFails(t *testing.T) {
	t.Parallel()
	if _, err := run(t, "--data-dir", t.TempDir(), "--score-backend", "floppy", "score", "show"); err == nil {
		t.Fatalf("expected invalid backend error")
	}
}

func TestDataDirFlagWinsOverConfigFile(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	fileDir := filepath.Join(tmp, "from-file")
	flagDir := filepath.Join(tmp, "from-flag")
	path := filepath.Join(tmp, "wirematch.yaml")
	if err := os.WriteFile(path, []byte("data_dir: "+fileDir+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := run(t, "--config", path, "--data-dir", flagDir, "score", "clear", "--yes"); err != nil {
		t.Fatalf("score clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(flagDir, "wirematch.db")); err != nil {
		t.Fatalf("expected score database under the flag dir: %v", err)
	}
	if _, err := os.Stat(fileDir); !os.IsNotExist(err) {
		t.Fatalf("config file data_dir should not be used, stat err: %v", err)
	}
}
