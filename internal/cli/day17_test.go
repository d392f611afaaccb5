package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rockpile/aoc/internal/config"
	"github.com/rockpile/aoc/internal/rockfall"
)

func runAoc(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "error")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "17.input")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDay17(t *testing.T) {
	path := writeInput(t, day17Sample+"\n")
	out, err := runAoc(t, "day17", "-i", path)
	if err != nil {
		t.Fatalf("day17: %v", err)
	}
	want := "Height after 2022 rocks: 3068\n" +
		"Height after 1000000000000 rocks: 1514285714288\n"
	if out != want {
		t.Errorf("output = %q; want %q", out, want)
	}
}

func TestDay17_RocksAndDraw(t *testing.T) {
	path := writeInput(t, day17Sample)
	out, err := runAoc(t, "day17", "--input", path, "-n", "10", "--draw", "3")
	if err != nil {
		t.Fatalf("day17: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
	for _, l := range lines[1:4] {
		if !strings.HasPrefix(l, "|") || len(l) != rockfall.Width+2 {
			t.Errorf("bad drawing line %q", l)
		}
	}
	if lines[5] != "Height after 10 rocks: 17" {
		t.Errorf("last line = %q", lines[5])
	}
}

func TestDay17_Sample(t *testing.T) {
	out, err := runAoc(t, "day17", "--sample")
	if err != nil {
		t.Fatalf("day17 --sample: %v", err)
	}
	if out != "" {
		t.Errorf("sample-only run wrote answers: %q", out)
	}
}

func TestDay17_NoCycles(t *testing.T) {
	path := writeInput(t, day17Sample)
	out, err := runAoc(t, "day17", "-i", path, "--no-cycles")
	if err != nil {
		t.Fatalf("day17: %v", err)
	}
	if out != "Height after 2022 rocks: 3068\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDay17_Errors(t *testing.T) {
	bad := writeInput(t, "<>X\n")
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"invalid jet", []string{"day17", "-i", bad}, rockfall.ErrInvalidJet},
		{"missing file", []string{"day17", "-i", filepath.Join(t.TempDir(), "nope")}, os.ErrNotExist},
		{"bad skyline", []string{"day17", "-i", bad, "--skyline-rows", "99"}, config.ErrInvalid},
		{"no input", []string{"day17"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runAoc(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error, got output %q", out)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v; want %v", err, tt.is)
			}
			if out != "" {
				t.Errorf("wrote partial output %q", out)
			}
		})
	}
}
