package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/seqparser/internal/config"
	"github.com/harrison/seqparser/internal/display"
)

var fixtureFiles = []string{"foo.001.png", "foo.002.png", "foo.003.png", "foo.006.png", "a.1", "a.2", "plop.txt"}

func TestBrowseCommandText(t *testing.T) {
	root := makeTree(t, fixtureFiles, []string{"dir1", "dir2"})

	stdout, stderr, err := execute(t, "browse", root)
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}

	want := "[s] a.%d  1-2  (2 frames, step 1)\n" +
		"[d] dir1\n" +
		"[d] dir2\n" +
		"[s] foo.%03d.png  1-6  (4 frames, step 1)\n" +
		"[f] plop.txt\n"
	if stdout != want {
		t.Errorf("browse output =\n%s\nwant\n%s", stdout, want)
	}
	if stderr != "" {
		t.Errorf("expected quiet stderr at default log level, got %q", stderr)
	}
}

func TestBrowseCommandJSON(t *testing.T) {
	root := makeTree(t, fixtureFiles, []string{"dir1"})

	stdout, _, err := execute(t, "browse", "--format", "json", root)
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}

	var report display.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("output is not a JSON report: %v\n%s", err, stdout)
	}
	if report.Directory != root {
		t.Errorf("Directory = %q, want %q", report.Directory, root)
	}
	if report.Summary.Sequences != 2 || report.Summary.Frames != 6 || report.Summary.MissingFrames != 2 {
		t.Errorf("Summary = %+v", report.Summary)
	}
}

func TestBrowseCommandMultipleDirectories(t *testing.T) {
	first := makeTree(t, []string{"x.1", "x.2"}, nil)
	second := makeTree(t, []string{"y.txt"}, nil)

	stdout, _, err := execute(t, "browse", first, second)
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}

	want := first + ":\n[s] x.%d  1-2  (2 frames, step 1)\n\n" + second + ":\n[f] y.txt\n"
	if stdout != want {
		t.Errorf("browse output = %q, want %q", stdout, want)
	}
}

func TestBrowseCommandFlags(t *testing.T) {
	root := makeTree(t, append([]string{".hidden"}, fixtureFiles...), nil)

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:        "min length",
			args:        []string{"--min-length", "3"},
			contains:    []string{"[f] a.1\n", "[f] a.2\n", "[s] foo.%03d.png"},
			notContains: []string{"[s] a.%d"},
		},
		{
			name:        "ignore",
			args:        []string{"--ignore", "*.txt", "--ignore", "a.*"},
			contains:    []string{"[s] foo.%03d.png"},
			notContains: []string{"plop.txt", "a.%d"},
		},
		{
			name:        "hidden shown by default",
			args:        nil,
			contains:    []string{"[f] .hidden\n"},
		},
		{
			name:        "hidden off",
			args:        []string{"--hidden=false"},
			notContains: []string{".hidden"},
		},
		{
			name:     "strict padding",
			args:     []string{"--strict-padding"},
			contains: []string{"[s] a.%d", "[s] foo.%03d.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"browse", root}, tt.args...)
			stdout, _, err := execute(t, args...)
			if err != nil {
				t.Fatalf("browse returned error: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(stdout, s) {
					t.Errorf("output should contain %q, got:\n%s", s, stdout)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(stdout, s) {
					t.Errorf("output should not contain %q, got:\n%s", s, stdout)
				}
			}
		})
	}
}

func TestBrowseCommandMissing(t *testing.T) {
	root := makeTree(t, fixtureFiles, nil)

	_, stderr, err := execute(t, "browse", "--missing", root)
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}

	for _, want := range []string{
		"Warning: Missing frames in foo.%03d.png",
		"2 of 6 frames missing between 1 and 6",
		"1. foo.004.png",
		"2. foo.005.png",
		"Re-render frames 4-5",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "a.%d") {
		t.Errorf("complete sequences must not be reported, got:\n%s", stderr)
	}
	if strings.Contains(stderr, "\x1b[") {
		t.Errorf("warnings to a buffer must not be colored, got %q", stderr)
	}
}

func TestBrowseCommandConfigFile(t *testing.T) {
	root := makeTree(t, fixtureFiles, nil)
	cfgDir := filepath.Join(root, config.DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "sequence:\n  min_length: 3\nbrowse:\n  show_hidden: false\n  ignore: [\"*.txt\"]\n"
	if err := os.WriteFile(filepath.Join(cfgDir, config.FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("discovered from the listed directory", func(t *testing.T) {
		t.Setenv(config.EnvConfig, "")

		stdout, _, err := execute(t, "browse", root)
		if err != nil {
			t.Fatalf("browse returned error: %v", err)
		}
		want := "[f] a.1\n[f] a.2\n[s] foo.%03d.png  1-6  (4 frames, step 1)\n"
		if stdout != want {
			t.Errorf("browse output = %q, want %q", stdout, want)
		}
	})

	t.Run("flags override the file", func(t *testing.T) {
		t.Setenv(config.EnvConfig, "")

		stdout, _, err := execute(t, "browse", "--min-length", "2", root)
		if err != nil {
			t.Fatalf("browse returned error: %v", err)
		}
		if !strings.Contains(stdout, "[s] a.%d") {
			t.Errorf("--min-length should override config, got:\n%s", stdout)
		}
	})

	t.Run("explicit config path", func(t *testing.T) {
		other := makeTree(t, []string{"b.1", "b.2"}, nil)

		stdout, _, err := execute(t, "browse", "--config", filepath.Join(cfgDir, config.FileName), other)
		if err != nil {
			t.Fatalf("browse returned error: %v", err)
		}
		if stdout != "[f] b.1\n[f] b.2\n" {
			t.Errorf("browse output = %q", stdout)
		}
	})
}

func TestBrowseCommandLogging(t *testing.T) {
	root := makeTree(t, fixtureFiles, nil)

	_, stderr, err := execute(t, "browse", "--log-level", "debug", root)
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}
	if !strings.Contains(stderr, "[DEBUG] scan ") {
		t.Errorf("expected debug scan lines, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "=== Scan Summary ===") {
		t.Errorf("expected scan summary, got:\n%s", stderr)
	}
}

func TestBrowseCommandLogsOneSummaryPerScan(t *testing.T) {
	root := makeTree(t, fixtureFiles, nil)

	_, stderr, err := execute(t, "browse", "--log-level", "info", root)
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}
	if n := strings.Count(stderr, "=== Scan Summary ==="); n != 1 {
		t.Errorf("got %d scan summaries, want 1:\n%s", n, stderr)
	}
	if strings.Contains(stderr, "[INFO] scan ") || strings.Contains(stderr, "[DEBUG]") {
		t.Errorf("unexpected per-scan trace at info level:\n%s", stderr)
	}
}

func TestBrowseCommandErrors(t *testing.T) {
	root := makeTree(t, fixtureFiles, nil)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"invalid format", []string{"browse", "--format", "xml", root}, "invalid format"},
		{"invalid log level", []string{"browse", "--log-level", "loud", root}, "invalid configuration"},
		{"invalid color", []string{"browse", "--color", "rainbow", root}, "invalid color"},
		{"zero min length", []string{"browse", "--min-length", "0", root}, "sequence.min_length"},
		{"missing directory", []string{"browse", filepath.Join(root, "nope")}, "failed to browse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestBrowseCommandFormats(t *testing.T) {
	root := makeTree(t, fixtureFiles, nil)

	tests := []struct {
		format string
		want   string
	}{
		{"yaml", "pattern: foo.%03d.png"},
		{"markdown", "| sequence | `foo.%03d.png` | 1-3,6 | 4 | 2 |"},
		{"html", "<code>foo.%03d.png</code>"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := execute(t, "browse", "--format", tt.format, root)
			if err != nil {
				t.Fatalf("browse returned error: %v", err)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("output should contain %q, got:\n%s", tt.want, stdout)
			}
		})
	}
}
