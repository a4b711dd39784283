package cmd

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testTree = `format: v1
root:
  name: window
  kind: hbox
  size: [300, 40]
  padding: [4]
  children:
    - name: label
      size: [80, 32]
    - name: volume
      kind: slider
      h_policy: expanding
      size: [0, 32]
      slider: {value: 25}
`

func writeTree(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(testTree), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestExecuteVersion(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output %q does not mention %s", out.String(), Version)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	captureStdout(t)
	if err := Execute([]string{"paint"}); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestExecuteCommandHelp(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"render", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "pane render") {
		t.Errorf("help output missing usage: %q", out.String())
	}
}

func TestRunLayout(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"layout", writeTree(t), "--set", "volume=50"}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[0], "WIDGET") {
		t.Fatalf("missing header: %q", lines[0])
	}
	want := []string{"window", "  label", "  volume", "    volume.track", "      volume.button"}
	for i, name := range want {
		if !strings.HasPrefix(lines[i+1], name+" ") {
			t.Errorf("line %d = %q, want widget %q", i+1, lines[i+1], name)
		}
	}
	// The slider takes the 212px left after the label and is fixed on height.
	if !strings.Contains(lines[3], "212.0") {
		t.Errorf("volume line %q should report a width of 212", lines[3])
	}
	if !strings.Contains(out.String(), "slider volume = 50") {
		t.Errorf("missing slider value in %q", out.String())
	}
}

func TestRunLayoutRejectsUnknownSlider(t *testing.T) {
	captureStdout(t)
	err := Execute([]string{"layout", writeTree(t), "--set=gain=1"})
	if err == nil || !strings.Contains(err.Error(), "volume") {
		t.Fatalf("expected an error listing the known sliders, got %v", err)
	}
}

func TestRunRender(t *testing.T) {
	out := captureStdout(t)
	dst := filepath.Join(t.TempDir(), "out.png")
	if err := Execute([]string{"render", writeTree(t), "-o", dst, "--scale", "2", "--labels"}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 80 {
		t.Errorf("image is %dx%d, want 600x80", b.Dx(), b.Dy())
	}
	if !strings.Contains(out.String(), "Wrote "+dst) {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"minimal", []string{"tree.yaml", "-o", "out.png"}, false},
		{"all flags", []string{"tree.yaml", "--output", "out.png", "--theme", "t.yaml", "--set", "a=1", "--scale", "0.5", "--outline", "--watch"}, false},
		{"missing output", []string{"tree.yaml"}, true},
		{"dangling output", []string{"tree.yaml", "-o"}, true},
		{"bad scale", []string{"tree.yaml", "-o", "out.png", "--scale", "-1"}, true},
		{"two files", []string{"a.yaml", "b.yaml", "-o", "out.png"}, true},
		{"unknown flag", []string{"tree.yaml", "-o", "out.png", "--dpi", "2"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseRenderArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestFileWatcherReportsWrites(t *testing.T) {
	path := writeTree(t)
	other := filepath.Join(filepath.Dir(path), "notes.txt")

	fw, err := newFileWatcher(path, "")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan string, 8)
	done := make(chan error, 1)
	go func() { done <- fw.run(ctx, func(p string) { changed <- p }) }()

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(testTree), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("changed path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
