package tracks

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestRunListsRecognizedFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, f := range []string{
		"library/03. Gamma.mp3",
		"library/01. Alpha.flac",
		"library/readme.txt",
	} {
		if err := afero.WriteFile(fsys, f, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var stdout, stderr strings.Builder
	code := Run(&Params{Dir: "library"}, fsys, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Alpha", "Gamma", "frame-coded", "sample-coded"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "readme") {
		t.Errorf("non-audio file listed:\n%s", out)
	}
	if strings.Index(out, "Alpha") > strings.Index(out, "Gamma") {
		t.Errorf("rows not in title order:\n%s", out)
	}
}

func TestRunEmptyDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("library", 0o755); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr strings.Builder
	if code := Run(&Params{Dir: "library"}, fsys, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "no audio files") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunMissingDir(t *testing.T) {
	var stdout, stderr strings.Builder
	if code := Run(&Params{Dir: "nope"}, afero.NewMemMapFs(), &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "nope") {
		t.Errorf("stderr = %q, want the directory named", stderr.String())
	}
}
