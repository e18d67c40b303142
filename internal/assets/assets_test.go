package assets

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reference = "slow_download.png"

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestModesOpenReference(t *testing.T) {
	for _, mode := range []Mode{ModeSource, ModeBundled} {
		t.Run(mode.String(), func(t *testing.T) {
			data, err := Read(New(mode), reference)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !bytes.HasPrefix(data, pngMagic) {
				t.Error("reference asset is not a PNG")
			}
		})
	}
}

func TestBundledMatchesImagesDir(t *testing.T) {
	src, err := Read(SourceDir("images"), reference)
	if err != nil {
		t.Fatal(err)
	}
	bundled, err := Read(Bundled(), reference)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, bundled) {
		t.Error("bundled and source copies differ")
	}
}

func TestSourceDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "button.png"), []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := SourceDir(dir)
	data, err := Read(r, "button.png")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Read() = %q, want payload", data)
	}
	if got, want := r.Locate("button.png"), filepath.Join(dir, "button.png"); got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestMissingAsset(t *testing.T) {
	for _, r := range []Resolver{Bundled(), SourceDir(t.TempDir())} {
		if _, err := Read(r, "missing.png"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Read(missing) error = %v, want fs.ErrNotExist", err)
		}
	}
}

func TestBundledLocate(t *testing.T) {
	if got, want := Bundled().Locate(reference), "bundled:images/"+reference; got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestSourceFindsReferenceAwayFromCheckout(t *testing.T) {
	r := Source()
	if _, err := Read(r, reference); err != nil {
		t.Fatalf("Read() error = %v, located at %s", err, r.Locate(reference))
	}

	exe, err := os.Executable()
	if err != nil {
		t.Skip("no executable path")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	loc := r.Locate(reference)
	if !strings.HasPrefix(loc, "bundled:") && !strings.HasPrefix(loc, filepath.Dir(exe)) {
		t.Errorf("Locate() = %q, want next to %s or bundled", loc, exe)
	}
}

func TestFallbackPrefersPrimary(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, reference), []byte("override"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Fallback(SourceDir(dir), Bundled())
	data, err := Read(r, reference)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "override" {
		t.Errorf("Read() = %q, want the on-disk copy", data)
	}
	if got, want := r.Locate(reference), filepath.Join(dir, reference); got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestFallbackUsesSecondaryWhenMissing(t *testing.T) {
	r := Fallback(SourceDir(t.TempDir()), Bundled())

	data, err := Read(r, reference)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("fallback did not return the bundled PNG")
	}
	if got := r.Locate(reference); !strings.HasPrefix(got, "bundled:") {
		t.Errorf("Locate() = %q, want the bundled location", got)
	}
	if _, err := Read(r, "missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read(missing) error = %v, want fs.ErrNotExist", err)
	}
}
