package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFlipPixels(t *testing.T) {
	// 2x2, one colored pixel in the bottom-left as OpenGL sees it.
	pixels := []byte{
		255, 0, 0, 255, 0, 0, 0, 0, // bottom row
		0, 0, 0, 0, 0, 0, 0, 0, // top row
	}
	img := FlipPixels(pixels, 2, 2)

	r, _, _, a := img.At(0, 1).RGBA()
	if r == 0 || a == 0 {
		t.Errorf("expected colored pixel at (0,1) after flip, got r=%d a=%d", r, a)
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r != 0 {
		t.Errorf("expected empty pixel at (0,0) after flip, got r=%d", r)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for wrong pixel buffer size")
	}
}

func TestCaptureFromPixelsWritesPNG(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "test")

	pixels := make([]byte, 4*4*4)
	path, err := sc.CaptureFromPixels(pixels, 4, 4)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "test_") {
		t.Errorf("unexpected filename %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("wrote empty file")
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "ensnano")
	name := sc.GenerateFilename()
	if !strings.HasPrefix(name, "shots"+string(filepath.Separator)+"ensnano_") {
		t.Errorf("unexpected filename %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("missing .png suffix in %q", name)
	}
}
