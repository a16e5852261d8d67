package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessImageSmallImageKeepsSize(t *testing.T) {
	out, err := ProcessImage(encodePNG(t, 640, 480))
	if err != nil {
		t.Fatalf("ProcessImage() unexpected error: %v", err)
	}

	decoded, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid webp: %v", err)
	}

	if decoded.Bounds().Dx() != 640 || decoded.Bounds().Dy() != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}

func TestProcessImageResizesWideImage(t *testing.T) {
	out, err := ProcessImage(encodePNG(t, 2560, 1440))
	if err != nil {
		t.Fatalf("ProcessImage() unexpected error: %v", err)
	}

	decoded, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid webp: %v", err)
	}

	if decoded.Bounds().Dx() != maxImageWidth {
		t.Errorf("width = %d, want %d", decoded.Bounds().Dx(), maxImageWidth)
	}
	if decoded.Bounds().Dy() != 720 {
		t.Errorf("height = %d, want 720 (aspect preserved)", decoded.Bounds().Dy())
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, err := ProcessImage([]byte("definitely not an image")); err == nil {
		t.Error("expected error for invalid image data")
	}
}
