package graphics

import "testing"

func TestRasterizeText(t *testing.T) {
	face, err := NewFace(32)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer face.Close()

	img, err := RasterizeText(face, "Plaza")
	if err != nil {
		t.Fatalf("RasterizeText: %v", err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		t.Fatalf("empty image bounds: %v", img.Bounds())
	}

	covered := 0
	for _, a := range img.Pix {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("no glyph coverage in rasterized text")
	}
}

func TestRasterizeTextWiderForLongerStrings(t *testing.T) {
	face, err := NewFace(32)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer face.Close()

	short, err := RasterizeText(face, "ab")
	if err != nil {
		t.Fatal(err)
	}
	long, err := RasterizeText(face, "abcdefgh")
	if err != nil {
		t.Fatal(err)
	}
	if long.Bounds().Dx() <= short.Bounds().Dx() {
		t.Errorf("longer text not wider: %d vs %d", long.Bounds().Dx(), short.Bounds().Dx())
	}
}

func TestRasterizeTextEmpty(t *testing.T) {
	face, err := NewFace(32)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer face.Close()

	if _, err := RasterizeText(face, ""); err == nil {
		t.Error("expected error for empty text")
	}
}
