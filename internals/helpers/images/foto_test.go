package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngFoto(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 120, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestControllaFoto(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"ok", pngFoto(t, 80, 80), nil},
		{"limite", pngFoto(t, FotoMaxSize, FotoMaxSize), nil},
		{"non quadrata", pngFoto(t, 80, 60), ErrFotoQuadrata},
		{"troppo grande", pngFoto(t, 150, 150), ErrFotoLarghezza},
		{"testo", []byte("questa non è una foto"), ErrFotoTipo},
		{"vuota", nil, ErrFotoCorrotta},
		{"troncata", pngFoto(t, 40, 40)[:60], ErrFotoCorrotta},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := ControllaFoto(c.data); !errors.Is(err, c.want) {
				t.Fatalf("ControllaFoto = %v, want %v", err, c.want)
			}
		})
	}
}

func TestNormalizzaFoto(t *testing.T) {
	out, err := NormalizzaFoto(pngFoto(t, 300, 200))
	if err != nil {
		t.Fatalf("NormalizzaFoto: %v", err)
	}
	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if b := img.Bounds(); b.Dx() != FotoMaxSize || b.Dy() != FotoMaxSize {
		t.Fatalf("size = %dx%d", b.Dx(), b.Dy())
	}
	if err := ControllaFoto(out); err != nil {
		t.Fatalf("normalised photo rejected: %v", err)
	}
}

func TestNormalizzaFotoPiccolaNonIngrandisce(t *testing.T) {
	out, err := NormalizzaFoto(pngFoto(t, 40, 64))
	if err != nil {
		t.Fatalf("NormalizzaFoto: %v", err)
	}
	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("size = %dx%d", b.Dx(), b.Dy())
	}
}
