// Package images checks and normalises the student photos stored with the
// user record.
package images

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// FotoMaxSize is the side, in pixels, of a stored photo.
const FotoMaxSize = 100

// The error text is the message key shown to the user.
var (
	ErrFotoCorrotta  = errors.New("image.corrupted")
	ErrFotoTipo      = errors.New("image.type")
	ErrFotoQuadrata  = errors.New("image.notsquare")
	ErrFotoLarghezza = errors.New("image.width")
	ErrFotoAltezza   = errors.New("image.height")
)

type decoder func(*bytes.Reader) (image.Image, error)

var decoders = map[string]decoder{
	"image/jpeg": func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) },
	"image/png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
	"image/webp": func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
}

func decodeFoto(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrFotoCorrotta
	}
	dec, ok := decoders[mimetype.Detect(data).String()]
	if !ok {
		return nil, ErrFotoTipo
	}
	img, err := dec(bytes.NewReader(data))
	if err != nil {
		return nil, ErrFotoCorrotta
	}
	return img, nil
}

// ControllaFoto accepts only a decodable square image no larger than FotoMaxSize.
func ControllaFoto(data []byte) error {
	img, err := decodeFoto(data)
	if err != nil {
		return err
	}
	b := img.Bounds()
	switch {
	case b.Dx() != b.Dy():
		return ErrFotoQuadrata
	case b.Dx() > FotoMaxSize:
		return ErrFotoLarghezza
	case b.Dy() > FotoMaxSize:
		return ErrFotoAltezza
	}
	return nil
}

// NormalizzaFoto crops the centred square, shrinks it to FotoMaxSize when
// larger and returns it as WebP.
func NormalizzaFoto(data []byte) ([]byte, error) {
	img, err := decodeFoto(data)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	lato := b.Dx()
	if b.Dy() < lato {
		lato = b.Dy()
	}
	quadrata := imaging.CropCenter(img, lato, lato)
	if lato > FotoMaxSize {
		quadrata = imaging.Fit(quadrata, FotoMaxSize, FotoMaxSize, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, quadrata, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
