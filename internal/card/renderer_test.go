package card

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/festwish/wish-service/internal/domain"
)

func newTestBackground(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 40, G: 90, B: 160, A: 255})

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("failed to encode test background: %v", err)
	}

	return buf.Bytes()
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	return r
}

func TestRender_OutputHasRequestedDimensions(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(newTestBackground(t, 640, 480), Options{
		MessageText:   "Happy Diwali! May your home be filled with light.",
		RecipientName: "Asha",
		QuoteText:     "Darkness cannot drive out darkness; only light can do that.",
		Width:         360,
		Height:        450,
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a decodable image: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 360 || bounds.Dy() != 450 {
		t.Errorf("expected 360x450 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRender_ExtremeAspectRatioStillExactSize(t *testing.T) {
	r := newTestRenderer(t)

	// A very wide background must still come out at the exact card size;
	// stretching is accepted, cropping is not performed.
	out, err := r.Render(newTestBackground(t, 1200, 60), Options{
		MessageText: "Season's greetings",
		Width:       300,
		Height:      375,
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a decodable image: %v", err)
	}

	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 375 {
		t.Errorf("expected 300x375, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRender_DefaultDimensions(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(newTestBackground(t, 200, 200), Options{
		MessageText: "Eid Mubarak to you and your family",
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a decodable image: %v", err)
	}

	if img.Bounds().Dx() != DefaultWidth || img.Bounds().Dy() != DefaultHeight {
		t.Errorf("expected %dx%d, got %dx%d",
			DefaultWidth, DefaultHeight, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRender_UndecodableBackgroundFails(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.Render([]byte("definitely not an image"), Options{
		MessageText: "hello",
		Width:       100,
		Height:      100,
	})
	if err == nil {
		t.Fatalf("expected error for undecodable background")
	}
	if !errors.Is(err, domain.ErrRendering) {
		t.Errorf("expected ErrRendering, got %v", err)
	}
}
