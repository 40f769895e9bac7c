package card

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/festwish/wish-service/internal/domain"
)

const (
	DefaultWidth  = 1080
	DefaultHeight = 1350

	bandRatio   = 0.4 // bottom share of the canvas covered by the overlay
	bandAlpha   = 140
	textPadding = 50

	greetingAdvance = 60
	messageAdvance  = 45
	quoteGap        = 20
	quoteAdvance    = 35

	maxMessageLines = 5
	maxQuoteLines   = 2

	jpegQuality = 90
)

var (
	messageColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	quoteColor   = color.NRGBA{R: 255, G: 215, B: 0, A: 255} // gold accent
)

// Options controls a single render call. Zero Width/Height fall back to the
// standard portrait card dimensions.
type Options struct {
	MessageText   string
	RecipientName string
	QuoteText     string
	Width         int
	Height        int
}

// Renderer composites greeting text onto a background image and encodes the
// result as a JPEG card.
type Renderer struct {
	mediumFace font.Face
	smallFace  font.Face

	// font.Face glyph caches are not safe for concurrent use.
	mu sync.Mutex
}

func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}

	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse italic font: %w", err)
	}

	mediumFace, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    36,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create medium face: %w", err)
	}

	smallFace, err := opentype.NewFace(italic, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create small face: %w", err)
	}

	return &Renderer{
		mediumFace: mediumFace,
		smallFace:  smallFace,
	}, nil
}

// Render decodes the background, stretches it to the target dimensions,
// darkens the bottom band for legibility and lays out the greeting, message
// and quote text. Any decode or encode failure is fatal for the call; no
// retries happen here.
func (r *Renderer) Render(background []byte, opts Options) ([]byte, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}

	src, err := imaging.Decode(bytes.NewReader(background))
	if err != nil {
		return nil, domain.RenderingError(fmt.Errorf("decode background: %w", err))
	}

	// Resize to exact dimensions; extreme aspect ratios stretch rather than
	// crop.
	canvas := imaging.Resize(src, width, height, imaging.Lanczos)

	bandTop := height - int(float64(height)*bandRatio)
	draw.Draw(
		canvas,
		image.Rect(0, bandTop, width, height),
		image.NewUniform(color.NRGBA{A: bandAlpha}),
		image.Point{},
		draw.Over,
	)

	r.mu.Lock()
	r.drawText(canvas, bandTop, width, opts)
	r.mu.Unlock()

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, domain.RenderingError(fmt.Errorf("encode card: %w", err))
	}

	return buf.Bytes(), nil
}

func (r *Renderer) drawText(canvas draw.Image, bandTop, width int, opts Options) {
	maxTextWidth := width - textPadding*2
	y := bandTop + textPadding

	if opts.RecipientName != "" {
		r.drawLine(canvas, fmt.Sprintf("Dear %s,", opts.RecipientName), r.mediumFace, messageColor, y)
		y += greetingAdvance
	}

	lines := Wrap(opts.MessageText, r.mediumFace, maxTextWidth)
	if len(lines) > maxMessageLines {
		lines = lines[:maxMessageLines]
	}
	for _, line := range lines {
		r.drawLine(canvas, line, r.mediumFace, messageColor, y)
		y += messageAdvance
	}

	if opts.QuoteText != "" {
		y += quoteGap

		quoteLines := Wrap(`"`+opts.QuoteText+`"`, r.smallFace, maxTextWidth)
		if len(quoteLines) > maxQuoteLines {
			quoteLines = quoteLines[:maxQuoteLines]
		}
		for _, line := range quoteLines {
			r.drawLine(canvas, line, r.smallFace, quoteColor, y)
			y += quoteAdvance
		}
	}
}

// drawLine draws text anchored at the top-left corner (x=textPadding, y=top).
func (r *Renderer) drawLine(dst draw.Image, text string, face font.Face, fill color.Color, top int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.P(textPadding, top+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
