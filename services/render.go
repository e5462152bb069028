package services

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"sync"

	"shopshopapi/compositor"
	"shopshopapi/models"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type RenderServiceProvider interface {
	RenderSnapshot(layout compositor.SnapshotLayout, quality models.ImageQuality) ([]byte, error)
}

// GGRenderService rasterizes a snapshot layout to PNG: gradient or uploaded
// image background first, then every text element wrapped at its box width.
type GGRenderService struct{}

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontErr     error
)

func loadFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		return
	}
	boldFont, fontErr = opentype.Parse(gobold.TTF)
}

// faceFor picks the typeface for an element. Weights of 600 and up map to
// the bold face, everything else renders regular.
func faceFor(weight string, size float64) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fontErr
	}
	selected := regularFont
	switch weight {
	case "600", "700", "800", "900", "bold":
		selected = boldFont
	}
	return opentype.NewFace(selected, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func alignFor(textAlign string) gg.Align {
	switch textAlign {
	case "center":
		return gg.AlignCenter
	case "right":
		return gg.AlignRight
	default:
		return gg.AlignLeft
	}
}

// drawGradientBackground fills the context with the template's linear
// gradient at its CSS-style angle (135° runs top-left to bottom-right).
func drawGradientBackground(dc *gg.Context, gradient *compositor.Gradient, w, h float64) {
	radians := gradient.AngleDegrees * math.Pi / 180
	// CSS angles measure from the vertical, pointing along the gradient line.
	dx := math.Sin(radians)
	dy := -math.Cos(radians)
	cx, cy := w/2, h/2
	half := (math.Abs(dx)*w + math.Abs(dy)*h) / 2
	lg := gg.NewLinearGradient(cx-dx*half, cy-dy*half, cx+dx*half, cy+dy*half)
	for _, stop := range gradient.Stops {
		r, g, b := parseHexColor(stop.Color)
		lg.AddColorStop(stop.At, colorRGB{r, g, b})
	}
	dc.SetFillStyle(lg)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

func (s *GGRenderService) RenderSnapshot(layout compositor.SnapshotLayout, quality models.ImageQuality) ([]byte, error) {
	scale := quality.Scale()
	width := int(layout.CanvasWidth * scale)
	height := int(layout.CanvasHeight * scale)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	background := layout.Background
	if background.IsCustom && len(background.ImageData) > 0 {
		img, err := imaging.Decode(bytes.NewReader(background.ImageData))
		if err != nil {
			return nil, fmt.Errorf("failed to decode custom background: %w", err)
		}
		// center/cover semantics: fill the canvas, crop the overflow
		filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
		dc.DrawImage(filled, 0, 0)
	} else if background.Gradient != nil {
		drawGradientBackground(dc, background.Gradient, float64(width), float64(height))
	}

	for _, element := range layout.Elements {
		face, err := faceFor(element.FontWeight, element.FontSize*scale)
		if err != nil {
			return nil, fmt.Errorf("failed to load font face: %w", err)
		}
		dc.SetFontFace(face)
		dc.SetHexColor(element.Color)

		boxWidth := element.Width
		if boxWidth <= 0 || boxWidth > compositor.MaxElementRenderWidth {
			boxWidth = compositor.MaxElementRenderWidth
		}
		dc.DrawStringWrapped(
			element.Content,
			element.X*scale, element.Y*scale,
			0, 0,
			boxWidth*scale,
			1.5,
			alignFor(element.TextAlign),
		)
		face.Close()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot png: %w", err)
	}
	return buf.Bytes(), nil
}

// colorRGB adapts parsed hex channels to the color.Color gg wants.
type colorRGB struct {
	r, g, b float64
}

func (c colorRGB) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(c.r * 0xffff), uint32(c.g * 0xffff), uint32(c.b * 0xffff), 0xffff
}

func parseHexColor(hex string) (float64, float64, float64) {
	var r, g, b int
	if len(hex) == 7 {
		fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	} else if len(hex) == 4 {
		fmt.Sscanf(hex, "#%1x%1x%1x", &r, &g, &b)
		r *= 17
		g *= 17
		b *= 17
	}
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}
