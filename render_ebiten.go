package tactile

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ Renderer = (*Canvas)(nil)

// whitePixelImage is a 1x1 white image scaled and tinted for rectangle fills.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.RGBA())
	}
	return whitePixelImage
}

// Canvas is a persistent off-screen framebuffer that elements paint into.
// Unlike the ebiten screen it is not cleared between frames, so only elements
// that change need to redraw, the way a display controller's framebuffer
// behaves.
type Canvas struct {
	img    *ebiten.Image
	logger *slog.Logger

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
}

// NewCanvas allocates a width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:           ebiten.NewImage(width, height),
		logger:        slog.Default(),
		ScreenshotDir: "screenshots",
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Bounds returns the canvas area as a box at the origin.
func (c *Canvas) Bounds() BoundingBox {
	b := c.img.Bounds()
	return NewBoundingBox(0, 0, int32(b.Dx()), int32(b.Dy()))
}

// FillRect paints box with col. Fully transparent colors draw nothing.
func (c *Canvas) FillRect(box BoundingBox, col Color) {
	if col.A <= 0 || box.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(box.Width), float64(box.Height))
	op.GeoM.Translate(float64(box.X), float64(box.Y))
	op.ColorScale.ScaleWithColor(col.RGBA())
	c.img.DrawImage(ensureWhitePixel(), op)
}

// StrokeRect paints a width-pixel border just inside box.
func (c *Canvas) StrokeRect(box BoundingBox, width int, col Color) {
	w := int32(width)
	if w <= 0 || box.Empty() {
		return
	}
	if 2*w >= box.Width || 2*w >= box.Height {
		c.FillRect(box, col)
		return
	}
	c.FillRect(NewBoundingBox(box.X, box.Y, box.Width, w), col)
	c.FillRect(NewBoundingBox(box.X, box.Y+box.Height-w, box.Width, w), col)
	c.FillRect(NewBoundingBox(box.X, box.Y+w, w, box.Height-2*w), col)
	c.FillRect(NewBoundingBox(box.X+box.Width-w, box.Y+w, w, box.Height-2*w), col)
}

// ClearRect makes box fully transparent. Parts outside the canvas are
// ignored.
func (c *Canvas) ClearRect(box BoundingBox) {
	r := box.Rectangle().Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}
