// Package render rasterizes an assembled scene to PNG. Primitives draw
// in scene order, so the layer sequence established at assembly time is
// preserved on the canvas.
package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/ChicagoDave/homeplanner/pkg/geo"
	"github.com/ChicagoDave/homeplanner/pkg/scene"
)

// Raster settings. Scene coordinates are y-up; the image is y-down, so
// every point flips through the canvas height.
const (
	pixelsPerUnit = 10.0
	marginUnits   = 14.0
)

// Renderer rasterizes scenes with a fixed scale and margin.
type Renderer struct {
	scale  float64
	margin float64
}

// New creates a renderer with default raster settings.
func New() *Renderer {
	return &Renderer{scale: pixelsPerUnit, margin: marginUnits}
}

// Render rasterizes the scene and writes a PNG to w.
func (r *Renderer) Render(sc *scene.Scene, w io.Writer) error {
	if sc == nil {
		return fmt.Errorf("nil scene")
	}

	bounds := sceneBounds(sc)
	width := int((bounds.W + 2*r.margin) * r.scale)
	height := int((bounds.H + 2*r.margin) * r.scale)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("scene has no drawable extent")
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	toX := func(x float64) float64 { return (x - bounds.X + r.margin) * r.scale }
	toY := func(y float64) float64 { return float64(height) - (y-bounds.Y+r.margin)*r.scale }

	for _, p := range sc.Primitives {
		r.drawPrimitive(dc, p, toX, toY)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (r *Renderer) drawPrimitive(dc *gg.Context, p scene.Primitive, toX, toY func(float64) float64) {
	switch p.Shape {
	case scene.ShapeRect:
		x := toX(p.Rect.X)
		y := toY(p.Rect.MaxY())
		w := p.Rect.W * r.scale
		h := p.Rect.H * r.scale

		if p.Style.Fill != "" {
			dc.SetColor(resolve(p.Style.Fill))
			dc.DrawRectangle(x, y, w, h)
			dc.Fill()
		}
		if p.Style.Stroke != "" {
			dc.SetColor(resolve(p.Style.Stroke))
			dc.SetLineWidth(max(p.Style.StrokeWidth, 1))
			dc.DrawRectangle(x, y, w, h)
			dc.Stroke()
		}

	case scene.ShapeCircle:
		cx := toX(p.Circle.Center.X)
		cy := toY(p.Circle.Center.Y)
		radius := p.Circle.Radius * r.scale

		if p.Style.Fill != "" {
			dc.SetColor(resolve(p.Style.Fill))
			dc.DrawCircle(cx, cy, radius)
			dc.Fill()
		}
		if p.Style.Stroke != "" {
			dc.SetColor(resolve(p.Style.Stroke))
			dc.SetLineWidth(max(p.Style.StrokeWidth, 1))
			dc.DrawCircle(cx, cy, radius)
			dc.Stroke()
		}

	case scene.ShapeText:
		// The context's built-in face is used; token only picks the ink color.
		dc.SetColor(resolve(p.Style.Fill))
		dc.DrawStringAnchored(p.Text, toX(p.At.X), toY(p.At.Y), 0.5, 0.5)
	}
}

// sceneBounds returns the union of all primitive extents.
func sceneBounds(sc *scene.Scene) geo.Rect {
	first := true
	var minX, minY, maxX, maxY float64
	grow := func(b geo.Rect) {
		if b.IsEmpty() {
			return
		}
		if first {
			minX, minY, maxX, maxY = b.X, b.Y, b.MaxX(), b.MaxY()
			first = false
			return
		}
		minX = min(minX, b.X)
		minY = min(minY, b.Y)
		maxX = max(maxX, b.MaxX())
		maxY = max(maxY, b.MaxY())
	}

	for _, p := range sc.Primitives {
		switch p.Shape {
		case scene.ShapeRect:
			grow(p.Rect)
		case scene.ShapeCircle:
			grow(p.Circle.Bounds())
		case scene.ShapeText:
			grow(geo.R(p.At.X-1, p.At.Y-1, 2, 2))
		}
	}
	if first {
		return geo.Rect{}
	}
	return geo.R(minX, minY, maxX-minX, maxY-minY)
}
