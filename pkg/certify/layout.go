package certify

import (
	"math"

	"golang.org/x/image/font"
)

// Point is a pixel draw origin: the top-left corner of the text's rendered
// bounding box.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Estimates used when text measurement fails on a degenerate font backend.
const (
	estimatedCharWidth  = 10
	estimatedTextHeight = 20
)

// MeasureText returns the rendered bounding box of text under the handle's
// face. A nil or panicking face degrades to a rough per-character estimate
// instead of an error.
func MeasureText(text string, fh *FontHandle) (tw, th int) {
	tw, th = len(text)*estimatedCharWidth, estimatedTextHeight

	if fh == nil || fh.Face == nil {
		return tw, th
	}

	defer func() {
		// Some font backends panic on degenerate glyph tables; keep the
		// estimate in that case.
		_ = recover()
	}()

	bounds, _ := font.BoundString(fh.Face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w > 0 && h > 0 {
		tw, th = w, h
	}

	return tw, th
}

// Padding returns the device-scaled inner padding for a rectangle of the
// given dimensions. Mobile preview canvases get proportionally more
// breathing room than desktop so text does not touch rectangle edges at the
// same base font size.
func Padding(rw, rh int, dc DeviceClass) (padX, padY int) {
	switch dc {
	case DeviceMobile:
		padX = maxInt(6, scale(rw, 0.08))
		padY = maxInt(6, scale(rh, 0.08))
	case DeviceDesktop:
		padX = maxInt(5, scale(rw, 0.05))
		padY = maxInt(5, scale(rh, 0.05))
	default:
		padX = maxInt(4, scale(rw, 0.06))
		padY = maxInt(6, scale(rh, 0.08))
	}
	return padX, padY
}

// Layout computes the draw origin that places text inside rect according to
// the alignment directives. The computation is two-pass: align, clamp into
// the padded box, then re-assert the alignment formula whenever the
// unclamped value already satisfies the bounds. Clamping alone can shift
// left-aligned text rightward when it does not fit, which would silently
// violate the alignment contract; the re-assertion only lets the clamp win
// when the content genuinely cannot fit.
func Layout(text string, fh *FontHandle, rect Rect, ha TextAlign, va VerticalAlign, dc DeviceClass) Point {
	tw, th := MeasureText(text, fh)

	rw, rh := rect.Width(), rect.Height()
	padX, padY := Padding(rw, rh, dc)

	x := alignX(rect, tw, padX, ha)
	y := alignY(rect, th, padY, va)

	loX, hiX := rect.X1+padX, rect.X2-tw-padX
	loY, hiY := rect.Y1+padY, rect.Y2-th-padY

	x = clampInt(x, loX, hiX)
	y = clampInt(y, loY, hiY)

	// Oversized text collapses the clamp to the lower bound and is allowed
	// to overflow visually; otherwise the alignment formula stands.
	if ix := alignX(rect, tw, padX, ha); ix >= loX && ix <= hiX {
		x = ix
	}
	if iy := alignY(rect, th, padY, va); iy >= loY && iy <= hiY {
		y = iy
	}

	return Point{X: x, Y: y}
}

func alignX(rect Rect, tw, padX int, ha TextAlign) int {
	switch ha {
	case TextAlignLeft:
		return rect.X1 + padX
	case TextAlignRight:
		return rect.X2 - tw - padX
	default:
		return rect.X1 + (rect.Width()-tw)/2
	}
}

func alignY(rect Rect, th, padY int, va VerticalAlign) int {
	switch va {
	case VerticalAlignTop:
		return rect.Y1 + padY
	case VerticalAlignBottom:
		return rect.Y2 - th - padY
	default:
		return rect.Y1 + (rect.Height()-th)/2
	}
}

// clampInt collapses to lo when the interval is empty, which is exactly the
// oversized-text case.
func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func scale(v int, factor float64) int {
	return int(math.Round(float64(v) * factor))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
