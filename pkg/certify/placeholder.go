package certify

import (
	"fmt"
	"image/color"
	"strings"
)

// Placeholder rectangles are authored against this fixed reference canvas.
// Template images are expected to be scaled to it before upload; coordinates
// are absolute pixels and are never rescaled at render time.
const (
	ReferenceCanvasWidth  = 2000
	ReferenceCanvasHeight = 1414
)

type PlaceholderKey string

const (
	KeyStudentName   PlaceholderKey = "student_name"
	KeyDate          PlaceholderKey = "date"
	KeyCertificateNo PlaceholderKey = "certificate_no"
	KeyQRCode        PlaceholderKey = "qr_code"
)

type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignCenter VerticalAlign = "center"
	VerticalAlignBottom VerticalAlign = "bottom"
)

// DeviceClass is a per-request rendering hint. It only scales padding and
// font size for that single render and is never persisted.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
	DeviceUnknown DeviceClass = "unknown"
)

func ParseDeviceClass(s string) DeviceClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(DeviceDesktop):
		return DeviceDesktop
	case string(DeviceMobile):
		return DeviceMobile
	default:
		return DeviceUnknown
	}
}

// FontSizeMultiplier returns the device font scaling applied to a
// placeholder's base font size.
func (dc DeviceClass) FontSizeMultiplier() float64 {
	switch dc {
	case DeviceMobile:
		return 1.2
	case DeviceDesktop:
		return 1.0
	default:
		return 1.05
	}
}

// Placeholder describes where and how one dynamic field is rendered onto a
// template. Legacy placeholders carry only the point (X, Y); the rectangle
// corners may be absent, in which case the compositor falls back to default
// positioning derived from the template's actual dimensions.
type Placeholder struct {
	Key      PlaceholderKey `json:"key" form:"key" binding:"required"`
	X        int            `json:"x" form:"x"`
	Y        int            `json:"y" form:"y"`
	FontSize int            `json:"fontSize" form:"fontSize"`
	Color    string         `json:"color" form:"color"`
	// Rectangle corners on the reference canvas, x2 > x1 and y2 > y1.
	X1            *int          `json:"x1,omitempty" form:"x1"`
	Y1            *int          `json:"y1,omitempty" form:"y1"`
	X2            *int          `json:"x2,omitempty" form:"x2"`
	Y2            *int          `json:"y2,omitempty" form:"y2"`
	TextAlign     TextAlign     `json:"textAlign" form:"textAlign"`
	VerticalAlign VerticalAlign `json:"verticalAlign" form:"verticalAlign"`
}

// HasRect reports whether all four rectangle corners are present.
func (p Placeholder) HasRect() bool {
	return p.X1 != nil && p.Y1 != nil && p.X2 != nil && p.Y2 != nil
}

func (p Placeholder) Rect() Rect {
	return Rect{X1: *p.X1, Y1: *p.Y1, X2: *p.X2, Y2: *p.Y2}
}

// Rect is a placeholder rectangle in reference-canvas pixels.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }

func (r Rect) Valid() bool {
	return r.X2 > r.X1 && r.Y2 > r.Y1
}

// DefaultInkColor is the fill used when a placeholder carries no color or a
// malformed one. Dark blue, matching the original template set.
const DefaultInkColor = "#0b2a4a"

// ParseHexColor parses a "#rrggbb" string. Malformed input yields the
// default ink color rather than an error; placeholder styling is advisory.
func ParseHexColor(s string) color.RGBA {
	c, err := parseHexColor(s)
	if err != nil {
		c, _ = parseHexColor(DefaultInkColor)
	}
	return c
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
