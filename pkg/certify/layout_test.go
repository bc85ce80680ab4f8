package certify

import (
	"testing"

	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// bitmapHandle gives tests a deterministic face independent of whatever
// fonts the machine has installed.
func bitmapHandle(size int) *FontHandle {
	return &FontHandle{Face: basicfont.Face7x13, RequestedSize: size, Builtin: true}
}

func intPtr(v int) *int { return &v }

func TestMeasureTextFallback(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		fh     *FontHandle
		wantTW int
		wantTH int
	}{
		{"nil handle", "hello", nil, 50, 20},
		{"nil face", "hello", &FontHandle{}, 50, 20},
		{"empty text nil handle", "", nil, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw, th := MeasureText(tt.text, tt.fh)
			if tw != tt.wantTW || th != tt.wantTH {
				t.Errorf("MeasureText() = (%d, %d), want (%d, %d)", tw, th, tt.wantTW, tt.wantTH)
			}
		})
	}
}

func TestMeasureTextWithFace(t *testing.T) {
	tw, th := MeasureText("Alice Johnson", bitmapHandle(48))
	if tw <= 0 || th <= 0 {
		t.Fatalf("MeasureText() = (%d, %d), want positive extents", tw, th)
	}
	// 13 glyphs at a 7px advance should be close to 91px wide.
	if tw < 80 || tw > 100 {
		t.Errorf("unexpected width %d for 13 glyphs of Face7x13", tw)
	}
}

func TestPaddingProfiles(t *testing.T) {
	tests := []struct {
		name     string
		rw, rh   int
		dc       DeviceClass
		wantPadX int
		wantPadY int
	}{
		{"desktop 5 percent", 800, 100, DeviceDesktop, 40, 5},
		{"desktop floor", 40, 40, DeviceDesktop, 5, 5},
		{"mobile 8 percent", 800, 100, DeviceMobile, 64, 8},
		{"mobile floor", 40, 40, DeviceMobile, 6, 6},
		{"unknown profile", 800, 100, DeviceUnknown, 48, 8},
		{"unknown floors", 20, 20, DeviceUnknown, 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padX, padY := Padding(tt.rw, tt.rh, tt.dc)
			if padX != tt.wantPadX || padY != tt.wantPadY {
				t.Errorf("Padding(%d, %d, %s) = (%d, %d), want (%d, %d)",
					tt.rw, tt.rh, tt.dc, padX, padY, tt.wantPadX, tt.wantPadY)
			}
		})
	}
}

func TestMobilePaddingExceedsDesktop(t *testing.T) {
	for _, rw := range []int{50, 200, 800, 2000} {
		dx, dy := Padding(rw, rw, DeviceDesktop)
		mx, my := Padding(rw, rw, DeviceMobile)
		if mx <= dx || my <= dy {
			t.Errorf("rw=%d: mobile padding (%d,%d) not larger than desktop (%d,%d)", rw, mx, my, dx, dy)
		}
	}
}

func TestLayoutAlignment(t *testing.T) {
	rect := Rect{X1: 600, Y1: 600, X2: 1400, Y2: 700}
	fh := bitmapHandle(48)
	text := "Alice Johnson"
	tw, th := MeasureText(text, fh)

	padX, padY := Padding(rect.Width(), rect.Height(), DeviceDesktop)

	tests := []struct {
		name  string
		ha    TextAlign
		va    VerticalAlign
		wantX int
		wantY int
	}{
		{"center center", TextAlignCenter, VerticalAlignCenter,
			rect.X1 + (rect.Width()-tw)/2, rect.Y1 + (rect.Height()-th)/2},
		{"left top", TextAlignLeft, VerticalAlignTop,
			rect.X1 + padX, rect.Y1 + padY},
		{"right bottom", TextAlignRight, VerticalAlignBottom,
			rect.X2 - tw - padX, rect.Y2 - th - padY},
		{"unrecognized behaves as center", TextAlign("justify"), VerticalAlign("middle"),
			rect.X1 + (rect.Width()-tw)/2, rect.Y1 + (rect.Height()-th)/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Layout(text, fh, rect, tt.ha, tt.va, DeviceDesktop)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Layout() = (%d, %d), want (%d, %d)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestLayoutCenterMidpoint(t *testing.T) {
	// Template 2000×1414, student_name rect (600,600)-(1400,700), desktop:
	// the text midpoint must land on the rectangle midpoint within half a
	// pixel once metrics are accounted for.
	rect := Rect{X1: 600, Y1: 600, X2: 1400, Y2: 700}
	fh := bitmapHandle(48)
	text := "Alice Johnson"
	tw, _ := MeasureText(text, fh)

	got := Layout(text, fh, rect, TextAlignCenter, VerticalAlignCenter, DeviceDesktop)

	textMid := float64(got.X) + float64(tw)/2
	rectMid := float64(rect.X1+rect.X2) / 2
	if diff := textMid - rectMid; diff < -1 || diff > 1 {
		t.Errorf("text midpoint %.1f, rect midpoint %.1f", textMid, rectMid)
	}
}

func TestLayoutLeftPadDesktop(t *testing.T) {
	// 800px wide rect on desktop: pad_x = max(5, 800*0.05) = 40.
	rect := Rect{X1: 600, Y1: 600, X2: 1400, Y2: 700}
	got := Layout("2025-07-10", bitmapHandle(18), rect, TextAlignLeft, VerticalAlignCenter, DeviceDesktop)
	if got.X != 640 {
		t.Errorf("left-aligned x = %d, want 640", got.X)
	}
}

func TestLayoutDeviceClassChangesOrigin(t *testing.T) {
	rect := Rect{X1: 600, Y1: 600, X2: 1400, Y2: 700}
	fh := bitmapHandle(18)

	desktop := Layout("2025-07-10", fh, rect, TextAlignLeft, VerticalAlignTop, DeviceDesktop)
	mobile := Layout("2025-07-10", fh, rect, TextAlignLeft, VerticalAlignTop, DeviceMobile)

	if mobile.X <= desktop.X {
		t.Errorf("mobile x %d should exceed desktop x %d for left alignment", mobile.X, desktop.X)
	}
	if mobile.Y <= desktop.Y {
		t.Errorf("mobile y %d should exceed desktop y %d for top alignment", mobile.Y, desktop.Y)
	}
}

func TestLayoutFitsInsideRect(t *testing.T) {
	rect := Rect{X1: 100, Y1: 100, X2: 500, Y2: 200}
	fh := bitmapHandle(20)
	text := "fits"
	tw, th := MeasureText(text, fh)

	aligns := []TextAlign{TextAlignLeft, TextAlignCenter, TextAlignRight}
	valigns := []VerticalAlign{VerticalAlignTop, VerticalAlignCenter, VerticalAlignBottom}

	for _, ha := range aligns {
		for _, va := range valigns {
			got := Layout(text, fh, rect, ha, va, DeviceDesktop)
			if got.X < rect.X1 || got.X+tw > rect.X2 || got.Y < rect.Y1 || got.Y+th > rect.Y2 {
				t.Errorf("%s/%s: origin (%d,%d) with extent (%d,%d) escapes %+v",
					ha, va, got.X, got.Y, tw, th, rect)
			}
		}
	}
}

func TestLayoutOversizedTextClampsToLowerBound(t *testing.T) {
	// A rect narrower than the text: the clamp collapses to the padded
	// lower bound and the text is allowed to overflow rightward.
	rect := Rect{X1: 100, Y1: 100, X2: 140, Y2: 120}
	fh := bitmapHandle(20)
	text := "a very long line that cannot possibly fit"

	padX, padY := Padding(rect.Width(), rect.Height(), DeviceDesktop)

	for _, ha := range []TextAlign{TextAlignLeft, TextAlignCenter, TextAlignRight} {
		got := Layout(text, fh, rect, ha, VerticalAlignCenter, DeviceDesktop)
		if got.X != rect.X1+padX {
			t.Errorf("%s: x = %d, want lower bound %d", ha, got.X, rect.X1+padX)
		}
	}

	_, th := MeasureText(text, fh)
	if th < rect.Height()-2*padY {
		return
	}
	got := Layout(text, fh, rect, TextAlignCenter, VerticalAlignBottom, DeviceDesktop)
	if got.Y != rect.Y1+padY {
		t.Errorf("oversized y = %d, want lower bound %d", got.Y, rect.Y1+padY)
	}
}
