package model

import (
	"testing"

	"github.com/techbuddyspace/certify/pkg/certify"
)

func intPtr(v int) *int { return &v }

func TestPlaceholderToCore(t *testing.T) {
	p := Placeholder{
		Key:           "student_name",
		X:             100,
		Y:             200,
		FontSize:      52,
		Color:         "#112233",
		X1:            intPtr(600),
		Y1:            intPtr(600),
		X2:            intPtr(1400),
		Y2:            intPtr(700),
		TextAlign:     "center",
		VerticalAlign: "center",
	}

	core := p.ToCore()

	if core.Key != certify.KeyStudentName {
		t.Errorf("Key = %q, want %q", core.Key, certify.KeyStudentName)
	}
	if core.FontSize != 52 || core.Color != "#112233" {
		t.Errorf("FontSize/Color not carried over: %d %q", core.FontSize, core.Color)
	}
	if !core.HasRect() {
		t.Fatal("expected a full rectangle")
	}

	rect := core.Rect()
	if rect.Width() != 800 || rect.Height() != 100 {
		t.Errorf("rect = %dx%d, want 800x100", rect.Width(), rect.Height())
	}
}

func TestPlaceholderToCoreWithoutRect(t *testing.T) {
	p := Placeholder{Key: "date", X: 50, Y: 1300}

	core := p.ToCore()
	if core.HasRect() {
		t.Error("placeholder without corner columns should have no rectangle")
	}
	if core.X != 50 || core.Y != 1300 {
		t.Errorf("point = (%d, %d), want (50, 1300)", core.X, core.Y)
	}
}

func TestToCorePlaceholders(t *testing.T) {
	rows := []Placeholder{
		{Key: "student_name"},
		{Key: "qr_code", X1: intPtr(1800), Y1: intPtr(1200)},
	}

	out := ToCorePlaceholders(rows)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[1].Key != certify.KeyQRCode || out[1].X1 == nil || *out[1].X1 != 1800 {
		t.Errorf("qr placeholder not converted: %+v", out[1])
	}
}
