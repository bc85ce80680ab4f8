package certify

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testCompositor() *Compositor {
	cfg := NewDefaultConfig()
	cfg.FontDir = "testdata/no-such-dir"
	return NewCompositor(cfg, nopLogger())
}

func templatePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 240, G: 235, B: 220, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test template: %v", err)
	}
	return buf.Bytes()
}

func baseRequest() ComposeRequest {
	return ComposeRequest{
		StudentName: "Alice Johnson",
		CourseName:  "Go Fundamentals",
		DateStr:     "2025-07-10",
		DeviceClass: DeviceDesktop,
	}
}

func TestComposeBytesUndecodableTemplate(t *testing.T) {
	c := testCompositor()

	_, err := c.ComposeBytes([]byte("definitely not an image"), baseRequest())
	if !errors.Is(err, ErrTemplateDecode) {
		t.Fatalf("err = %v, want ErrTemplateDecode", err)
	}
}

func TestComposeInputValidation(t *testing.T) {
	c := testCompositor()
	tmpl := templatePNG(t, 400, 300)

	tests := []struct {
		name    string
		mutate  func(*ComposeRequest)
		wantErr error
	}{
		{
			"empty student name",
			func(r *ComposeRequest) { r.StudentName = "   " },
			ErrEmptyStudentName,
		},
		{
			"zero area rectangle",
			func(r *ComposeRequest) {
				r.Placeholders = []Placeholder{{
					Key: KeyStudentName,
					X1:  intPtr(500), Y1: intPtr(300), X2: intPtr(500), Y2: intPtr(400),
				}}
			},
			ErrZeroAreaRect,
		},
		{
			"inverted rectangle",
			func(r *ComposeRequest) {
				r.Placeholders = []Placeholder{{
					Key: KeyDate,
					X1:  intPtr(500), Y1: intPtr(400), X2: intPtr(300), Y2: intPtr(300),
				}}
			},
			ErrZeroAreaRect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			_, err := c.ComposeBytes(tmpl, req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComposeWithPlaceholders(t *testing.T) {
	c := testCompositor()
	tmpl := templatePNG(t, ReferenceCanvasWidth, ReferenceCanvasHeight)

	req := baseRequest()
	req.Placeholders = []Placeholder{
		{
			Key: KeyStudentName, FontSize: 48, Color: "#0b2a4a",
			X1: intPtr(600), Y1: intPtr(600), X2: intPtr(1400), Y2: intPtr(700),
			TextAlign: TextAlignCenter, VerticalAlign: VerticalAlignCenter,
		},
		{
			Key: KeyDate, FontSize: 18,
			X1: intPtr(600), Y1: intPtr(900), X2: intPtr(1400), Y2: intPtr(1000),
			TextAlign: TextAlignLeft, VerticalAlign: VerticalAlignCenter,
		},
		{
			Key: KeyCertificateNo, FontSize: 16,
			X1: intPtr(600), Y1: intPtr(1100), X2: intPtr(1400), Y2: intPtr(1200),
			TextAlign: TextAlignRight, VerticalAlign: VerticalAlignCenter,
		},
		{
			Key: KeyQRCode,
			X1:  intPtr(1800), Y1: intPtr(1200),
		},
	}

	res, err := c.ComposeBytes(tmpl, req)
	if err != nil {
		t.Fatalf("ComposeBytes() error: %v", err)
	}

	if !certificateIDPattern.MatchString(res.CertificateID) {
		t.Errorf("certificate id %q does not match the TBS format", res.CertificateID)
	}

	for _, key := range []PlaceholderKey{KeyStudentName, KeyDate, KeyCertificateNo, KeyQRCode} {
		if _, ok := res.Positions[key]; !ok {
			t.Errorf("missing position for %s", key)
		}
	}

	// QR placement is a direct corner paste, no alignment adjustment.
	if qr := res.Positions[KeyQRCode]; qr.X != 1800 || qr.Y != 1200 {
		t.Errorf("qr position = (%d, %d), want (1800, 1200)", qr.X, qr.Y)
	}

	// Date is left-aligned in an 800px rect: x1 + max(5, 800*0.05) = 640.
	if date := res.Positions[KeyDate]; date.X != 640 {
		t.Errorf("date x = %d, want 640", date.X)
	}

	final, err := png.Decode(bytes.NewReader(res.CertificatePNG))
	if err != nil {
		t.Fatalf("result is not decodable PNG: %v", err)
	}
	if b := final.Bounds(); b.Dx() != ReferenceCanvasWidth || b.Dy() != ReferenceCanvasHeight {
		t.Errorf("final size = %dx%d, want template size", b.Dx(), b.Dy())
	}

	qrImg, err := png.Decode(bytes.NewReader(res.QRPNG))
	if err != nil {
		t.Fatalf("qr output is not decodable PNG: %v", err)
	}
	if b := qrImg.Bounds(); b.Dx() != QRSize || b.Dy() != QRSize {
		t.Errorf("qr size = %dx%d, want %dx%d", b.Dx(), b.Dy(), QRSize, QRSize)
	}
}

func TestComposeFallbackPositions(t *testing.T) {
	c := testCompositor()
	tmpl := templatePNG(t, 1000, 700)

	// No placeholders at all: every field uses the fixed fallback geometry
	// derived from the template's actual dimensions.
	res, err := c.ComposeBytes(tmpl, baseRequest())
	if err != nil {
		t.Fatalf("ComposeBytes() error: %v", err)
	}

	name := res.Positions[KeyStudentName]
	if name.X <= 0 || name.X >= 1000 || name.Y <= 0 || name.Y >= 350 {
		t.Errorf("name fallback (%d, %d) not near image center", name.X, name.Y)
	}

	date := res.Positions[KeyDate]
	if date.X != 50 {
		t.Errorf("date fallback x = %d, want 50", date.X)
	}

	qr := res.Positions[KeyQRCode]
	if qr.X != 1000-QRSize-50 || qr.Y != 700-QRSize-50 {
		t.Errorf("qr fallback = (%d, %d), want (%d, %d)", qr.X, qr.Y, 1000-QRSize-50, 700-QRSize-50)
	}
}

func TestComposeUsesFirstDuplicatePlaceholder(t *testing.T) {
	c := testCompositor()
	tmpl := templatePNG(t, ReferenceCanvasWidth, ReferenceCanvasHeight)

	req := baseRequest()
	req.Placeholders = []Placeholder{
		{
			Key: KeyDate,
			X1:  intPtr(100), Y1: intPtr(100), X2: intPtr(900), Y2: intPtr(200),
			TextAlign: TextAlignLeft, VerticalAlign: VerticalAlignTop,
		},
		{
			Key: KeyDate,
			X1:  intPtr(1000), Y1: intPtr(1000), X2: intPtr(1800), Y2: intPtr(1100),
			TextAlign: TextAlignLeft, VerticalAlign: VerticalAlignTop,
		},
	}

	res, err := c.ComposeBytes(tmpl, req)
	if err != nil {
		t.Fatalf("ComposeBytes() error: %v", err)
	}

	if date := res.Positions[KeyDate]; date.X != 140 {
		t.Errorf("date x = %d, want 140 from the first placeholder", date.X)
	}
}

func TestComposeDoesNotMutateInput(t *testing.T) {
	c := testCompositor()

	src := image.NewRGBA(image.Rect(0, 0, 600, 400))
	before := src.Pix[0]

	if _, err := c.Compose(src, baseRequest()); err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if src.Pix[0] != before {
		t.Error("Compose mutated the caller's template image")
	}
}

func TestBuildRecord(t *testing.T) {
	c := testCompositor()

	rec := c.BuildRecord(RecordInput{
		CertificateID: "TBS-20250710-ABC123",
		TemplateID:    "TPL-20250101-XYZ789",
		StudentName:   "Alice Johnson",
		CourseName:    "Go Fundamentals",
		DateStr:       "2025-07-10",
		ImageURL:      "https://files.example.com/certs/TBS-20250710-ABC123.png",
	})

	if !rec.Verified || rec.Revoked {
		t.Errorf("fresh record should be verified and not revoked: %+v", rec)
	}
	if rec.Institution != "Tech Buddy Space" {
		t.Errorf("institution = %q", rec.Institution)
	}
	if rec.IssuedAt.IsZero() {
		t.Error("issued at not stamped")
	}
	if rec.CertificateID != "TBS-20250710-ABC123" || rec.DateOfRegistration != "2025-07-10" {
		t.Errorf("record fields not carried through: %+v", rec)
	}
}

func TestVerificationURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://certs.example.com", "https://certs.example.com/verify/TBS-1"},
		{"https://certs.example.com/", "https://certs.example.com/verify/TBS-1"},
	}

	for _, tt := range tests {
		if got := VerificationURL(tt.base, "TBS-1"); got != tt.want {
			t.Errorf("VerificationURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
