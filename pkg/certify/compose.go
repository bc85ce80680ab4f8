package certify

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/noelyahan/mergi"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Default base font sizes and halo radii per field. The name gets a 5×5
// stroke neighborhood, the smaller fields 3×3.
var textFields = []fieldSpec{
	{key: KeyStudentName, baseFontSize: 48, haloRadius: 2},
	{key: KeyDate, baseFontSize: 18, haloRadius: 1},
	{key: KeyCertificateNo, baseFontSize: 16, haloRadius: 1},
}

type fieldSpec struct {
	key          PlaceholderKey
	baseFontSize int
	haloRadius   int
}

// Compositor turns a template plus placeholders plus student data into a
// final rendered certificate. It performs no network or database I/O;
// encoding, upload and persistence belong to the caller. A Compositor is
// safe for concurrent use as long as each Compose call gets its own
// template copy, which ComposeBytes guarantees.
type Compositor struct {
	cfg    Config
	fonts  *FontResolver
	logger *zap.SugaredLogger
}

func NewCompositor(cfg Config, logger *zap.SugaredLogger) *Compositor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Compositor{
		cfg:    cfg,
		fonts:  NewFontResolver(cfg.FontDir, logger),
		logger: logger,
	}
}

type ComposeRequest struct {
	Placeholders []Placeholder
	StudentName  string
	// CourseName is carried through to the issuance record only; layout
	// never reads it.
	CourseName  string
	DateStr     string
	DeviceClass DeviceClass
}

type ComposeResult struct {
	CertificateID  string
	CertificatePNG []byte
	QRPNG          []byte
	// Positions maps each rendered field to its computed draw origin,
	// kept for diagnostics and tests.
	Positions map[PlaceholderKey]Point
}

// ComposeBytes decodes the template and composes a certificate onto it.
// Undecodable template bytes fail before any font resolution or drawing.
func (c *Compositor) ComposeBytes(templateData []byte, req ComposeRequest) (*ComposeResult, error) {
	canvas, err := DecodeTemplate(templateData)
	if err != nil {
		return nil, err
	}

	return c.compose(canvas, req)
}

// Compose renders onto a copy of the given template image. The input image
// is never mutated.
func (c *Compositor) Compose(template image.Image, req ComposeRequest) (*ComposeResult, error) {
	if template == nil {
		return nil, ErrTemplateBounds
	}

	canvas, err := cloneRGBA(template)
	if err != nil {
		return nil, err
	}

	return c.compose(canvas, req)
}

func (c *Compositor) compose(canvas *image.RGBA, req ComposeRequest) (*ComposeResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	certificateID := GenerateCertificateID()
	dc := req.DeviceClass
	if dc == "" {
		dc = DeviceUnknown
	}

	positions := make(map[PlaceholderKey]Point, len(textFields)+1)

	for _, field := range textFields {
		text := field.text(req, certificateID)
		origin := c.renderField(canvas, field, text, req.Placeholders, dc)
		positions[field.key] = origin
	}

	qrImg, qrPos, err := c.renderQR(canvas, certificateID, req.Placeholders)
	if err != nil {
		return nil, err
	}
	positions[KeyQRCode] = qrPos

	final, err := mergi.Watermark(qrImg, canvas, image.Pt(qrPos.X, qrPos.Y))
	if err != nil {
		return nil, fmt.Errorf("failed to paste QR code: %w", err)
	}

	certPNG, err := EncodePNG(final)
	if err != nil {
		return nil, err
	}

	qrPNG, err := EncodePNG(qrImg)
	if err != nil {
		return nil, err
	}

	c.logger.Debugf("composed certificate %s, positions: %v", certificateID, positions)

	return &ComposeResult{
		CertificateID:  certificateID,
		CertificatePNG: certPNG,
		QRPNG:          qrPNG,
		Positions:      positions,
	}, nil
}

func (fs fieldSpec) text(req ComposeRequest, certificateID string) string {
	switch fs.key {
	case KeyStudentName:
		return req.StudentName
	case KeyDate:
		return req.DateStr
	default:
		return certificateID
	}
}

// validateRequest surfaces structural input errors before any drawing.
func validateRequest(req ComposeRequest) error {
	if strings.TrimSpace(req.StudentName) == "" {
		return ErrEmptyStudentName
	}

	for _, p := range req.Placeholders {
		if p.HasRect() && !p.Rect().Valid() {
			return fmt.Errorf("%w: %s", ErrZeroAreaRect, p.Key)
		}
	}

	return nil
}

// renderField draws one outlined text field and returns its draw origin.
// Placeholder rectangles are absolute pixels on the reference canvas; when
// the placeholder or its rectangle is absent, a fixed fallback position is
// derived from the template's actual dimensions instead.
func (c *Compositor) renderField(canvas *image.RGBA, field fieldSpec, text string, placeholders []Placeholder, dc DeviceClass) Point {
	p, found := findPlaceholder(placeholders, field.key)

	baseSize := field.baseFontSize
	if found && p.FontSize > 0 {
		baseSize = p.FontSize
	}
	size := int(math.Round(float64(baseSize) * dc.FontSizeMultiplier()))
	fh := c.fonts.Resolve(size)

	var origin Point
	ink := ParseHexColor(DefaultInkColor)

	if found && p.HasRect() {
		origin = Layout(text, fh, p.Rect(), p.TextAlign, p.VerticalAlign, dc)
		ink = ParseHexColor(p.Color)
	} else {
		origin = c.fallbackOrigin(canvas, field.key, text, fh)
	}

	drawHaloText(canvas, text, fh, origin, field.haloRadius, ink)
	return origin
}

// fallbackOrigin reproduces the legacy default positions: name near the
// image center, date lower-left, certificate number lower-right.
func (c *Compositor) fallbackOrigin(canvas *image.RGBA, key PlaceholderKey, text string, fh *FontHandle) Point {
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()
	tw, th := MeasureText(text, fh)

	switch key {
	case KeyStudentName:
		return Point{X: w/2 - tw/2, Y: h/2 - 50 - th/2}
	case KeyDate:
		return Point{X: 50, Y: h - 100 - th/2}
	default:
		return Point{X: w - 200 - tw, Y: h - 50 - th/2}
	}
}

// renderQR generates the verification QR image and picks its paste corner.
// No alignment or padding applies to the QR; it goes exactly at the
// placeholder's top-left corner or at the fixed bottom-right fallback.
func (c *Compositor) renderQR(canvas *image.RGBA, certificateID string, placeholders []Placeholder) (image.Image, Point, error) {
	url := VerificationURL(c.cfg.VerifyBaseURL, certificateID)

	qrImg, err := GenerateQRImage(url)
	if err != nil {
		return nil, Point{}, err
	}

	pos := Point{
		X: canvas.Bounds().Dx() - QRSize - 50,
		Y: canvas.Bounds().Dy() - QRSize - 50,
	}
	if p, found := findPlaceholder(placeholders, KeyQRCode); found && p.X1 != nil && p.Y1 != nil {
		pos = Point{X: *p.X1, Y: *p.Y1}
	}

	return qrImg, pos, nil
}

// findPlaceholder returns the first placeholder with the given key;
// duplicated keys beyond the first are ignored.
func findPlaceholder(placeholders []Placeholder, key PlaceholderKey) (Placeholder, bool) {
	for _, p := range placeholders {
		if p.Key == key {
			return p, true
		}
	}
	return Placeholder{}, false
}

// drawHaloText strokes text by redrawing it at every pixel offset in the
// (2r+1)×(2r+1) neighborhood in white, then draws the real text on top.
// Redrawing is used instead of a native outline API so the halo works on
// any rendering backend.
func drawHaloText(dst *image.RGBA, text string, fh *FontHandle, origin Point, radius int, ink color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			drawText(dst, text, fh, Point{X: origin.X + dx, Y: origin.Y + dy}, color.White)
		}
	}

	drawText(dst, text, fh, origin, ink)
}

// drawText renders text with its bounding-box top-left corner at origin.
func drawText(dst draw.Image, text string, fh *FontHandle, origin Point, col color.Color) {
	// Degenerate glyph tables may panic inside the rasterizer; an absorbed
	// draw failure leaves the field blank rather than failing composition.
	defer func() {
		_ = recover()
	}()

	bounds, _ := font.BoundString(fh.Face, text)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: fh.Face,
	}
	d.Dot = fixed.Point26_6{
		X: fixed.I(origin.X) - bounds.Min.X,
		Y: fixed.I(origin.Y) - bounds.Min.Y,
	}
	d.DrawString(text)
}
