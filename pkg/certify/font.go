package certify

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const fontDPI = 72

// BrandFontFile is the primary certificate font, tried first.
const BrandFontFile = "PlayfairDisplay-Bold.ttf"

// FontHandle is a loadable face plus the metadata layout code needs. When
// every candidate fails the handle wraps the built-in bitmap face, which
// ignores size, so the originally requested size is recorded here for
// downstream extent reasoning.
type FontHandle struct {
	Face          font.Face
	Path          string
	RequestedSize int
	Builtin       bool
}

// FontResolver tries an ordered, fixed list of font sources and never fails:
// the terminal fallback is the built-in bitmap face. The candidate list is
// built once and read-only afterwards, so a resolver may be shared across
// concurrent compositions.
type FontResolver struct {
	candidates []string
	logger     *zap.SugaredLogger
}

func NewFontResolver(fontDir string, logger *zap.SugaredLogger) *FontResolver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &FontResolver{
		candidates: fontCandidates(fontDir),
		logger:     logger,
	}
}

// fontCandidates is the prioritized source chain: the brand font, the
// deployment-bundled fallback, then common platform font paths.
func fontCandidates(fontDir string) []string {
	return []string{
		filepath.Join(fontDir, BrandFontFile),
		filepath.Join(fontDir, "arial.ttf"),
		"arial.ttf",
		"Arial.ttf",
		"C:/Windows/Fonts/arial.ttf",
		"C:/Windows/Fonts/calibri.ttf",
		"/System/Library/Fonts/Arial.ttf",
		"/usr/share/fonts/truetype/arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
}

// Resolve returns a usable handle for the requested pixel size. Candidate
// load failures are absorbed and logged; sizes below 1 are raised to 1.
func (fr *FontResolver) Resolve(size int) *FontHandle {
	if size < 1 {
		size = 1
	}

	for _, path := range fr.candidates {
		face, err := loadFace(path, float64(size))
		if err != nil {
			fr.logger.Debugf("font candidate %q skipped: %v", path, err)
			continue
		}

		return &FontHandle{
			Face:          face,
			Path:          path,
			RequestedSize: size,
		}
	}

	fr.logger.Warnf("all font candidates failed, using built-in bitmap face for size %d", size)
	return &FontHandle{
		Face:          basicfont.Face7x13,
		RequestedSize: size,
		Builtin:       true,
	}
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
