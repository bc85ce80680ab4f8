package certify

import (
	"path/filepath"
	"testing"
)

func TestResolveNeverFails(t *testing.T) {
	// A font dir that does not exist forces the whole candidate chain to
	// fail on this machine's platform paths or fall through to the
	// built-in face either way.
	fr := NewFontResolver("testdata/no-such-dir", nil)

	tests := []struct {
		name string
		size int
	}{
		{"regular size", 48},
		{"small size", 1},
		{"zero size clamps to 1", 0},
		{"negative size clamps to 1", -7},
		{"large size", 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := fr.Resolve(tt.size)
			if fh == nil || fh.Face == nil {
				t.Fatalf("Resolve(%d) returned unusable handle %+v", tt.size, fh)
			}

			want := tt.size
			if want < 1 {
				want = 1
			}
			if fh.RequestedSize != want {
				t.Errorf("Resolve(%d).RequestedSize = %d, want %d", tt.size, fh.RequestedSize, want)
			}
		})
	}
}

func TestResolveBuiltinRecordsRequestedSize(t *testing.T) {
	fr := &FontResolver{candidates: []string{"testdata/missing.ttf"}, logger: nopLogger()}

	fh := fr.Resolve(64)
	if !fh.Builtin {
		t.Fatalf("expected built-in fallback, got %+v", fh)
	}
	if fh.RequestedSize != 64 {
		t.Errorf("RequestedSize = %d, want 64", fh.RequestedSize)
	}
	if fh.Face == nil {
		t.Error("built-in handle has nil face")
	}
}

func TestFontCandidateOrder(t *testing.T) {
	candidates := fontCandidates("storage/fonts")
	if len(candidates) == 0 {
		t.Fatal("no font candidates")
	}
	// The brand font must stay first; everything after it is fallback.
	if got := candidates[0]; got != filepath.Join("storage/fonts", BrandFontFile) {
		t.Errorf("first candidate = %q, want brand font", got)
	}
}
