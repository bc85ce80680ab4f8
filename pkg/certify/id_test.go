package certify

import (
	"regexp"
	"strings"
	"testing"
)

var certificateIDPattern = regexp.MustCompile(`^TBS-\d{8}-[A-Z0-9]{6}$`)

func TestGenerateCertificateIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateCertificateID()
		if !certificateIDPattern.MatchString(id) {
			t.Fatalf("GenerateCertificateID() = %q, want match for %v", id, certificateIDPattern)
		}
	}
}

func TestGenerateTemplateIDFormat(t *testing.T) {
	id := GenerateTemplateID()
	if !strings.HasPrefix(id, "TPL-") {
		t.Errorf("GenerateTemplateID() = %q, want TPL- prefix", id)
	}
	if !regexp.MustCompile(`^TPL-\d{8}-[A-Z0-9]{6}$`).MatchString(id) {
		t.Errorf("GenerateTemplateID() = %q, unexpected format", id)
	}
}

func TestGenerateCertificateIDCollisions(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	duplicates := 0
	for i := 0; i < n; i++ {
		id := GenerateCertificateID()
		if _, ok := seen[id]; ok {
			duplicates++
		}
		seen[id] = struct{}{}
	}

	// Uniqueness is probabilistic (36^6 per day), not guaranteed; more than
	// a couple of duplicates in 10k draws means the random source is broken.
	if duplicates > 2 {
		t.Errorf("got %d duplicate ids in %d draws", duplicates, n)
	}
}
