package certify

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// idAlphabet is the suffix alphabet: 36^6 combinations per day. Uniqueness is
// probabilistic only; the certificates table enforces it with a unique index.
const (
	idAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idSuffixLength = 6

	certificateIDPrefix = "TBS"
	templateIDPrefix    = "TPL"
)

// GenerateCertificateID returns an identifier of the form
// TBS-YYYYMMDD-XXXXXX with a crypto-random suffix.
func GenerateCertificateID() string {
	return generateID(certificateIDPrefix)
}

// GenerateTemplateID returns an identifier of the form TPL-YYYYMMDD-XXXXXX.
func GenerateTemplateID() string {
	return generateID(templateIDPrefix)
}

func generateID(prefix string) string {
	suffix := gonanoid.MustGenerate(idAlphabet, idSuffixLength)
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), suffix)
}
