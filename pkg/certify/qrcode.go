package certify

import (
	"fmt"
	"image"
	"strings"

	"github.com/noelyahan/mergi"
	"github.com/skip2/go-qrcode"
)

// QRSize is the fixed edge length of the embedded QR code in pixels.
const QRSize = 150

// VerificationURL builds the QR payload for a certificate id.
func VerificationURL(baseURL, certificateID string) string {
	return strings.TrimRight(baseURL, "/") + "/verify/" + certificateID
}

// GenerateQRImage encodes the verification URL into a QRSize×QRSize image.
// The code is rendered oversized at fixed error-correction parameters and
// resized down, matching how issued certificates have always been produced.
func GenerateQRImage(url string) (image.Image, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	resized, err := mergi.Resize(qr.Image(QRSize*2), QRSize, QRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to resize QR code: %w", err)
	}

	return resized, nil
}
