package constant

import "time"

const QUERY_TIMEOUT_DURATION = 15 * time.Second

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

// VerificationResult is the outcome stored with each verification attempt.
type VerificationResult string

const (
	VerificationSuccess VerificationResult = "success"
	VerificationFailed  VerificationResult = "failed"
	VerificationRevoked VerificationResult = "revoked"
)

const DefaultPageSize uint = 20

// Allowed template upload extensions.
var AllowedTemplateExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}
