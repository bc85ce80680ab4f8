package mailer

import "embed"

const (
	FROM_NAME                   = "Tech Buddy Space"
	MAX_RETRY                   = 3
	CERTIFICATE_ISSUED_TEMPLATE = "certificate_issued.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}
