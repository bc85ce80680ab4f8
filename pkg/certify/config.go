package certify

// Config holds the static inputs of the composition core. It is constructed
// by the caller and passed in explicitly; the engine keeps no process-global
// state.
type Config struct {
	// VerifyBaseURL prefixes the QR payload, e.g. "https://certs.example.com".
	// The encoded URL is VerifyBaseURL + "/verify/" + certificate id.
	VerifyBaseURL string
	// FontDir is where the brand font and the bundled fallback live.
	FontDir string
	// Institution is stamped into every issuance record.
	Institution string
}

func NewDefaultConfig() Config {
	return Config{
		VerifyBaseURL: "https://certificate-tb.onrender.com",
		FontDir:       "storage/fonts",
		Institution:   "Tech Buddy Space",
	}
}
