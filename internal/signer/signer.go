package signer

// Signer produces signatures over arbitrary data
type Signer interface {
	// Sign creates a signature over data
	Sign(data []byte) ([]byte, error)

	// SignBase64 signs a message and returns the signature as Base64 text
	SignBase64(message string) (string, error)
}

// Verifier checks signatures produced by a Signer
type Verifier interface {
	// Verify reports whether sig is a valid signature over data
	Verify(data, sig []byte) bool

	// VerifyBase64 decodes a Base64 signature and verifies it against message.
	// A signature that does not match is reported as false, not as an error.
	VerifyBase64(message, signature string) (bool, error)
}
