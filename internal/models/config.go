package models

// DefaultMessage is the string signed when no message is given
const DefaultMessage = "This is a string to be signed"

// SignConfig contains configuration for a sign/verify run
type SignConfig struct {
	// Key files
	PrivateKeyPath string // PKCS#8 (or PKCS#1) PEM
	PublicKeyPath  string // X.509 SubjectPublicKeyInfo (or PKCS#1) PEM

	// Message to sign and verify
	Message string
}
