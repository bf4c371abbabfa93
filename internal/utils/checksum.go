package utils

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fingerprint returns the SHA-256 fingerprint of a public key's PKIX encoding,
// formatted as colon separated hex pairs
func Fingerprint(pub any) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}

	sum := sha256.Sum256(der)
	return FormatChecksum(sum[:]), nil
}

// FormatChecksum renders a digest as upper-case hex pairs joined by colons
func FormatChecksum(sum []byte) string {
	encoded := strings.ToUpper(hex.EncodeToString(sum))

	pairs := make([]string, 0, len(sum))
	for i := 0; i < len(encoded); i += 2 {
		pairs = append(pairs, encoded[i:i+2])
	}

	return strings.Join(pairs, ":")
}
