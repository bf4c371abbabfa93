package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/ralt/signapp/internal/models"
)

// RSASigner signs data with SHA256withRSA (RSASSA-PKCS1-v1_5 over SHA-256)
type RSASigner struct {
	privateKey *rsa.PrivateKey
}

// NewRSASigner creates a new signer for the given private key
func NewRSASigner(privateKey *rsa.PrivateKey) *RSASigner {
	return &RSASigner{privateKey: privateKey}
}

// Sign creates an RSA PKCS1v15 signature over the SHA-256 digest of data.
// PKCS1v15 padding is deterministic, so the same key and data always give
// the same signature.
func (s *RSASigner) Sign(data []byte) ([]byte, error) {
	if s.privateKey == nil {
		return nil, &models.SignError{
			Type: models.ErrSigning,
			Err:  fmt.Errorf("no private key"),
		}
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, &models.SignError{
			Type: models.ErrSigning,
			Err:  fmt.Errorf("failed to sign: %w", err),
		}
	}

	return signature, nil
}

// SignBase64 signs message and returns the standard Base64 encoding of the signature
func (s *RSASigner) SignBase64(message string) (string, error) {
	signature, err := s.Sign([]byte(message))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// RSAVerifier verifies SHA256withRSA signatures
type RSAVerifier struct {
	publicKey *rsa.PublicKey
}

// NewRSAVerifier creates a new verifier for the given public key
func NewRSAVerifier(publicKey *rsa.PublicKey) *RSAVerifier {
	return &RSAVerifier{publicKey: publicKey}
}

// Verify reports whether sig is a valid signature over data
func (v *RSAVerifier) Verify(data, sig []byte) bool {
	if v.publicKey == nil {
		return false
	}

	hashed := sha256.Sum256(data)
	return rsa.VerifyPKCS1v15(v.publicKey, crypto.SHA256, hashed[:], sig) == nil
}

// VerifyBase64 decodes signature and verifies it against message
func (v *RSAVerifier) VerifyBase64(message, signature string) (bool, error) {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, &models.SignError{
			Type: models.ErrSignatureDecode,
			Err:  fmt.Errorf("failed to decode signature: %w", err),
		}
	}

	return v.Verify([]byte(message), sig), nil
}

var (
	_ Signer   = (*RSASigner)(nil)
	_ Verifier = (*RSAVerifier)(nil)
)
