package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ralt/signapp/internal/models"
	"github.com/ralt/signapp/internal/utils"
	"github.com/sirupsen/logrus"
)

// PEM block types understood by the loader
const (
	BlockPrivateKey          = "PRIVATE KEY"
	BlockRSAPrivateKey       = "RSA PRIVATE KEY"
	BlockEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	BlockPublicKey           = "PUBLIC KEY"
	BlockRSAPublicKey        = "RSA PUBLIC KEY"
)

// KeyPair holds an RSA private key and the public key loaded next to it.
// The two are not guaranteed to belong together, see Matches.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// Matches reports whether the public key is the public half of the private key
func (kp *KeyPair) Matches() bool {
	if kp.Private == nil || kp.Public == nil {
		return false
	}
	return kp.Private.PublicKey.Equal(kp.Public)
}

// LoadKeyPair loads a private and a public key from PEM files
func LoadKeyPair(privateKeyPath, publicKeyPath string) (*KeyPair, error) {
	privateKey, err := LoadPrivateKey(privateKeyPath)
	if err != nil {
		return nil, err
	}

	publicKey, err := LoadPublicKey(publicKeyPath)
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{Private: privateKey, Public: publicKey}

	if fp, err := utils.Fingerprint(publicKey); err == nil {
		logrus.Debugf("Public key fingerprint: SHA256 %s", fp)
	}

	if !kp.Matches() {
		logrus.Warnf("Public key %s does not belong to private key %s, verification will fail",
			publicKeyPath, privateKeyPath)
	}

	return kp, nil
}

// LoadPrivateKey reads an RSA private key from a PEM file
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}

	key, err := ParsePrivateKeyPEM(data)
	if err != nil {
		return nil, withPath(err, path)
	}

	logrus.Debugf("Loaded %d-bit RSA private key from %s", key.N.BitLen(), path)
	return key, nil
}

// LoadPublicKey reads an RSA public key from a PEM file
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}

	key, err := ParsePublicKeyPEM(data)
	if err != nil {
		return nil, withPath(err, path)
	}

	logrus.Debugf("Loaded %d-bit RSA public key from %s", key.N.BitLen(), path)
	return key, nil
}

// ParsePrivateKeyPEM extracts the first private key block from PEM data.
// PKCS#8 is expected; PKCS#1 blocks are accepted as well.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, err := findBlock(data, BlockPrivateKey, BlockRSAPrivateKey, BlockEncryptedPrivateKey)
	if err != nil {
		return nil, parseError(err)
	}

	if block.Type == BlockEncryptedPrivateKey || x509.IsEncryptedPEMBlock(block) {
		return nil, parseError(fmt.Errorf("encrypted private keys are not supported"))
	}

	if block.Type == BlockRSAPrivateKey {
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, parseError(fmt.Errorf("failed to parse PKCS#1 private key: %w", err))
		}
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, parseError(fmt.Errorf("failed to parse PKCS#8 private key: %w", err))
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, parseError(fmt.Errorf("key is not an RSA private key (got %T)", parsed))
	}

	return key, nil
}

// ParsePublicKeyPEM extracts the first public key block from PEM data.
// X.509 SubjectPublicKeyInfo is expected; PKCS#1 blocks are accepted as well.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, err := findBlock(data, BlockPublicKey, BlockRSAPublicKey)
	if err != nil {
		return nil, parseError(err)
	}

	if block.Type == BlockRSAPublicKey {
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, parseError(fmt.Errorf("failed to parse PKCS#1 public key: %w", err))
		}
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, parseError(fmt.Errorf("failed to parse public key: %w", err))
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, parseError(fmt.Errorf("key is not an RSA public key (got %T)", parsed))
	}

	return key, nil
}

// findBlock returns the first PEM block of one of the given types, skipping others
func findBlock(data []byte, types ...string) (*pem.Block, error) {
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}

		for _, t := range types {
			if block.Type == t {
				return block, nil
			}
		}
		logrus.Debugf("Skipping PEM block of type %q", block.Type)
	}

	return nil, fmt.Errorf("no %s PEM block found", strings.Join(types, " or "))
}

func readKeyFile(path string) ([]byte, error) {
	if path == "" {
		return nil, &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("key path is empty"),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.SignError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  fmt.Errorf("failed to read key file: %w", err),
		}
	}

	return data, nil
}

func parseError(err error) error {
	return &models.SignError{Type: models.ErrKeyParse, Err: err}
}

func withPath(err error, path string) error {
	var signErr *models.SignError
	if errors.As(err, &signErr) && signErr.Path == "" {
		signErr.Path = path
	}
	return err
}
