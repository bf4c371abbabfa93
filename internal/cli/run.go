package cli

import (
	"fmt"
	"io"

	"github.com/ralt/signapp/internal/keys"
	"github.com/ralt/signapp/internal/models"
	"github.com/ralt/signapp/internal/signer"
	"github.com/sirupsen/logrus"
)

func validateConfig(config *models.SignConfig) error {
	if config.PrivateKeyPath == "" {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("private-key is required"),
		}
	}

	if config.PublicKeyPath == "" {
		return &models.SignError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("public-key is required"),
		}
	}

	return nil
}

func runSignVerify(out io.Writer, config *models.SignConfig) error {
	// Step 1: Load keys
	logrus.Debugf("Loading keys from %s and %s", config.PrivateKeyPath, config.PublicKeyPath)
	kp, err := keys.LoadKeyPair(config.PrivateKeyPath, config.PublicKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load keys: %w", err)
	}

	// Step 2: Sign
	signedData, err := signer.NewRSASigner(kp.Private).SignBase64(config.Message)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Signed data: %s\n", signedData)

	// Step 3: Verify
	verified, err := signer.NewRSAVerifier(kp.Public).VerifyBase64(config.Message, signedData)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Signature verified: %t\n", verified)

	return nil
}
