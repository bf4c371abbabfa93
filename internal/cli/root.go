package cli

import (
	"github.com/ralt/signapp/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	config := models.SignConfig{}

	rootCmd := &cobra.Command{
		Use:   "signapp",
		Short: "Sign a string with an RSA private key and verify it with the public key",
		Long: `Signapp reads an RSA private key (PKCS#8 PEM) and an RSA public key
(X.509 PEM) from disk, signs a message with SHA256withRSA and verifies
the signature with the public key.

The keys can be created with:
  openssl genpkey -algorithm RSA -out etc/private-key.pem
  openssl rsa -pubout -in etc/private-key.pem -out etc/public-key.pem`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)

			return runSignVerify(cmd.OutOrStdout(), &config)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Key and message flags
	rootCmd.Flags().StringVarP(&config.PrivateKeyPath, "private-key", "k", "etc/private-key.pem", "Path to PKCS#8 PEM RSA private key")
	rootCmd.Flags().StringVarP(&config.PublicKeyPath, "public-key", "p", "etc/public-key.pem", "Path to X.509 PEM RSA public key")
	rootCmd.Flags().StringVarP(&config.Message, "message", "m", models.DefaultMessage, "Message to sign and verify")

	return rootCmd
}
