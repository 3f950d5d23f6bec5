package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"

	"github.com/spf13/cobra"
)

const (
	// DemoBitLength keeps the demo numbers short enough to read.
	DemoBitLength = 20
	// DemoMessage is encrypted and decrypted when no --message is given.
	DemoMessage = "Hello RSA!"
)

// DemoCmd walks through key generation, encryption and decryption and
// prints every intermediate value, the primes included.
func DemoCmd(cmd *cobra.Command, _ []string) error {
	log, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	bitLength, err := cmd.Flags().GetInt(flagBitLength)
	if err != nil {
		return fmt.Errorf("invalid %s flag: %w", flagBitLength, err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	source, err := randomSource(cmd)
	if err != nil {
		return err
	}
	options, err := keyGenOptions(cmd)
	if err != nil {
		return err
	}

	material, err := cryptography.NewKeyGenerator(source, options).GenerateKeyMaterial(cmd.Context(), bitLength)
	if err != nil {
		return fmt.Errorf("failed to generate key material: %w", err)
	}
	keyPair := material.KeyPair
	log.Debug("Demo key pair fingerprint ", keyPair.Fingerprint())

	encrypted, err := cryptography.EncodeString(keyPair.PublicExponent, keyPair.Modulus, message)
	if err != nil {
		return fmt.Errorf("failed to encrypt message: %w", err)
	}
	decrypted, err := cryptography.DecodeString(keyPair.PrivateExponent, keyPair.Modulus, encrypted)
	if err != nil {
		return fmt.Errorf("failed to decrypt message: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Primes:")
	fmt.Fprintf(out, "p: %s\n", material.P)
	fmt.Fprintf(out, "q: %s\n", material.Q)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Message: %s\n", message)
	fmt.Fprintf(out, "e: %s\n", keyPair.PublicExponent)
	fmt.Fprintf(out, "d: %s\n", keyPair.PrivateExponent)
	fmt.Fprintf(out, "N: %s\n", keyPair.Modulus)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Encrypted Text: %s\n", encrypted)
	fmt.Fprintf(out, "Decrypted Text: %s\n", decrypted)
	return nil
}

// InitDemoCommands registers the demo command
func InitDemoCommands(rootCmd *cobra.Command) {
	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Generate a small key pair and round-trip a message, printing every value",
		Args:  cobra.NoArgs,
		RunE:  DemoCmd,
	}
	addKeyGenFlags(demoCmd, DemoBitLength)
	demoCmd.Flags().String("message", DemoMessage, "Message to encrypt and decrypt")
	rootCmd.AddCommand(demoCmd)
}
