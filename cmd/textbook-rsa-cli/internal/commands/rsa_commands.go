package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler from the command's flags.
func NewRSACommandHandler(cmd *cobra.Command) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := newRSAProcessor(cmd, loggerInstance)
	if err != nil {
		return nil, err
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair and persists both halves in the selected directory
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	bitLength, err := cmd.Flags().GetInt(flagBitLength)
	if err != nil {
		return fmt.Errorf("invalid %s flag: %w", flagBitLength, err)
	}
	if bitLength < validators.MinBitLength || bitLength > validators.MaxBitLength {
		return fmt.Errorf("%s must be between %d and %d, got %d", flagBitLength, validators.MinBitLength, validators.MaxBitLength, bitLength)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}
	if format != cryptography.KeyFileFormatJSON && format != cryptography.KeyFileFormatCBOR {
		return fmt.Errorf("unsupported key file format %q", format)
	}

	keyPair, err := commandHandler.rsaProcessor.GenerateKeys(cmd.Context(), bitLength)
	if err != nil {
		return err
	}

	uniqueID := uuid.New().String()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.%s", uniqueID, format))
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(keyPair.PrivateKey(), privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.%s", uniqueID, format))
	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(keyPair.PublicKey(), publicKeyFilePath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Public key:  %s\n", publicKeyFilePath)
	fmt.Fprintf(out, "Private key: %s\n", privateKeyFilePath)
	fmt.Fprintf(out, "Fingerprint: %s\n", keyPair.Fingerprint())
	return nil
}

// EncryptCmd encrypts text or a file with a public key
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	plainText, err := readInput(cmd)
	if err != nil {
		return err
	}

	cipherText, err := commandHandler.rsaProcessor.Encrypt(plainText, publicKey)
	if err != nil {
		return err
	}

	return commandHandler.writeOutput(cmd, cipherText)
}

// DecryptCmd decrypts space-separated decimal ciphertext with a private key
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	cipherText, err := readInput(cmd)
	if err != nil {
		return err
	}

	plainText, err := commandHandler.rsaProcessor.Decrypt(cipherText, privateKey)
	if err != nil {
		return err
	}

	return commandHandler.writeOutput(cmd, plainText)
}

// readInput returns --text when set, otherwise the contents of --input-file.
func readInput(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("text") {
		return cmd.Flags().GetString("text")
	}

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFile == "" {
		return "", errors.New("either --text or --input-file is required")
	}

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// writeOutput writes result to --output-file when set, otherwise to stdout.
func (commandHandler *RSACommandHandler) writeOutput(cmd *cobra.Command, result string) error {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}

	if err := os.WriteFile(outputFile, []byte(result), 0600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	commandHandler.logger.Info("Output written to ", outputFile)
	return nil
}

// withHandler defers handler construction until the command's flags are parsed.
func withHandler(run func(*RSACommandHandler, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		handler, err := NewRSACommandHandler(cmd)
		if err != nil {
			return fmt.Errorf("failed to create RSA command handler: %w", err)
		}
		return run(handler, cmd, args)
	}
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		Args:  cobra.NoArgs,
		RunE:  withHandler((*RSACommandHandler).GenerateKeysCmd),
	}
	addKeyGenFlags(generateKeysCmd, config.DefaultBitLength)
	generateKeysCmd.Flags().String("key-dir", ".", "Directory to store the key files")
	generateKeysCmd.Flags().String("format", cryptography.KeyFileFormatJSON, "Key file format (json or cbor)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text character by character with a public key",
		Args:  cobra.NoArgs,
		RunE:  withHandler((*RSACommandHandler).EncryptCmd),
	}
	encryptCmd.Flags().String("public-key", "", "Path to the public key file")
	encryptCmd.Flags().String("text", "", "Text to encrypt")
	encryptCmd.Flags().String("input-file", "", "Path to a file whose contents are encrypted")
	encryptCmd.Flags().String("output-file", "", "Path to the ciphertext output file (stdout when empty)")
	_ = encryptCmd.MarkFlagRequired("public-key")
	encryptCmd.MarkFlagsMutuallyExclusive("text", "input-file")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt space-separated decimal ciphertext with a private key",
		Args:  cobra.NoArgs,
		RunE:  withHandler((*RSACommandHandler).DecryptCmd),
	}
	decryptCmd.Flags().String("private-key", "", "Path to the private key file")
	decryptCmd.Flags().String("text", "", "Ciphertext to decrypt")
	decryptCmd.Flags().String("input-file", "", "Path to a ciphertext file")
	decryptCmd.Flags().String("output-file", "", "Path to the plaintext output file (stdout when empty)")
	_ = decryptCmd.MarkFlagRequired("private-key")
	decryptCmd.MarkFlagsMutuallyExclusive("text", "input-file")
	rootCmd.AddCommand(decryptCmd)
}
