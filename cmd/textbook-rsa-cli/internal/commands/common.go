package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"

	"github.com/spf13/cobra"
)

const (
	flagBitLength      = "bit-length"
	flagSeed           = "seed"
	flagDistinctPrimes = "distinct-primes"
	flagConcurrent     = "concurrent"
	flagLogLevel       = "log-level"
)

// NewRootCommand builds the textbook-rsa-cli command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA key generation and per-character encryption",
		Long: `textbook-rsa-cli generates textbook RSA key pairs and transforms text one
character at a time. Ciphertext is written as space-separated decimal integers.

The scheme has no padding and no timing defences. It is for teaching and
experimentation only and must not be used to protect real data.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(flagLogLevel, config.LogLevelWarning, "Log level (debug, info, warning, error, critical)")

	InitRSACommands(rootCmd)
	InitDemoCommands(rootCmd)
	return rootCmd
}

func setupLogger(cmd *cobra.Command) (logger.Logger, error) {
	level, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagLogLevel, err)
	}

	settings := &config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// addKeyGenFlags registers the flags shared by commands that generate keys.
func addKeyGenFlags(cmd *cobra.Command, defaultBitLength int) {
	cmd.Flags().Int(flagBitLength, defaultBitLength, "Bit length of each prime and of the public exponent")
	cmd.Flags().Int64(flagSeed, 0, "Seed for reproducible keys (insecure, omit to use crypto/rand)")
	cmd.Flags().Bool(flagDistinctPrimes, true, "Redraw q when it equals p")
	cmd.Flags().Bool(flagConcurrent, false, "Generate p and q concurrently")
}

// randomSource returns a seeded source when --seed was given, crypto/rand otherwise.
func randomSource(cmd *cobra.Command) (random.Source, error) {
	if !cmd.Flags().Changed(flagSeed) {
		return random.NewCryptoSource(), nil
	}
	seed, err := cmd.Flags().GetInt64(flagSeed)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagSeed, err)
	}
	return random.NewSeededSource(seed), nil
}

func keyGenOptions(cmd *cobra.Command) (cryptography.KeyGeneratorOptions, error) {
	options := cryptography.DefaultKeyGeneratorOptions()
	var err error
	if options.DistinctPrimes, err = cmd.Flags().GetBool(flagDistinctPrimes); err != nil {
		return options, fmt.Errorf("invalid %s flag: %w", flagDistinctPrimes, err)
	}
	if options.Concurrent, err = cmd.Flags().GetBool(flagConcurrent); err != nil {
		return options, fmt.Errorf("invalid %s flag: %w", flagConcurrent, err)
	}
	return options, nil
}

// newRSAProcessor builds a processor from the key generation flags when present.
func newRSAProcessor(cmd *cobra.Command, log logger.Logger) (cryptoalg.RSAProcessor, error) {
	options := cryptography.DefaultKeyGeneratorOptions()
	source := random.NewCryptoSource()

	if cmd.Flags().Lookup(flagDistinctPrimes) != nil {
		var err error
		if options, err = keyGenOptions(cmd); err != nil {
			return nil, err
		}
		if source, err = randomSource(cmd); err != nil {
			return nil, err
		}
	}

	processor, err := cryptography.NewRSAProcessor(source, options, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return processor, nil
}
