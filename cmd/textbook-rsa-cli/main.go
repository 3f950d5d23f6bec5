// Package main is the entry point for the textbook-rsa-cli application.
// It registers the key generation, encryption, decryption and demo commands
// and executes the command-line interface.
package main

import (
	"log"
	"os"

	"github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
