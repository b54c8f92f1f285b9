package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wmdetect",
	Short: "N-gram watermark detection over encrypted token streams",
	Long: `wmdetect drives the watermark detector: key generation, a plaintext
mirror of the detection algorithm for offline checks, and a small
demonstration of the encrypted BFV backend.

The plaintext path is a test oracle. Production detection runs the same
algorithm over ciphertext words and never sees token values.`,
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(encdemoCmd)
}
