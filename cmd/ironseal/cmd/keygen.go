package cmd

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

const minKeygenBytes = 24

func newKeygenCmd() *cobra.Command {
	var n int

	c := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random password suitable for sealing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < minKeygenBytes {
				return fmt.Errorf("--bytes must be at least %d", minKeygenBytes)
			}
			b := make([]byte, n)
			if _, err := rand.Read(b); err != nil {
				return fmt.Errorf("generating password: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), base64.RawURLEncoding.EncodeToString(b))
			return err
		},
	}
	c.Flags().IntVar(&n, "bytes", 32, "Number of random bytes")
	return c
}
