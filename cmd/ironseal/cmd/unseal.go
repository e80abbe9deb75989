package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MaximKing1/iron-session/core/seal"
)

func newUnsealCmd(root *rootOptions) *cobra.Command {
	var ttl time.Duration

	c := &cobra.Command{
		Use:   "unseal [token|-]",
		Short: "Verify and decrypt a seal",
		Long: `Verify and decrypt a seal and print its plaintext.

Unlike a session load, a rejected seal is an error and the reason is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			keys, err := root.keys()
			if err != nil {
				return err
			}
			s, err := seal.New(keys, seal.WithTTL(ttl))
			if err != nil {
				return err
			}

			plaintext, err := s.Open(token)
			if err != nil {
				if seal.IsInvalid(err) {
					return fmt.Errorf("seal rejected: %w", err)
				}
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))
			return err
		},
	}
	c.Flags().DurationVar(&ttl, "ttl", 0, "Expected seal lifetime")
	return c
}
