package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MaximKing1/iron-session/core/seal"
)

// ErrInvalidJSON is returned when the seal input is not valid JSON.
var ErrInvalidJSON = errors.New("input is not valid JSON")

func newSealCmd(root *rootOptions) *cobra.Command {
	var (
		ttl    time.Duration
		legacy bool
	)

	c := &cobra.Command{
		Use:   "seal [json|-]",
		Short: "Seal a JSON value",
		Example: `  ironseal seal '{"userId":42}' --ttl 1h
  echo '{"userId":42}' | ironseal seal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !json.Valid([]byte(input)) {
				return ErrInvalidJSON
			}

			keys, err := root.keys()
			if err != nil {
				return err
			}

			opts := []seal.Option{seal.WithTTL(ttl)}
			if legacy {
				opts = append(opts, seal.WithLegacyFormat())
			}
			s, err := seal.New(keys, opts...)
			if err != nil {
				return err
			}

			token, err := s.Seal(json.RawMessage(input))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	c.Flags().DurationVar(&ttl, "ttl", 0, "Seal lifetime (0 never expires)")
	c.Flags().BoolVar(&legacy, "legacy", false, "Emit the iron Fe26.2 format")
	return c
}
