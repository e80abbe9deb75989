package cmd

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/MaximKing1/iron-session/core/seal"
)

type inspectOutput struct {
	Version    int    `json:"version"`
	KeyID      int    `json:"key_id"`
	Expiration string `json:"expiration,omitempty"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [token|-]",
		Short: "Print the unverified header of a seal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			h, err := seal.Inspect(token)
			if err != nil {
				return err
			}

			out := inspectOutput{Version: h.Version, KeyID: h.KeyID}
			if !h.Expiration.IsZero() {
				out.Expiration = h.Expiration.UTC().Format(time.RFC3339)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
