package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MaximKing1/iron-session/core/config"
	"github.com/MaximKing1/iron-session/core/keyset"
)

// ErrNoInput is returned when neither an argument nor stdin provides input.
var ErrNoInput = errors.New("no input: pass an argument or pipe data to stdin")

type envConfig struct {
	Password string `env:"IRON_SESSION_PASSWORD"`
}

type rootOptions struct {
	password string
}

// NewRootCmd builds the ironseal command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ironseal",
		Short: "ironseal seals and unseals iron-session tokens",
		Long: `Operator tooling for sealed session cookies.

The password is read from --password or IRON_SESSION_PASSWORD. Either may be a
single password of at least 32 characters or a JSON object mapping key ids to
passwords, e.g. {"1":"old-password...","2":"new-password..."}.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.password, "password", "", "Password or JSON password map (default $IRON_SESSION_PASSWORD)")

	root.AddCommand(
		newKeygenCmd(),
		newSealCmd(opts),
		newUnsealCmd(opts),
		newInspectCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) keys() (*keyset.KeySet, error) {
	password := o.password
	if password == "" {
		var ec envConfig
		if err := config.Load(&ec); err != nil {
			return nil, err
		}
		password = ec.Password
	}
	return keyset.Parse(password)
}

// readInput returns the first argument, or stdin when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", ErrNoInput
	}
	return s, nil
}
