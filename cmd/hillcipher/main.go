// Command hillcipher encrypts and decrypts text with a Hill cipher key
// over Z/97Z.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/MathNerdGamer/hill-cipher/field"
	"github.com/MathNerdGamer/hill-cipher/hillcipher"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var keySpec string
	var verbose bool

	root := &cobra.Command{
		Use:   "hillcipher [flags] command",
		Short: "Hill cipher over Z/97Z",
		Long: `A classical Hill cipher working modulo the prime 97, so any key
with a nonzero determinant is usable.

Keys are given as semicolon-separated rows of comma-separated integers,
e.g. --key "0,-3;5,6" for a 2x2 key. Negative entries reduce mod 97.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				_ = logging.SetLogLevel("hillcipher", "debug")
			}
		},
	}

	root.PersistentFlags().StringVarP(&keySpec, "key", "k", "", "key matrix, rows separated by ';', entries by ','")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkPersistentFlagRequired("key")

	root.AddCommand(
		newEncryptCommand(&keySpec),
		newDecryptCommand(&keySpec),
		newValidateCommand(&keySpec),
	)
	return root
}

// parseKey turns a "0,-3;5,6" style flag value into a key matrix.
func parseKey(spec string) (*field.Matrix, error) {
	var rows [][]int64
	for _, line := range strings.Split(spec, ";") {
		var row []int64
		for _, entry := range strings.Split(line, ",") {
			v, err := strconv.ParseInt(strings.TrimSpace(entry), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("key entry %q: %w", entry, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return hillcipher.NewKey(rows)
}

// readMessage returns the sole argument, or stdin when none is given.
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newEncryptCommand(keySpec *string) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [text]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text with the key (reads stdin when no argument is given)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(*keySpec)
			if err != nil {
				return err
			}
			pt, err := readMessage(args)
			if err != nil {
				return err
			}
			ct, err := hillcipher.Encrypt(key, pt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
}

func newDecryptCommand(keySpec *string) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [text]",
		Aliases: []string{"dec"},
		Short:   "Decrypt text with the key (reads stdin when no argument is given)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(*keySpec)
			if err != nil {
				return err
			}
			ct, err := readMessage(args)
			if err != nil {
				return err
			}
			pt, err := hillcipher.Decrypt(key, ct)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
}

func newValidateCommand(keySpec *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the key is invertible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := parseKey(*keySpec)
			if err != nil {
				return err
			}
			ok, err := hillcipher.IsValidKey(key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key %q is singular", *keySpec)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "key is invertible")
			return nil
		},
	}
}
