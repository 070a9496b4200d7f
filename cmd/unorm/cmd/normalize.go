package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbryio/unorm/normalization"
	"github.com/lbryio/unorm/ucd"
)

var normalizeForm string

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVarP(&normalizeForm, "form", "f", "NFC", "Normalization form {NFC, NFD, NFKC, NFKD}")
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text | U+XXXX ...>",
	Short: "Normalize text or a list of code points",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		form, err := normalization.ParseForm(normalizeForm)
		if err != nil {
			return err
		}

		in, err := parseInput(args)
		if err != nil {
			return err
		}

		n := normalization.New(ucd.Default())
		out, err := n.Normalize(in, form)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}

		showSequence("in", in, n.Properties())
		showSequence(form.String(), out, n.Properties())

		return nil
	},
}

// parseInput treats arguments that all look like U+XXXX as code points and
// anything else as literal text.
func parseInput(args []string) ([]rune, error) {
	for _, arg := range args {
		if !strings.HasPrefix(strings.ToUpper(arg), "U+") {
			return []rune(strings.Join(args, " ")), nil
		}
	}
	in, err := ucd.ParseCodepoints(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("invalid args: %w", err)
	}
	return in, nil
}
