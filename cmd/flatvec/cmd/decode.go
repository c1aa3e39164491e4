package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flatvec/flatvec/pkg/flatvec"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a flatvec buffer back into strings",
	Long: `Decode reads an encoded collection-of-strings buffer from a file or
stdin and prints one string per line. The --width must match the width
the buffer was encoded with; the format itself cannot detect a mismatch.

Example:
  flatvec decode -w 32 out.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := widthFlag(cmd)
		if err != nil {
			return err
		}
		in, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		c := flatvec.SliceCodec(w, flatvec.StringCodec(w))

		var vals []string
		limit, _ := cmd.Flags().GetInt("max-bytes")
		if limit > 0 {
			vals, err = flatvec.DecodeMax(c, in, limit)
		} else {
			vals, err = c.Decode(in)
		}
		if err != nil {
			return err
		}

		for _, v := range vals {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	decodeCmd.Flags().Int("max-bytes", 0, "Reject buffers larger than this before decoding (0 = no limit)")
	rootCmd.AddCommand(decodeCmd)
}
