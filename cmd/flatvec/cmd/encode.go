package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flatvec/flatvec/pkg/flatvec"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode newline-separated strings into a flatvec buffer",
	Long: `Encode reads newline-separated strings from a file or stdin and
writes the encoded collection-of-strings buffer.

Example:
  printf 'Rust\nIs\nAwesome!\n' | flatvec encode -w 32 -o out.bin`,
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

		lines := strings.Split(string(in), "\n")
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}

		c := flatvec.SliceCodec(w, flatvec.StringCodec(w))
		buf, err := c.Encode(lines)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out != "" {
			return os.WriteFile(out, buf, 0644)
		}
		_, err = cmd.OutOrStdout().Write(buf)
		return err
	},
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "Write the buffer to a file instead of stdout")
	rootCmd.AddCommand(encodeCmd)
}
