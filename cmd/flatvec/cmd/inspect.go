package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Walk a buffer's collection framing without decoding payloads",
	Long: `Inspect walks the outermost collection framing of a buffer under the
given --width and prints the element count and every element's byte
length and offset. Element payloads are not decoded, so inspect works
for collections of any element shape.

Example:
  flatvec inspect -w 32 out.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := widthFlag(cmd)
		if err != nil {
			return err
		}
		buf, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		pl := w.Len()
		if len(buf) < pl {
			return fmt.Errorf("buffer too short for a %s count prefix", w)
		}
		count, err := w.Uint(buf[:pl])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "width=%s count=%d total=%d bytes\n", w, count, len(buf))

		off := pl
		for i := uint64(0); i < count; i++ {
			if len(buf)-off < pl {
				return fmt.Errorf("element %d: truncated length prefix at offset %d", i, off)
			}
			size, err := w.Uint(buf[off : off+pl])
			if err != nil {
				return err
			}
			off += pl
			if uint64(len(buf)-off) < size {
				return fmt.Errorf("element %d: length %d exceeds %d remaining bytes", i, size, len(buf)-off)
			}
			fmt.Fprintf(out, "elem[%d] offset=%d len=%d\n", i, off, size)
			off += int(size)
		}
		if off != len(buf) {
			return fmt.Errorf("%d trailing bytes after %d elements", len(buf)-off, count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
