package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flatvec/flatvec/pkg/flatvec"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flatvec",
	Short: "flatvec - tagless length-prefixed binary codec",
	Long: `flatvec encodes and decodes values in a tagless binary format:
little-endian scalars, raw text content and size-prefixed collections.
The size width is shared configuration, so every command must be run
with the same --width the producing side used.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntP("width", "w", 32, "Size width in bits (8, 16, 32 or 64)")
}

// widthFlag maps the --width flag to a codec Width.
func widthFlag(cmd *cobra.Command) (flatvec.Width, error) {
	bits, err := cmd.Flags().GetInt("width")
	if err != nil {
		return 0, err
	}
	switch bits {
	case 8:
		return flatvec.Width8, nil
	case 16:
		return flatvec.Width16, nil
	case 32:
		return flatvec.Width32, nil
	case 64:
		return flatvec.Width64, nil
	}
	return 0, fmt.Errorf("unsupported width %d, want 8, 16, 32 or 64", bits)
}

// readInput reads the optional file argument, or stdin when absent.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}
