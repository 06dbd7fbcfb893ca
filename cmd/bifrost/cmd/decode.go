package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode base64 from a file or stdin",
	Long: `Decode base64 text from the named file, or stdin when no file is
given, and write the raw bytes to stdout.

Padded and unpadded input are both accepted. Malformed input is rejected
with the offset of the first bad byte.

Examples:
  bifrost decode photo.txt --output photo.jpg
  echo aGVsbG8= | bifrost decode
  bifrost decode --mime message.b64`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			cmd.Printf("Error reading input: %v\n", err)
			os.Exit(1)
		}

		// Pipes and editors end their output with a newline; drop trailing
		// whitespace so plain pipelines work. Interior whitespace still
		// needs --mime or --strip-whitespace.
		data = bytes.TrimRight(data, " \t\r\n\v\f")

		cfg := codecFlagsFrom(cmd).config()

		decoded, err := cfg.AppendDecode(nil, data)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		output, _ := cmd.Flags().GetString("output")
		if err := writeOutput(output, decoded, cmd.OutOrStdout()); err != nil {
			cmd.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().Bool("url-safe", false, "Expect the URL-safe alphabet ('-' and '_')")
	decodeCmd.Flags().Bool("mime", false, "MIME transfer decoding (whitespace tolerated)")
	decodeCmd.Flags().Bool("strip-whitespace", false, "Drop whitespace before decoding")
	decodeCmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
}
