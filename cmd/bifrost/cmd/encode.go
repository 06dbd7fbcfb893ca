package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/b64"
)

// codecFlags captures the encoding flags shared by encode and decode.
type codecFlags struct {
	mime    bool
	urlSafe bool
	noPad   bool
	strip   bool
	wrap    int
	wrapSet bool
	crlf    bool
}

// codecFlagsFrom reads the shared flags off a command. Flags a command
// does not define are left at their zero value.
func codecFlagsFrom(cmd *cobra.Command) codecFlags {
	f := codecFlags{}
	f.mime, _ = cmd.Flags().GetBool("mime")
	f.urlSafe, _ = cmd.Flags().GetBool("url-safe")
	f.noPad, _ = cmd.Flags().GetBool("no-pad")
	f.strip, _ = cmd.Flags().GetBool("strip-whitespace")
	f.wrap, _ = cmd.Flags().GetInt("wrap")
	f.wrapSet = cmd.Flags().Changed("wrap")
	f.crlf, _ = cmd.Flags().GetBool("crlf")
	return f
}

// config layers the flags over the standard (or MIME) preset.
func (f codecFlags) config() b64.Config {
	base := b64.StandardConfig
	if f.mime {
		base = b64.MIMEConfig
	}

	cs := base.CharacterSet()
	if f.urlSafe {
		cs = b64.URLSafe
	}

	pad := base.Padded()
	if f.noPad {
		pad = false
	}

	strip := base.StripsWhitespace() || f.strip

	wrap := base.LineWrap()
	ending := wrap.Ending()
	if f.crlf {
		ending = b64.CRLF
		if wrap.Enabled() {
			wrap = b64.Wrap(wrap.Width(), ending)
		}
	}
	if f.wrapSet {
		wrap = b64.Wrap(f.wrap, ending)
	}

	return b64.NewConfig(cs, pad, strip, wrap)
}

// readInput returns the contents of the file named in args, or everything
// from stdin when no file (or "-") is given.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(stdin)
}

// writeOutput writes data to the named file, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path != "" {
		return os.WriteFile(path, data, 0644)
	}
	_, err := stdout.Write(data)
	return err
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Base64-encode a file or stdin",
	Long: `Base64-encode the named file, or stdin when no file is given.

The standard alphabet with padding is used unless flags say otherwise.

Examples:
  bifrost encode photo.jpg
  cat photo.jpg | bifrost encode --mime
  bifrost encode --url-safe --no-pad token.bin --output token.txt`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			cmd.Printf("Error reading input: %v\n", err)
			os.Exit(1)
		}

		cfg := codecFlagsFrom(cmd).config()
		encoded := cfg.EncodeToString(data)

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			// Terminal output gets a trailing newline; files carry the
			// encoding verbatim.
			encoded += "\n"
		}

		if err := writeOutput(output, []byte(encoded), cmd.OutOrStdout()); err != nil {
			cmd.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().Bool("url-safe", false, "Use the URL-safe alphabet ('-' and '_')")
	encodeCmd.Flags().Bool("no-pad", false, "Omit '=' padding")
	encodeCmd.Flags().Bool("mime", false, "MIME transfer encoding (76-column CRLF wrapping)")
	encodeCmd.Flags().Int("wrap", 0, "Wrap output at N columns, 0 disables wrapping")
	encodeCmd.Flags().Bool("crlf", false, "End wrapped lines with CRLF instead of LF")
	encodeCmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
}
