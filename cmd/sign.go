package cmd

import (
	"fmt"
	"io"
	"os"

	"trusted-api/core/signing"

	"github.com/spf13/cobra"
)

var (
	signSecret   string
	signPath     string
	signBodyFile string
	signScheme   string
)

// signCmd prints the signature header value for a request.
var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Compute the signature for a trusted API request",
	Long: `Prints the value a client must send in the signature header.
The body is read from --body-file, or from stdin when the file is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme, err := signing.ParseScheme(signScheme)
		if err != nil {
			return err
		}

		var body []byte
		switch signBodyFile {
		case "":
		case "-":
			body, err = io.ReadAll(cmd.InOrStdin())
		default:
			body, err = os.ReadFile(signBodyFile)
		}
		if err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), scheme.Sign(signSecret, signPath, body))
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signSecret, "secret", "", "credential secret")
	signCmd.Flags().StringVar(&signPath, "path", "", "request path, e.g. /api/trusted/v1/event/2014casj/matches/update")
	signCmd.Flags().StringVar(&signBodyFile, "body-file", "", "file holding the exact request body (\"-\" for stdin)")
	signCmd.Flags().StringVar(&signScheme, "scheme", string(signing.SchemeMD5), "signature scheme: md5 or hmac-sha256")
	_ = signCmd.MarkFlagRequired("secret")
	_ = signCmd.MarkFlagRequired("path")
	RootCmd.AddCommand(signCmd)
}
