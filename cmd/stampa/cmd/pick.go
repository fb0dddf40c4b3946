package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var pickLayout string

func init() {
	Pick.Flags().StringVar(&pickLayout, "layout", "", "name of the layout to export")
	Pick.MarkFlagRequired("layout")
}

// Pick is the command that exports one chosen layout out of many.
var Pick = &cobra.Command{
	Use:   "pick",
	Short: "Export one chosen print layout",
	Long: `Export the layout named by --layout. The name has to match a layout of the
project exactly; on a miss the known layout names are listed.`,
	RunE: pickCmdRunE,
}

func pickCmdRunE(ccmd *cobra.Command, args []string) error {
	if fileName == "" {
		fileName = pickLayout
	}
	req, err := buildRequest()
	if err != nil {
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 1, ShowUsage: true}
	}
	return runExport(context.Background(), []string{pickLayout}, req, false)
}
