package cmd

import (
	"context"

	"github.com/go-spatial/stampa/stampa"
	"github.com/spf13/cobra"
)

var mergeLayouts []string

func init() {
	Merge.Flags().StringSliceVar(&mergeLayouts, "layouts", nil, "names of the layouts to export, in order")
	Merge.MarkFlagRequired("layouts")
}

// Merge is the command that exports several layouts in one go.
var Merge = &cobra.Command{
	Use:   "merge",
	Short: "Export several print layouts at once",
	Long: `Export the layouts named by --layouts, in the order given. With the pdf
format the layouts are merged into a single document; with jpeg each layout
becomes its own image in the output directory.`,
	RunE: mergeCmdRunE,
}

func mergeCmdRunE(ccmd *cobra.Command, args []string) error {
	if len(mergeLayouts) == 0 {
		err := stampa.ErrNoLayoutsSelected
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 1, ShowUsage: true}
	}
	req, err := buildRequest()
	if err != nil {
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 1, ShowUsage: true}
	}
	return runExport(context.Background(), mergeLayouts, req, true)
}
