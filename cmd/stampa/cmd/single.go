package cmd

import (
	"context"

	"github.com/go-spatial/stampa/stampa"
	"github.com/spf13/cobra"
)

// Single is the command that exports the project's only layout.
var Single = &cobra.Command{
	Use:   "single",
	Short: "Export the project's only print layout",
	Long: `Export the only print layout of the project. When --name is not given the
file name is prefilled from the layout's name with a ".pdf" suffix.`,
	RunE: singleCmdRunE,
}

func singleCmdRunE(ccmd *cobra.Command, args []string) error {
	prv, err := provider()
	if err != nil {
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 1, ShowUsage: true}
	}
	lyts, err := prv.Layouts()
	if err != nil {
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 2}
	}
	if len(lyts) == 0 {
		return ErrExitWith{Err: stampa.ErrNoLayouts, Msg: stampa.ErrNoLayouts.Error(), ExitCode: 2}
	}
	lyt := lyts[0]

	if fileName == "" {
		fileName = lyt.Name + ".pdf"
	}
	req, err := buildRequest()
	if err != nil {
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 1, ShowUsage: true}
	}

	return runExport(context.Background(), []string{lyt.Name}, req, false)
}
