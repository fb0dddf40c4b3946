package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-spatial/stampa/stampa"
	"github.com/go-spatial/stampa/stampa/config"
	"github.com/go-spatial/stampa/stampa/exporter"
	"github.com/go-spatial/stampa/stampa/filestore"
	fsmulti "github.com/go-spatial/stampa/stampa/filestore/multi"
	"github.com/go-spatial/stampa/stampa/layouts"
	"github.com/go-spatial/stampa/stampa/notifiers"
	"github.com/go-spatial/tegola/dict"
	"github.com/gogo/protobuf/proto"
	"github.com/spf13/cobra"
)

const (
	// DefaultResolution is the resolution used when neither the flag nor the
	// config sets one.
	DefaultResolution = "Medium (300 DPI)"

	// DefaultFormat is the format used when neither the flag nor the config
	// sets one.
	DefaultFormat = "pdf"
)

var (
	// Providers are the configured layout catalog providers
	Providers = make(map[string]layouts.Provider)
	// FileStores are the files store providers
	FileStores = make(map[string]filestore.Provider)
	// Notifier is the configured notifier provider, may be nil
	Notifier notifiers.Provider
	// Exporter is the configured exporter backend
	Exporter exporter.Exporter

	// firstProvider is the name of the first provider in the config, used
	// when the user does not pick one
	firstProvider string

	// Flags
	configFile      string
	providerName    string
	outputDir       string
	fileName        string
	resolutionLabel string
	formatString    string
	includeGeo      bool
	jobstr          string
	showJob         bool
)

func init() {
	Root.PersistentFlags().StringVar(&configFile, "config", "config.toml", "config file to use")
	Root.PersistentFlags().StringVar(&providerName, "provider", "", "layout provider to use, defaults to the first one configured")
	Root.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "directory to leave the output in")
	Root.PersistentFlags().StringVar(&fileName, "name", "", "file name of the output")
	Root.PersistentFlags().StringVar(&resolutionLabel, "resolution", "", `resolution of the output: "High (600 DPI)", "Medium (300 DPI)" or "Low (150 DPI)"`)
	Root.PersistentFlags().StringVar(&formatString, "format", "", "output format, pdf or jpeg")
	Root.PersistentFlags().BoolVar(&includeGeo, "georeferencing", false, "keep the georeferencing sidecar files next to the output")
	Root.PersistentFlags().StringVar(&jobstr, "job", "", "base64 encoded job")
	Root.PersistentFlags().BoolVar(&showJob, "show-job", false, "print out the job string for the parameters, and exit, if job is given with a string print out what's in the job string")

	Root.AddCommand(Single)
	Root.AddCommand(Pick)
	Root.AddCommand(Merge)
}

// Root is the main cobra command
var Root = &cobra.Command{
	Use:   "stampa",
	Short: "Stampa exports QGIS print layouts to pdf and jpeg files",
	Long: `Stampa exports the print layouts of a QGIS project to pdf and jpeg files.
Complete documentation is available at http://github.com/go-spatial/stampa`,
	PersistentPreRunE: func(ccmd *cobra.Command, args []string) error {
		return LoadConfig(configFile)
	},
	RunE: rootCmdRunE,
}

// FilestoreConfig is a config for file stores
type FilestoreConfig struct {
	dict.Dicter
}

// FileStoreFor implements the filestore.Config interface
func (fscfg FilestoreConfig) FileStoreFor(name string) (filestore.Provider, error) {
	name = strings.ToLower(name)
	p, ok := FileStores[name]
	if !ok {
		return nil, filestore.ErrUnknownProvider(name)
	}
	return p, nil
}

// LoadConfig will attempt to load and validate a config at the given location,
// and wire up the providers it declares.
func LoadConfig(location string) error {

	aURL, err := url.Parse(location)
	if err != nil {
		return err
	}
	conf, err := config.LoadAndValidate(aURL)
	if err != nil {
		return err
	}

	// Loop through providers creating a provider type mapping.
	for i, p := range conf.Providers {
		// type is required
		typ, err := p.String("type", nil)
		if err != nil {
			return fmt.Errorf("error provider (%v) missing type : %v", i, err)
		}
		name, err := p.String("name", nil)
		if err != nil {
			return fmt.Errorf("error provider (%v) missing name : %v", i, err)
		}
		name = strings.ToLower(name)
		if _, ok := Providers[name]; ok {
			return fmt.Errorf("error provider with name (%v) is already registered", name)
		}
		prv, err := layouts.For(typ, p)
		if err != nil {
			return fmt.Errorf("error registering provider #%v: %v", i, err)
		}
		if firstProvider == "" {
			firstProvider = name
		}
		Providers[name] = prv
	}

	// filestores
	for i, fstore := range conf.FileStores {
		// type is required
		typ, err := fstore.String("type", nil)
		if err != nil {
			return fmt.Errorf("error filestore (%v) missing type : %v", i, err)
		}
		name, err := fstore.String("name", nil)
		if err != nil {
			return fmt.Errorf("error filestore (%v) missing name: %v", i, err)
		}
		name = strings.ToLower(name)
		if _, ok := FileStores[name]; ok {
			return fmt.Errorf("error filestore (%v) with name (%v) is already registered", i, name)
		}
		prv, err := filestore.For(typ, FilestoreConfig{fstore})
		if err != nil {
			return fmt.Errorf("error registering filestore %v:%v", i, err)
		}
		FileStores[name] = prv
	}

	if len(conf.Exporter) != 0 {
		Exporter, err = exporter.From(conf.Exporter)
		if err != nil {
			return fmt.Errorf("error configuring exporter: %v", err)
		}
	}

	if len(conf.Notifier) != 0 {
		Notifier, err = notifiers.From(conf.Notifier)
		if err != nil {
			return fmt.Errorf("error configuring notifier: %v", err)
		}
	}

	// Config defaults fill in for flags the user did not set.
	if outputDir == "" {
		outputDir = conf.Defaults.OutputDirectory
	}
	if fileName == "" {
		fileName = conf.Defaults.FileName
	}
	if resolutionLabel == "" {
		resolutionLabel = conf.Defaults.Resolution
	}
	if resolutionLabel == "" {
		resolutionLabel = DefaultResolution
	}
	if formatString == "" {
		formatString = conf.Defaults.Format
	}
	if formatString == "" {
		formatString = DefaultFormat
	}
	if !includeGeo {
		includeGeo = conf.Defaults.IncludeGeoreferencing
	}

	return nil
}

// provider returns the layout provider the export should run against.
func provider() (layouts.Provider, error) {
	name := strings.ToLower(strings.TrimSpace(providerName))
	if name == "" {
		name = firstProvider
	}
	if name == "" {
		return nil, layouts.ErrNoProvidersRegistered
	}
	p, ok := Providers[name]
	if !ok {
		return nil, layouts.ErrProviderNotRegistered(name)
	}
	return p, nil
}

// buildRequest maps the flag values to an export request.
func buildRequest() (stampa.ExportRequest, error) {
	format, err := stampa.ParseFormat(formatString)
	if err != nil {
		return stampa.ExportRequest{}, err
	}
	return stampa.ExportRequest{
		OutputDir:             outputDir,
		Filename:              fileName,
		Resolution:            resolutionLabel,
		Format:                format,
		IncludeGeoreferencing: includeGeo,
	}, nil
}

// newStampa wires up a stampa object for the request.
func newStampa(req stampa.ExportRequest) (*stampa.Stampa, error) {
	prv, err := provider()
	if err != nil {
		return nil, err
	}
	if Exporter == nil {
		return nil, stampa.ErrNilExporter
	}

	var fsprv filestore.Provider
	fstores := make([]filestore.Provider, 0, len(FileStores))
	for _, fs := range FileStores {
		fstores = append(fstores, fs)
	}
	switch len(fstores) {
	case 0:
		fsprv = nil
	case 1:
		fsprv = fstores[0]
	default:
		fsprv = fsmulti.New(fstores...)
	}

	s := &stampa.Stampa{
		Layouts:   prv,
		Exporter:  Exporter,
		Filestore: fsprv,
	}
	if Notifier != nil {
		exportID := strings.TrimSuffix(filepath.Base(req.Filename), filepath.Ext(req.Filename))
		s.Emitter, err = Notifier.NewEmitter(exportID)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// runExport runs, or with --show-job prints, the export described by the
// layout selection and request.
func runExport(ctx context.Context, layoutNames []string, req stampa.ExportRequest, multi bool) error {
	if len(layoutNames) == 0 {
		return ErrExitWith{
			Err:       stampa.ErrNoLayoutsSelected,
			Msg:       stampa.ErrNoLayoutsSelected.Error(),
			ExitCode:  1,
			ShowUsage: true,
		}
	}
	if showJob {
		jb := stampa.NewJob(layoutNames, req)
		jbstr, err := jb.Base64Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, jbstr)
		return nil
	}

	s, err := newStampa(req)
	if err != nil {
		return ErrExitWith{Err: err, Msg: err.Error(), ExitCode: 1, ShowUsage: true}
	}

	var output string
	if multi {
		output, err = s.ExportLayouts(ctx, layoutNames, req)
	} else {
		output, err = s.ExportLayout(ctx, layoutNames[0], req)
	}
	if err != nil {
		if unknown, ok := err.(stampa.ErrUnknownLayoutName); ok {
			msg := fmt.Sprintf("unknown layout %v\nknown layouts:\n", string(unknown))
			if names, nerr := layouts.Names(s.Layouts); nerr == nil {
				for _, name := range names {
					msg += "\t" + name + "\n"
				}
			}
			return ErrExitWith{Err: err, Msg: msg, ExitCode: 2}
		}
		return ErrExitWith{Err: err, Msg: fmt.Sprintf("error exporting\n\t%v\n", err), ExitCode: 2}
	}

	fmt.Fprintf(os.Stdout, "Exported: %v\n", output)
	return nil
}

// rootCmdRunE only has work to do when a job string is involved; the actual
// tools are the subcommands.
func rootCmdRunE(ccmd *cobra.Command, args []string) error {
	switch {
	case showJob && jobstr != "":
		// We need to print out what's in the job.
		jb, err := stampa.Base64UnmarshalJob(jobstr)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, proto.MarshalTextString(jb))
		return nil
	case jobstr != "":
		jb, err := stampa.Base64UnmarshalJob(jobstr)
		if err != nil {
			return err
		}
		req, err := jb.ExportRequest()
		if err != nil {
			return err
		}
		return runExport(context.Background(), jb.Layouts, req, len(jb.Layouts) > 1)
	default:
		return ErrExitWith{Msg: "nothing to do\n", ExitCode: 1, ShowUsage: true}
	}
}
