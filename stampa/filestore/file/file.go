package file

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gdey/errors"
	"github.com/go-spatial/stampa/stampa/filestore"
)

const (
	// TYPE is the name of the provider
	TYPE = "file"

	// ConfigKeyBasepath is the base directory where the file will be placed.
	ConfigKeyBasepath = "base_path"
	// ConfigKeyGroup indicates weather we should group assets in a subdirectory
	// based on the export id
	ConfigKeyGroup = "group"
	// ConfigKeyIntermediate is the key used to tell the system to write out the
	// per layout scratch files as well.
	ConfigKeyIntermediate = "intermediate"

	// ErrMissingBasePath is returned when the configured value for the base path is missing.
	ErrMissingBasePath = errors.String("error " + ConfigKeyBasepath + " missing value")
)

func initFunc(cfg filestore.Config) (filestore.Provider, error) {
	basepath, err := cfg.String(ConfigKeyBasepath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error invalid for config key: %v", ConfigKeyBasepath)
	}
	if basepath == "" {
		return nil, ErrMissingBasePath
	}
	basepath = filepath.Clean(basepath)
	if basepath != "." {
		if err = os.MkdirAll(basepath, os.ModePerm); err != nil {
			return nil, errors.Wrapf(err, "error failed to write to %v", basepath)
		}
	}

	grp, _ := cfg.Bool(ConfigKeyGroup, nil)
	intermediate, _ := cfg.Bool(ConfigKeyIntermediate, nil)

	return Provider{
		Base:         basepath,
		Group:        grp,
		Intermediate: intermediate,
	}, nil
}

func init() {
	filestore.Register(TYPE, initFunc, nil)
}

// Provider provides a filestore that write to the local file system.
type Provider struct {
	Base         string
	Group        bool
	Intermediate bool
}

// FileWriter implements the filestore.Provider interface
func (p Provider) FileWriter(exportID string) (filestore.FileWriter, error) {
	base := p.Base
	if p.Group {
		// Append the export id to the end of the base to make a new base path.
		base = filepath.Join(base, exportID)
		base = filepath.Clean(base)
		if err := os.MkdirAll(base, os.ModePerm); err != nil {
			return nil, errors.Wrapf(err, "error failed to write to %v", base)
		}
	}
	return Writer{
		Base:         base,
		Intermediate: p.Intermediate,
	}, nil
}

// PathURL implements the filestore.Pather interface
func (p Provider) PathURL(exportID string, fpath string, isIntermediate bool) (*url.URL, error) {
	if isIntermediate && !p.Intermediate {
		return nil, filestore.ErrUnsupportedOperation
	}
	base := p.Base
	if p.Group {
		base = filepath.Join(base, exportID)
	}
	path := filepath.Join(base, fpath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, filestore.ErrPath{
			Filepath:       fpath,
			IsIntermediate: isIntermediate,
			FilestoreType:  TYPE,
			Err:            filestore.ErrFileDoesNotExist,
		}
	}
	return &url.URL{
		Scheme: "file",
		Path:   path,
	}, nil
}

// Writer writes the given file to the location
type Writer struct {
	Base         string
	Intermediate bool
}

// Writer implements the filestore.FileWriter interface
func (w Writer) Writer(fpath string, isIntermediate bool) (io.WriteCloser, error) {
	// If we are not writing out intermediate file, skip.
	if !w.Intermediate && isIntermediate {
		return nil, filestore.ErrSkipWrite
	}
	// We are writing this file. First thing to do is
	// combine the file path with the base path.
	path := filepath.Join(w.Base, fpath)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "error failed create base dir %v", dir)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error failed to create file %v", path)
	}
	return f, nil
}

// Exists implements the filestore.Exister interface
func (w Writer) Exists(fpath string) bool {
	_, err := os.Stat(filepath.Join(w.Base, fpath))
	return err == nil
}

// make sure we are always adhering to the interface.
var (
	_ = filestore.Provider(Provider{})
	_ = filestore.Pather(Provider{})
	_ = filestore.FileWriter(Writer{})
	_ = filestore.Exister(Writer{})
)
