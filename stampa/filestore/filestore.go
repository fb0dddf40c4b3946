package filestore

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gdey/errors"
)

// FileWriter returns a writer object
type FileWriter interface {
	// Writer should return an io.Writer that can be used to write the file to.
	// If the file should not be written to the filestore, return nil for
	// the io.WriteCloser.
	// isIntermediate marks scratch output, such as the per layout pdf parts
	// produced while assembling a merged document.
	Writer(filepath string, isIntermediate bool) (io.WriteCloser, error)
}

// Provider returns a filestore that can be used to store exported files.
type Provider interface {
	// FileWriter provides a file writer that can be used to write the files
	// of the given export into the store.
	FileWriter(exportID string) (FileWriter, error)
}

// Pather returns the url from which a stored file can be retrieved.
// Filestores that can not provide a url should return ErrUnsupportedOperation.
type Pather interface {
	PathURL(exportID string, filepath string, isIntermediate bool) (*url.URL, error)
}

// Exister allows a filestore to report if it already holds a file.
type Exister interface {
	Exists(filepath string) bool
}

// ErrSkipWrite is a sentinel returned by a FileWriter to state that the file
// should not be written, without it being an error.
const ErrSkipWrite = errors.String("skip write")

// pipe adapts a consumer function to the io.WriteCloser interface.
// The consumer runs in its own goroutine, and its error is reported
// by Close.
type pipe struct {
	w    *io.PipeWriter
	done chan error

	filestoreType string
	name          string
}

// Pipe returns an io.WriteCloser whose writes are handed to the consume
// function as an io.Reader. Close waits for consume to return and reports
// its error, wrapped in an ErrPath naming the filestore.
func Pipe(filestoreType, name string, consume func(io.Reader) error) io.WriteCloser {
	pr, pw := io.Pipe()
	p := &pipe{
		w:             pw,
		done:          make(chan error, 1),
		filestoreType: filestoreType,
		name:          name,
	}
	go func() {
		err := consume(pr)
		pr.CloseWithError(err)
		p.done <- err
	}()
	return p
}

// Write implements io.Writer
func (p *pipe) Write(b []byte) (int, error) { return p.w.Write(b) }

// Close implements io.Closer
func (p *pipe) Close() error {
	p.w.Close()
	err := <-p.done
	if err == nil {
		return nil
	}
	return ErrPath{
		Filepath:      p.name,
		FilestoreType: p.filestoreType,
		Err:           err,
	}
}

// Copy writes the contents of the local file at src into the store under
// name. A nil writer or ErrSkipWrite from the store means the file is not
// wanted, and is not an error.
func Copy(fw FileWriter, src string, name string, isIntermediate bool) error {
	if fw == nil {
		return nil
	}
	w, err := fw.Writer(name, isIntermediate)
	if err != nil {
		if err == ErrSkipWrite {
			return nil
		}
		return err
	}
	if w == nil {
		return nil
	}
	defer w.Close()

	f, err := os.Open(filepath.Clean(src))
	if err != nil {
		return ErrPath{
			Filepath:       name,
			IsIntermediate: isIntermediate,
			Err:            err,
		}
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
