// Package urlutil provides helpers for reading files that may live on the
// local file system or behind an http(s) url, such as the config file.
package urlutil

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrRemoteFile records a failure obtaining a remote file.
type ErrRemoteFile struct {
	// Location is the url of the file that was attempted
	Location *url.URL
	Err      error
}

func (e ErrRemoteFile) Error() string {
	return fmt.Sprintf("error obtaining remote file (%v): %v", e.Location, e.Err)
}

// ErrUnsupportedScheme is returned for schemes other than file and http(s).
type ErrUnsupportedScheme ErrRemoteFile

func (e ErrUnsupportedScheme) Error() string {
	return fmt.Sprintf("unsupported scheme (%v), for location %v", strings.ToLower(e.Location.Scheme), e.Location)
}

// ErrFile records a failure opening a local file.
type ErrFile struct {
	// Filename is the name of the file that was attempted
	Filename string
	Err      error
}

func (e ErrFile) Error() string {
	return fmt.Sprintf("error opening local file (%v): %v", e.Filename, e.Err)
}

// ErrFileNotExists is returned when the local file does not exist.
type ErrFileNotExists ErrFile

func (e ErrFileNotExists) Error() string {
	return fmt.Sprintf("file at location (%v) not found!", e.Filename)
}

// ReaderCloser is an io.Reader that can be closed.
type ReaderCloser interface {
	io.Reader
	Close() error
}

// noCloserReader is a simple wrapper to provide a Close method to Readers
// that don't have one.
type noCloserReader struct {
	reader io.Reader
}

func (ncr noCloserReader) Read(p []byte) (int, error) { return ncr.reader.Read(p) }
func (ncr noCloserReader) Close() error               { return nil }

// IsRemote reports whether the location needs to be fetched over the network.
func IsRemote(location *url.URL) bool {
	if location == nil {
		return false
	}
	switch strings.ToLower(location.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

// NewReader returns a reader for the contents at the location.
func NewReader(location *url.URL) (ReaderCloser, error) {
	if location == nil {
		return nil, errors.New("nil url provided")
	}
	switch strings.ToLower(location.Scheme) {
	case "", "file":

		filename := location.EscapedPath()
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return nil, ErrFileNotExists{Filename: filename, Err: err}
		}

		file, err := os.Open(filename)
		if err != nil {
			return nil, ErrFile{Filename: filename, Err: err}
		}
		return file, nil

	case "http", "https":

		var httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}

		res, err := httpClient.Get(location.String())
		if err != nil {
			return nil, ErrRemoteFile{
				Location: location,
				Err:      err,
			}
		}
		return noCloserReader{reader: res.Body}, nil

	default:

		return nil, ErrUnsupportedScheme{Location: location}
	}
}

// ReadAll returns the contents at the location.
func ReadAll(location *url.URL) (b []byte, err error) {
	if location == nil {
		return nil, errors.New("nil url provided")
	}
	r, err := NewReader(location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

// VisitReader calls fn with a reader for the contents at the location.
func VisitReader(location *url.URL, fn func(io.Reader) error) error {
	if location == nil {
		return errors.New("nil url provided")
	}

	r, err := NewReader(location)
	if err != nil {
		return err
	}
	defer r.Close()
	return fn(r)
}
