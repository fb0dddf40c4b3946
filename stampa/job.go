//go:generate protoc "--go_out=paths=source_relative:." "job.proto"

package stampa

import (
	"encoding/base64"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/golang/protobuf/ptypes"
	"github.com/pkg/errors"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// NewJob returns a new job object for the given layout selection and request
func NewJob(layouts []string, req ExportRequest) *Job {
	ts, _ := ptypes.TimestampProto(timeNow())
	return &Job{
		Layouts:               layouts,
		OutputDirectory:       req.OutputDir,
		FileName:              req.Filename,
		Resolution:            req.Resolution,
		Format:                req.Format.String(),
		IncludeGeoreferencing: req.IncludeGeoreferencing,
		RequestedAt:           ts,
	}
}

// ExportRequest rebuilds the request the job describes.
func (j *Job) ExportRequest() (ExportRequest, error) {
	if j == nil {
		return ExportRequest{}, ErrNilJob
	}
	format, err := ParseFormat(j.Format)
	if err != nil {
		return ExportRequest{}, err
	}
	return ExportRequest{
		OutputDir:             j.OutputDirectory,
		Filename:              j.FileName,
		Resolution:            j.Resolution,
		Format:                format,
		IncludeGeoreferencing: j.IncludeGeoreferencing,
	}, nil
}

// Base64Marshal returns the job encode in a based64 string
func (j *Job) Base64Marshal() (string, error) {
	// first marshal to pbf
	data, err := proto.Marshal(j)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal")
	}

	// Now marshal the []byte to base64
	return base64.StdEncoding.EncodeToString(data), nil
}

// Base64UnmarshalJob will return a Job object for the encode job string
func Base64UnmarshalJob(str string) (*Job, error) {
	data, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return nil, errors.Wrap(err, "failed to base64 decode")
	}

	var jb Job
	if err := proto.Unmarshal(data, &jb); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal protobuf")
	}

	return &jb, nil
}
