package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"text/template"

	"github.com/gdey/errors"
	"github.com/go-spatial/stampa/stampa/notifiers"
	"github.com/go-spatial/stampa/stampa/status"
	"github.com/prometheus/common/log"
)

const (
	TYPE = "http"

	DefaultContentType = "application/json"
	DefaultURLTemplate = "/export/{{.ExportID}}/status"

	ConfigKeyContentType = "content_type"
	ConfigKeyURLTemplate = "url_template"
)

func initFunc(cfg notifiers.Config) (notifiers.Provider, error) {
	var err error
	contentType := DefaultContentType
	contentType, err = cfg.String(ConfigKeyContentType, &contentType)
	if err != nil {
		return nil, err
	}
	urlTemplate := DefaultURLTemplate
	urlTemplate, err = cfg.String(ConfigKeyURLTemplate, &urlTemplate)
	if err != nil {
		return nil, err
	}
	t, err := template.New("url").Parse(urlTemplate)
	if err != nil {
		return nil, err
	}
	log.Infof("configured notifier %v", TYPE)
	return &Provider{
		contentType: contentType,
		url:         t,
	}, nil
}

func init() {
	notifiers.Register(TYPE, initFunc, nil)
}

type Provider struct {
	contentType string
	url         *template.Template
}

func (p *Provider) NewEmitter(exportID string) (notifiers.Emitter, error) {
	var str strings.Builder
	var ctx = struct {
		ExportID string
	}{
		ExportID: exportID,
	}
	if err := p.url.Execute(&str, ctx); err != nil {
		return nil, err
	}

	return &emitter{
		exportID:    exportID,
		contentType: p.contentType,
		url:         str.String(),
	}, nil
}

type emitter struct {
	exportID    string
	contentType string
	url         string
}

func (e *emitter) Emit(se status.Enum) error {
	if e == nil {
		return errors.String("emitter is nil")
	}
	bdy, err := json.Marshal(status.Status{Status: se})
	if err != nil {
		return err
	}
	buff := bytes.NewBuffer(bdy)
	// Don't care about the response
	log.Infof("posting to %v:%s", e.url, string(bdy))
	_, err = http.Post(e.url, e.contentType, buff)
	if err != nil {
		log.Warnf("error posting to (%v): %v", e.url, err)
	}
	return err
}
