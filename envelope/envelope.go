// Package envelope shapes the ok/data/error/meta payload services answer
// with. Transport stays with the caller; this package only builds and
// writes the JSON body.
package envelope

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/go-shape/shapecheck"
)

// Meta carries the response metadata block.
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	Endpoint  string    `json:"endpoint,omitempty"`
	Service   string    `json:"service,omitempty"`
}

// ErrorBody is the machine-readable failure block.
type ErrorBody struct {
	Kind     string   `json:"kind"`
	Messages []string `json:"messages"`
	Value    any      `json:"value,omitempty"`
}

// Envelope is the standard response payload. Exactly one of Data and Error
// is set, mirrored by OK.
type Envelope struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// Option tweaks the envelope metadata.
type Option func(*Envelope)

// WithEndpoint records the endpoint the response answers for.
func WithEndpoint(endpoint string) Option {
	return func(e *Envelope) { e.Meta.Endpoint = endpoint }
}

// WithService records the answering service name.
func WithService(service string) Option {
	return func(e *Envelope) { e.Meta.Service = service }
}

// WithTimestamp overrides the timestamp, mostly for tests.
func WithTimestamp(t time.Time) Option {
	return func(e *Envelope) { e.Meta.Timestamp = t }
}

// OK builds a success envelope around data.
func OK(data any, opts ...Option) Envelope {
	e := Envelope{OK: true, Data: data, Meta: Meta{Timestamp: time.Now().UTC()}}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Fail builds a failure envelope from err. Validation errors keep their
// kind, messages, and offending value; anything else becomes INTERNAL_ERROR
// with the error text as its one message.
func Fail(err error, opts ...Option) Envelope {
	e := Envelope{Meta: Meta{Timestamp: time.Now().UTC()}}
	var verr *shapecheck.Error
	if errors.As(err, &verr) {
		e.Error = &ErrorBody{Kind: string(verr.Kind), Messages: verr.Messages, Value: verr.Value}
	} else {
		e.Error = &ErrorBody{Kind: "INTERNAL_ERROR", Messages: []string{err.Error()}}
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Write encodes e to w with the given status.
func Write(w http.ResponseWriter, status int, e Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		zap.L().Error("encode envelope", zap.Error(err))
		return err
	}
	return nil
}

// WriteError writes the failure envelope for err: 422 for validation
// failures, 500 for everything else.
func WriteError(w http.ResponseWriter, err error, opts ...Option) error {
	status := http.StatusInternalServerError
	var verr *shapecheck.Error
	if errors.As(err, &verr) {
		status = http.StatusUnprocessableEntity
		zap.L().Debug("validation rejected", zap.Strings("messages", verr.Messages))
	}
	return Write(w, status, Fail(err, opts...))
}
