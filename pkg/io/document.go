package io

import (
	"github.com/matzehuels/elbow/pkg/elbow"
	errs "github.com/matzehuels/elbow/pkg/errors"
)

// Document is a batch of connectors to route.
type Document struct {
	Defaults   Settings    `json:"defaults"`
	Connectors []Connector `json:"connectors"`
}

// Settings holds routing parameters. Nil fields are unset.
type Settings struct {
	Clearance *float64 `json:"clearance,omitempty"`
	Overshoot *float64 `json:"overshoot,omitempty"`
	Bias      *float64 `json:"bias,omitempty"`
}

// Connector is one routing request within a batch.
type Connector struct {
	ID   string       `json:"id,omitempty"`
	From elbow.Anchor `json:"from"`
	To   elbow.Anchor `json:"to"`
	Settings
}

// Options returns the route options for s, falling back to fallback for
// unset fields.
func (s Settings) Options(fallback Settings) []elbow.Option {
	m := s.Merge(fallback)
	var opts []elbow.Option
	if m.Clearance != nil {
		opts = append(opts, elbow.WithClearance(*m.Clearance))
	}
	if m.Bias != nil {
		opts = append(opts, elbow.WithBias(*m.Bias))
	}
	return opts
}

func (s Settings) clearance() *float64 {
	if s.Clearance != nil {
		return s.Clearance
	}
	return s.Overshoot
}

// Merge returns s with unset fields taken from fallback.
func (s Settings) Merge(fallback Settings) Settings {
	if c := s.clearance(); c != nil {
		s.Clearance = c
	} else {
		s.Clearance = fallback.clearance()
	}
	s.Overshoot = nil
	if s.Bias == nil {
		s.Bias = fallback.Bias
	}
	return s
}

// Normalize folds the overshoot alias into Clearance. Giving both with
// different values is an INVALID_FORMAT error.
func (s *Settings) Normalize() error {
	if s.Overshoot == nil {
		return nil
	}
	if s.Clearance != nil && *s.Clearance != *s.Overshoot {
		return errs.New(errs.ErrCodeInvalidFormat,
			"clearance (%g) and overshoot (%g) disagree", *s.Clearance, *s.Overshoot)
	}
	s.Clearance, s.Overshoot = s.Overshoot, nil
	return nil
}

// Results holds one entry per routed connector, in input order.
type Results struct {
	Routes []Result `json:"routes"`
}

// Result is the outcome of routing one connector. Exactly one of Points and
// Error is set.
type Result struct {
	ID     string     `json:"id"`
	Points elbow.Path `json:"points,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the wire form of a routing error.
type ErrorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

// NewErrorBody converts err to its wire form. Errors without a code are
// reported as internal errors.
func NewErrorBody(err error) *ErrorBody {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	return &ErrorBody{Code: code, Message: errs.UserMessage(err)}
}
