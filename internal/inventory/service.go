// Package inventory is the action-dispatch core: one dispatcher per tool
// validates the action/field combination, drives exactly the collaborator
// calls that action defines, and shapes every outcome — success, handled
// failure, or panic — into a uniform response envelope.
package inventory

import (
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service owns the dispatchers. It carries no per-call state: every
// invocation acquires its own client from the factory and discards all
// transient structures on return.
type Service struct {
	clients  ClientFactory
	log      *log.Logger
	validate *validator.Validate
}

// NewService builds a Service around an injected client factory. A nil
// logger discards output (used by tests).
func NewService(clients ClientFactory, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Service{clients: clients, log: logger, validate: v}
}

// logger returns a per-invocation logger tagged with the tool, the action,
// and a fresh call ID.
func (s *Service) logger(tool, action string) *log.Logger {
	l := s.log.With("tool", tool, "call_id", uuid.NewString())
	if action != "" {
		l = l.With("action", action)
	}
	return l
}

// checkValues runs struct-tag validation (enum-valued fields) and renders
// the first failure as a local validation error. Action-specific required
// field checks live in the dispatchers themselves.
func (s *Service) checkValues(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "oneof":
			return argErrorf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
		case "required":
			return argErrorf("%s is required", fe.Field())
		default:
			return argErrorf("invalid value for %s", fe.Field())
		}
	}
	return argError{msg: err.Error()}
}

// acquire builds the scoped per-call client.
func (s *Service) acquire() (Client, error) {
	return s.clients()
}
