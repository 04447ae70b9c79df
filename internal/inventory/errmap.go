package inventory

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/charmbracelet/log"

	"github.com/snipeops/snipeit-mcp/internal/snipeit"
)

// argError is a local pre-call validation failure. It is rendered into the
// envelope verbatim and never reaches the collaborator.
type argError struct {
	msg string
}

func (e argError) Error() string { return e.msg }

func argErrorf(format string, args ...any) error {
	return argError{msg: fmt.Sprintf(format, args...)}
}

// mapError classifies a fault raised by validation or by the collaborator
// into a failure envelope. The entity noun prefixes not-found messages
// ("Asset not found: ..."); an empty entity yields the bare "Not found: ..."
// used by the file tool, where the missing thing may be the asset or the
// file. Unrecognized faults are logged in full and surfaced only as a
// generic message plus the fault's string form.
func mapError(logger *log.Logger, entity string, err error) Envelope {
	var (
		arg      argError
		notFound *snipeit.NotFoundError
		auth     *snipeit.AuthenticationError
		invalid  *snipeit.ValidationError
		service  *snipeit.Error
	)

	switch {
	case errors.As(err, &arg):
		logger.Debug("rejected by local validation", "err", err)
		return Envelope{Error: arg.msg}
	case errors.As(err, &notFound):
		logger.Error("entity not found", "err", err)
		if entity == "" {
			return Envelope{Error: "Not found: " + err.Error()}
		}
		return Envelope{Error: entity + " not found: " + err.Error()}
	case errors.As(err, &auth):
		logger.Error("authentication failed", "err", err)
		return Envelope{Error: "Authentication failed: " + err.Error()}
	case errors.As(err, &invalid):
		logger.Error("payload rejected", "err", err)
		return Envelope{Error: "Validation error: " + err.Error()}
	case errors.As(err, &service):
		logger.Error("snipe-it fault", "err", err)
		return Envelope{Error: "Snipe-IT error: " + err.Error()}
	default:
		logger.Error("unexpected fault", "err", err, "stack", string(debug.Stack()))
		return Envelope{Error: "Unexpected error: " + err.Error()}
	}
}

// recovered converts a recovered panic value into an unexpected-error
// envelope. Dispatchers defer this so no fault can escape the tool boundary.
func recovered(logger *log.Logger, r any) (Envelope, bool) {
	if r == nil {
		return Envelope{}, false
	}
	logger.Error("panic during dispatch", "panic", r, "stack", string(debug.Stack()))
	return Envelope{Error: fmt.Sprintf("Unexpected error: %v", r)}, true
}
