package facegen

import (
	"errors"
	"fmt"

	"github.com/ironsheep/face-gen-mcp/internal/mask"
	"github.com/ironsheep/face-gen-mcp/internal/source"
	"github.com/ironsheep/face-gen-mcp/internal/writer"
)

// Kind classifies a generation failure for reporting to the caller.
type Kind int

const (
	// KindInternal is any uncategorized failure.
	KindInternal Kind = iota
	// KindInvalidParams covers out-of-domain parameters and
	// structurally malformed source image bytes.
	KindInvalidParams
	// KindUnreachable is a DNS or connection failure against the
	// external face source.
	KindUnreachable
	// KindUpstream means the source was reachable but returned a
	// non-success status or an unreadable body.
	KindUpstream
	// KindNoSpace is a filesystem write failing on storage.
	KindNoSpace
	// KindFileConflict means the destination exists as an incompatible
	// entry.
	KindFileConflict
	// KindPathNotFound means the destination path is invalid even after
	// the create attempt.
	KindPathNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParams:
		return "invalid_params"
	case KindUnreachable:
		return "network_unreachable"
	case KindUpstream:
		return "upstream_failure"
	case KindNoSpace:
		return "no_space"
	case KindFileConflict:
		return "file_conflict"
	case KindPathNotFound:
		return "path_not_found"
	default:
		return "internal_error"
	}
}

// Error is the single failure type surfaced by a generation call. A
// failed call returns exactly one Error and no artifacts.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func invalidParams(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidParams, Err: fmt.Errorf(format, args...)}
}

// classify maps component failures onto the reportable taxonomy. Each
// component propagates a typed error; nothing here inspects error text.
func classify(err error) *Error {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr
	}

	var serr *source.Error
	if errors.As(err, &serr) {
		if serr.Reason == source.ReasonUnreachable {
			return &Error{Kind: KindUnreachable, Err: err}
		}
		// 404 and other non-success statuses mean the source was
		// reached but did not deliver an image.
		return &Error{Kind: KindUpstream, Err: err}
	}

	var merr *mask.Error
	if errors.As(err, &merr) {
		return &Error{Kind: KindInvalidParams, Err: err}
	}

	var werr *writer.Error
	if errors.As(err, &werr) {
		switch werr.Kind {
		case writer.KindNoSpace:
			return &Error{Kind: KindNoSpace, Err: err}
		case writer.KindConflict:
			return &Error{Kind: KindFileConflict, Err: err}
		case writer.KindNotFound:
			return &Error{Kind: KindPathNotFound, Err: err}
		}
	}

	return &Error{Kind: KindInternal, Err: err}
}
