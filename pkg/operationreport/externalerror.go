package operationreport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

type Location struct {
	Line   uint32
	Column uint32
}

// ExternalError is a problem with a document supplied by the user.
type ExternalError struct {
	Message   string
	File      string
	Rule      string
	Locations []Location
}

func (e ExternalError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		if len(e.Locations) != 0 {
			fmt.Fprintf(&b, ":%d:%d", e.Locations[0].Line, e.Locations[0].Column)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Rule != "" {
		b.WriteString(" (")
		b.WriteString(e.Rule)
		b.WriteString(")")
	}
	return b.String()
}

// ErrFromGQLError converts an error reported by gqlparser.
func ErrFromGQLError(err *gqlerror.Error) ExternalError {
	external := ExternalError{
		Message: err.Message,
		Rule:    err.Rule,
	}
	if err.Err != nil && external.Message == "" {
		external.Message = err.Err.Error()
	}
	if source, ok := err.Extensions["file"].(string); ok {
		external.File = source
	}
	for _, location := range err.Locations {
		external.Locations = append(external.Locations, Location{
			Line:   uint32(location.Line),
			Column: uint32(location.Column),
		})
	}
	return external
}

func externalErrors(err error) ([]ExternalError, bool) {
	var list gqlerror.List
	if errors.As(err, &list) {
		out := make([]ExternalError, 0, len(list))
		for _, gqlErr := range list {
			out = append(out, ErrFromGQLError(gqlErr))
		}
		return out, true
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return []ExternalError{ErrFromGQLError(gqlErr)}, true
	}
	return nil, false
}
