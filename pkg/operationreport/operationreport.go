// Package operationreport collects the errors found while loading and validating GraphQL documents.
package operationreport

import (
	"errors"
	"fmt"
	"strings"
)

type Report struct {
	InternalErrors []error
	ExternalErrors []ExternalError
}

func (r Report) Error() string {
	lines := make([]string, 0, len(r.InternalErrors)+len(r.ExternalErrors))
	for i := range r.InternalErrors {
		lines = append(lines, fmt.Sprintf("internal: %s", r.InternalErrors[i].Error()))
	}
	for i := range r.ExternalErrors {
		lines = append(lines, "external: "+r.ExternalErrors[i].Error())
	}
	return strings.Join(lines, "\n")
}

func (r *Report) HasErrors() bool {
	return len(r.InternalErrors) > 0 || len(r.ExternalErrors) > 0
}

func (r *Report) Reset() {
	r.InternalErrors = r.InternalErrors[:0]
	r.ExternalErrors = r.ExternalErrors[:0]
}

func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, err)
}

func (r *Report) AddExternalError(gqlError ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, gqlError)
}

// AddError sorts err into the report. GraphQL errors become external errors,
// everything else is internal.
func (r *Report) AddError(err error) {
	if err == nil {
		return
	}
	if external, ok := externalErrors(err); ok {
		r.ExternalErrors = append(r.ExternalErrors, external...)
		return
	}
	r.AddInternalError(err)
}

type FormatExternalErrorMessage func(report *Report) string

func ExternalErrorMessage(err error, formatFunction FormatExternalErrorMessage) (message string, ok bool) {
	var report Report
	if errors.As(err, &report) {
		msg := formatFunction(&report)
		return msg, true
	}
	return "", false
}

func UnwrappedErrorMessage(err error) string {
	for result := err; result != nil; result = errors.Unwrap(result) {
		err = result
	}
	return err.Error()
}
