package graph

import (
	"errors"
	"fmt"
)

// Operation names of the fixed catalog. Every failure raised by the query
// layer carries one of these for observability.
const (
	OpListIndustries      = "list_industries"
	OpSearchCompanies     = "search_companies"
	OpCompaniesInIndustry = "companies_in_industry"
	OpArticlesInMonth     = "articles_in_month"
	OpArticle             = "article"
	OpCompaniesInArticle  = "companies_in_articles"
	OpPeopleAtCompany     = "people_at_company"
)

// ErrorKind classifies a query failure for handling purposes.
type ErrorKind int

const (
	// KindInvalidArgument marks a missing, malformed or empty argument. The
	// caller must fix the argument; retrying is pointless.
	KindInvalidArgument ErrorKind = iota
	// KindNotFound marks a singular lookup whose subject does not exist.
	KindNotFound
	// KindUnknownOperation marks a dispatch request for a name outside the
	// fixed catalog. This is an integration bug, not a data condition.
	KindUnknownOperation
	// KindStoreUnavailable marks a failed or timed-out graph store call.
	// Every operation is read-only and idempotent, so blind retry is safe.
	KindStoreUnavailable
)

// String returns the machine-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindUnknownOperation:
		return "unknown_operation"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// QueryError is the single failure type surfaced by the query layer. Kind is
// always one of the four documented classes; Op is the operation name and
// Param the offending argument, when one exists.
type QueryError struct {
	Kind  ErrorKind
	Op    string
	Param string
	Msg   string
	Err   error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	prefix := e.Op
	if prefix == "" {
		prefix = "query"
	}
	if e.Param != "" {
		prefix = prefix + " " + e.Param
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, prefix, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, prefix, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, prefix)
}

// Unwrap returns the underlying error, if any.
func (e *QueryError) Unwrap() error {
	return e.Err
}

func invalidArgumentf(op, param, format string, args ...any) *QueryError {
	return &QueryError{
		Kind:  KindInvalidArgument,
		Op:    op,
		Param: param,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// NewNotFound returns the NotFound failure for a singular lookup.
func NewNotFound(op, param, value string) *QueryError {
	return &QueryError{
		Kind:  KindNotFound,
		Op:    op,
		Param: param,
		Msg:   fmt.Sprintf("no record with %s %q", param, value),
	}
}

// NewUnknownOperation returns the failure for a dispatch name outside the
// fixed catalog.
func NewUnknownOperation(name string) *QueryError {
	return &QueryError{
		Kind: KindUnknownOperation,
		Op:   name,
		Msg:  "operation is not in the catalog",
	}
}

// NewStoreUnavailable wraps a graph store connection or timeout failure.
func NewStoreUnavailable(op string, err error) *QueryError {
	return &QueryError{
		Kind: KindStoreUnavailable,
		Op:   op,
		Err:  err,
	}
}

// KindOf extracts the error kind from err. Errors that did not originate in
// the query layer report KindStoreUnavailable, the only class with an
// undefined cause.
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindStoreUnavailable
}

// IsInvalidArgument reports whether err is an argument-contract violation.
func IsInvalidArgument(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == KindInvalidArgument
}

// IsNotFound reports whether err is a missing singular record.
func IsNotFound(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == KindNotFound
}

// IsUnknownOperation reports whether err is a dispatch of an uncataloged name.
func IsUnknownOperation(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == KindUnknownOperation
}

// IsRetryable reports whether err may be retried safely. Only store failures
// qualify; all operations are read-only, so a retry can never double-apply.
func IsRetryable(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == KindStoreUnavailable
}
