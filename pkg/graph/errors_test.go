package graph

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindInvalidArgument, "invalid_argument"},
		{KindNotFound, "not_found"},
		{KindUnknownOperation, "unknown_operation"},
		{KindStoreUnavailable, "store_unavailable"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("unexpected kind name: got %q, want %q", got, tt.want)
		}
	}
}

func TestQueryErrorSurvivesWrapping(t *testing.T) {
	base := NewNotFound(OpArticle, "article_id", "a-9")
	wrapped := fmt.Errorf("lookup failed: %w", base)

	var qe *QueryError
	if !errors.As(wrapped, &qe) {
		t.Fatal("QueryError lost through wrapping")
	}
	if qe.Kind != KindNotFound || qe.Op != OpArticle || qe.Param != "article_id" {
		t.Fatalf("unexpected fields after unwrap: %+v", qe)
	}
	if !IsNotFound(wrapped) {
		t.Fatal("IsNotFound should see through wrapping")
	}
}

func TestKindPredicates(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name      string
		err       error
		invalid   bool
		notFound  bool
		unknown   bool
		retryable bool
	}{
		{
			name:    "invalid argument",
			err:     invalidArgumentf(OpSearchCompanies, "query", "empty"),
			invalid: true,
		},
		{
			name:     "not found",
			err:      NewNotFound(OpArticle, "article_id", "x"),
			notFound: true,
		},
		{
			name:    "unknown operation",
			err:     NewUnknownOperation("drop_graph"),
			unknown: true,
		},
		{
			name:      "store unavailable",
			err:       NewStoreUnavailable(OpListIndustries, cause),
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidArgument(tt.err); got != tt.invalid {
				t.Fatalf("IsInvalidArgument: got %v, want %v", got, tt.invalid)
			}
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Fatalf("IsNotFound: got %v, want %v", got, tt.notFound)
			}
			if got := IsUnknownOperation(tt.err); got != tt.unknown {
				t.Fatalf("IsUnknownOperation: got %v, want %v", got, tt.unknown)
			}
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Fatalf("IsRetryable: got %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestStoreUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewStoreUnavailable(OpSearchCompanies, cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}
	if KindOf(err) != KindStoreUnavailable {
		t.Fatalf("unexpected kind: %v", KindOf(err))
	}
}

func TestKindOfForeignError(t *testing.T) {
	// Anything that did not originate in the query layer is a store failure,
	// the only kind whose cause is not under our control.
	if got := KindOf(errors.New("boom")); got != KindStoreUnavailable {
		t.Fatalf("unexpected kind for foreign error: %v", got)
	}
}
