package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{ValidationFailed, http.StatusBadRequest},
		{Unauthenticated, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{DuplicateAction, http.StatusBadRequest},
		{SelfReferenceNotAllowed, http.StatusBadRequest},
		{DatabaseError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.kind.Status(); got != tt.want {
			t.Errorf("%s.Status() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != DatabaseError {
		t.Fatalf("KindOf = %s, want %s", got, DatabaseError)
	}
	if got := MessageOf(errors.New("boom")); got != "internal database error" {
		t.Fatalf("MessageOf = %q", got)
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("like: %w", Duplicate("already liked"))
	if got := KindOf(err); got != DuplicateAction {
		t.Fatalf("KindOf = %s, want %s", got, DuplicateAction)
	}
	if got := MessageOf(err); got != "already liked" {
		t.Fatalf("MessageOf = %q, want %q", got, "already liked")
	}
	if !errors.Is(err, New(DuplicateAction, "")) {
		t.Fatal("errors.Is should match on kind")
	}
	if errors.Is(err, New(NotFound, "")) {
		t.Fatal("errors.Is should not match a different kind")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Database("failed to create like", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable with errors.Is")
	}
	if err.Kind.Code() != "DATABASE_ERROR" {
		t.Fatalf("Code = %q", err.Kind.Code())
	}
}
