package handler

import (
	"strings"
	"testing"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&listPostsQuery{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}
	if err := v.Validate(&listPostsQuery{}); err != nil {
		t.Fatalf("zero values are defaults, got %v", err)
	}

	err := v.Validate(&listPostsQuery{Page: -1, Limit: 51})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "page debe ser al menos 1") || !strings.Contains(msg, "limit no puede ser mayor que 50") {
		t.Fatalf("unexpected message: %s", msg)
	}

	err = v.Validate(&siteModeRequest{})
	if err == nil || err.Error() != "underConstruction es obligatorio" {
		t.Fatalf("unexpected error: %v", err)
	}
}
