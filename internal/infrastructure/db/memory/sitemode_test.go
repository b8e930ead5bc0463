package memory

import (
	"context"
	"testing"
)

func TestSiteModeStore(t *testing.T) {
	ctx := context.Background()
	s := NewSiteModeStore(true)

	if on, _ := s.UnderConstruction(ctx); !on {
		t.Fatalf("expected initial value true")
	}
	if err := s.SetUnderConstruction(ctx, false); err != nil {
		t.Fatalf("SetUnderConstruction returned error: %v", err)
	}
	if on, _ := s.UnderConstruction(ctx); on {
		t.Fatalf("expected false after toggle")
	}
}
