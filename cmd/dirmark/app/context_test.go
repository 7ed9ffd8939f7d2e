package app

import (
	"context"
	"testing"
)

// TestContextWithSignals verifies the returned context honors manual
// cancellation and inherits from its parent.
func TestContextWithSignals(t *testing.T) {
	t.Run("cancel func stops the context", func(t *testing.T) {
		ctx, cancel := ContextWithSignals(context.Background())
		if ctx.Err() != nil {
			t.Fatalf("context cancelled prematurely: %v", ctx.Err())
		}

		cancel()
		<-ctx.Done()

		if ctx.Err() != context.Canceled {
			t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		parent, parentCancel := context.WithCancel(context.Background())
		ctx, cancel := ContextWithSignals(parent)
		defer cancel()

		parentCancel()
		<-ctx.Done()

		if ctx.Err() == nil {
			t.Error("child context not cancelled with parent")
		}
	})
}
