package state_test

import (
	"context"
	"testing"

	"cssb/state"
)

func TestEnvFromContext(t *testing.T) {
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	if env == nil {
		t.Fatal("expected environment in context")
	}
	if env.Uptime() < 0 {
		t.Error("uptime must not be negative")
	}
}

func TestEnvFromContext_PanicsWithoutEnv(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without environment")
		}
	}()
	state.EnvFromContext(context.Background())
}
