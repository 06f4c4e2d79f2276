package daemonrun_test

import (
	"context"
	"errors"
	"testing"

	"klogd/internal/daemonrun"
	"klogd/internal/testsupport"
)

func TestRunRequiresConfig(t *testing.T) {
	if err := daemonrun.Run(context.Background(), nil, daemonrun.Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := daemonrun.Run(ctx, cfg, daemonrun.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
