package goAccount

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMetricsCountFlows(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	result := mustCreateAccount(t, engine, "alice@example.com", "Alice", "correct-horse")

	link, err := engine.IssueSignupLink(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("IssueSignupLink failed: %v", err)
	}
	if _, err := engine.CreateAccount(ctx, CreateAccountRequest{
		Email:             link.Email,
		Token:             link.Token,
		RequestedName:     "Alice Again",
		RequestedPassword: "correct-horse",
	}); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if _, err := engine.IssueResetLink(ctx, result.UserID); err != nil {
		t.Fatalf("IssueResetLink failed: %v", err)
	}
	if _, err := engine.IssueResetLink(ctx, 404); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	snap := engine.MetricsSnapshot()
	checks := map[MetricID]uint64{
		MetricSignupLinkIssued:         2,
		MetricAccountCreationSuccess:   1,
		MetricAccountCreationDuplicate: 1,
		MetricResetLinkIssued:          1,
		MetricAccountNotFound:          1,
	}
	for id, want := range checks {
		if got := snap.Counters[id]; got != want {
			t.Fatalf("metric %d = %d, want %d", id, got, want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	engine, err := New().WithSecret(testSecret).WithMetricsEnabled(false).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := engine.IssueSignupLink(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("IssueSignupLink failed: %v", err)
	}

	snap := engine.MetricsSnapshot()
	for id, count := range snap.Counters {
		if count != 0 {
			t.Fatalf("disabled metrics must stay zero, metric %d = %d", id, count)
		}
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Inc(MetricSignupLinkIssued)
			}
		}()
	}
	wg.Wait()

	if got := m.Get(MetricSignupLinkIssued); got != 8000 {
		t.Fatalf("counter = %d, want 8000", got)
	}
}

func TestMetricsNilAndOutOfRange(t *testing.T) {
	var m *Metrics
	m.Inc(MetricSignupLinkIssued) // must not panic
	if m.Get(MetricSignupLinkIssued) != 0 {
		t.Fatal("nil metrics reads zero")
	}

	live := NewMetrics(MetricsConfig{Enabled: true})
	live.Inc(metricIDCount + 1) // out of range, ignored
	if live.Get(metricIDCount + 1) != 0 {
		t.Fatal("out-of-range metric reads zero")
	}
}
