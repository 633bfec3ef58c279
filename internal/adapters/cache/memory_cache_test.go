package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
)

func entry(hash string, ttl time.Duration) *core.VerdictEntry {
	now := time.Now()
	return &core.VerdictEntry{
		ContentHash: hash,
		Verdict: core.RiskVerdict{
			Verdict:      "Safe",
			RiskScore:    3,
			Confidence:   0.95,
			Reasons:      []string{"Message classified as Safe with 0.95 confidence"},
			ProcessingID: "test-" + hash,
			AnalyzedAt:   now,
		},
		LastSeen:  now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), 0)
	defer c.Stop()
	ctx := context.Background()

	if _, err := c.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	stored := entry("abc", time.Hour)
	if err := c.Set(ctx, stored); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if got.Verdict.ProcessingID != stored.Verdict.ProcessingID {
		t.Errorf("verdict did not round-trip: %+v", got.Verdict)
	}

	// stored entries are isolated from later caller mutation
	stored.Verdict.RiskScore = 99
	again, err := c.Get(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if again.Verdict.RiskScore != 3 {
		t.Errorf("cache entry aliased caller memory, got score %d", again.Verdict.RiskScore)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), 0)
	defer c.Stop()
	ctx := context.Background()

	if err := c.Set(ctx, entry("stale", -time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(ctx, "stale"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired entry must be a miss, got %v", err)
	}

	// Cleanup drops it for real
	if err := c.Cleanup(ctx); err != nil {
		t.Fatal(err)
	}
	c.mu.RLock()
	_, stillThere := c.entries["stale"]
	c.mu.RUnlock()
	if stillThere {
		t.Error("cleanup should remove expired entries")
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), 0)
	defer c.Stop()
	ctx := context.Background()

	if err := c.Set(ctx, entry("gone", time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "gone"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted entry must be a miss, got %v", err)
	}
}
