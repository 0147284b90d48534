package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/GolfFortune/internal/fallback"
	"github.com/leon37/GolfFortune/internal/model"
	"github.com/leon37/GolfFortune/internal/saju"
)

// countingAnalyzer 记录同时进行中的调用数
type countingAnalyzer struct {
	active, peak atomic.Int32
}

func (c *countingAnalyzer) Analyze(_ context.Context, p model.UserProfile) model.FortuneResult {
	n := c.active.Add(1)
	for {
		old := c.peak.Load()
		if n <= old || c.peak.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	c.active.Add(-1)

	traits, _ := saju.Derive(p.BirthDate, p.BirthTime, p.Handicap)
	return model.FortuneResult{Phase: "complete", Analysis: traits, Fortune: fallback.DefaultRecord(&p, &traits)}
}

func TestGenerateSampleUsers(t *testing.T) {
	svc := &countingAnalyzer{}
	out, err := generate(context.Background(), svc, sampleUsers(), 2)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "김골프님의 오늘 골프 운세", out["김골프"].Fortune.Title)
	assert.Equal(t, model.ElementWood, out["이파"].Analysis.Element)
	assert.Contains(t, out["이파"].Fortune.BettingFortune, fallback.TierSingle)
}

func TestGenerateRespectsLimit(t *testing.T) {
	users := make([]model.UserProfile, 8)
	for i := range users {
		users[i] = model.UserProfile{Name: string(rune('A' + i)), BirthDate: "2000-01-01"}
	}
	svc := &countingAnalyzer{}
	out, err := generate(context.Background(), svc, users, 3)
	require.NoError(t, err)
	assert.Len(t, out, 8)
	assert.LessOrEqual(t, svc.peak.Load(), int32(3))
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := generate(ctx, &countingAnalyzer{}, sampleUsers(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteJSONAndLoadUsers(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public", "fortunes.json")
	require.NoError(t, writeJSON(out, sampleUsers()))

	users, err := loadUsers(out)
	require.NoError(t, err)
	assert.Equal(t, sampleUsers(), users)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
