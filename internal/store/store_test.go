package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() pipeline.Result {
	return pipeline.Result{
		Health: []domain.HealthImpact{
			{EventType: "TORNADO", Fatalities: 1152, Injuries: 13838, TotalAffected: 14990},
		},
		Economy: []domain.EconomicImpact{
			{EventType: "FLOOD", PropertyDamage: 132e9, CropDamage: 4.7e9, TotalDamage: 136.7e9},
			{EventType: "DROUGHT", PropertyDamage: 0.4e9, CropDamage: 7.5e9, TotalDamage: 7.9e9},
		},
		RowsRead:    100,
		RowsKept:    60,
		StartYear:   2001,
		GeneratedAt: time.Date(2011, 12, 5, 9, 30, 0, 0, time.UTC),
	}
}

func TestSaveRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	runID, err := s.SaveRun(ctx, sampleResult())
	require.NoError(t, err)
	assert.Positive(t, runID)

	n, err := s.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var generatedAt string
	var rowsRead, startYear int
	err = s.db.QueryRowContext(ctx,
		`SELECT generated_at, rows_read, start_year FROM runs WHERE id = ?`, runID,
	).Scan(&generatedAt, &rowsRead, &startYear)
	require.NoError(t, err)
	assert.Equal(t, "2011-12-05T09:30:00Z", generatedAt)
	assert.Equal(t, 100, rowsRead)
	assert.Equal(t, 2001, startYear)

	var impacts int
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM run_impacts WHERE run_id = ?`, runID,
	).Scan(&impacts)
	require.NoError(t, err)
	assert.Equal(t, 3, impacts)

	var eventType string
	var total float64
	err = s.db.QueryRowContext(ctx,
		`SELECT event_type, total FROM run_impacts WHERE run_id = ? AND view = 'economy' AND rank = 1`, runID,
	).Scan(&eventType, &total)
	require.NoError(t, err)
	assert.Equal(t, "FLOOD", eventType)
	assert.Equal(t, 136.7e9, total)
}

func TestSaveRun_MultipleRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.SaveRun(ctx, sampleResult())
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, sampleResult())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	n, err := s.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s1, err := Open(path)
	require.NoError(t, err)
	_, err = s1.SaveRun(context.Background(), sampleResult())
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.RunCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
