package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

func TestAppendAndList(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.ScanRecord{ID: "a", FileName: "a.pdf"}))
	require.NoError(t, store.Append(ctx, domain.ScanRecord{ID: "b", FileName: "b.pdf"}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent first.
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
}

func TestAppendEvictsBeyondLimit(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	for i := 0; i < domain.HistoryLimit+10; i++ {
		rec := domain.ScanRecord{ID: fmt.Sprintf("scan-%d", i)}
		require.NoError(t, store.Append(ctx, rec))
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, domain.HistoryLimit)

	// The newest survives, the oldest ten are gone.
	assert.Equal(t, fmt.Sprintf("scan-%d", domain.HistoryLimit+9), records[0].ID)
	for _, rec := range records {
		assert.NotEqual(t, "scan-0", rec.ID)
	}
}

func TestGet(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.ScanRecord{ID: "a", FileName: "a.pdf"}))

	rec, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", rec.FileName)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClear(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domain.ScanRecord{ID: "a"}))
	require.NoError(t, store.Clear(ctx))

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
