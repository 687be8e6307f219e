package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()

	a, err := Open(filepath.Join(t.TempDir(), "statements.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a
}

func TestStoreAndGet(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	ctx := context.Background()

	raw := []byte(`<FlexQueryResponse queryName="q" type="AF"/>`)
	downloaded := time.Date(2026, 8, 28, 10, 15, 0, 0, time.UTC)

	id, err := a.Store(ctx, Entry{
		QueryID:    "123456",
		AccountID:  "U1234567",
		FromDate:   "2026-01-01",
		ToDate:     "2026-06-30",
		Downloaded: downloaded,
		Raw:        raw,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := a.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "123456", got.QueryID)
	assert.Equal(t, "U1234567", got.AccountID)
	assert.Equal(t, "2026-01-01", got.FromDate)
	assert.Equal(t, raw, got.Raw)
	assert.True(t, got.Downloaded.Equal(downloaded))
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)

	_, err := a.Get(context.Background(), "no-such-id")
	assert.ErrorContains(t, err, "not found")
}

func TestListDownloadOrder(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := a.Store(ctx, Entry{QueryID: "q", AccountID: "U1", Raw: []byte("<x/>")})
		assert.NoError(t, err)
		ids = append(ids, id)
	}

	entries, err := a.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, ids[i], e.ID)
		assert.Nil(t, e.Raw)
	}
}

func TestStoreAssignsDefaults(t *testing.T) {
	t.Parallel()

	a := newTestArchive(t)

	id, err := a.Store(context.Background(), Entry{QueryID: "q", Raw: []byte("<x/>")})
	assert.NoError(t, err)

	got, err := a.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, got.Downloaded.IsZero())
}
