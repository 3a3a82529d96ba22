package auditlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreAppendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aidlog.jsonl")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)

	first := Event{
		BeneficiaryID: "B1",
		AidType:       "food",
		Location:      "Sousse",
		Timestamp:     "2024-05-01T10:00:00Z",
		AnchorID:      "0.0.101",
	}
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	events, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, first, events[0])
}

func TestFileStorePreservesAppendOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aidlog.jsonl")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	ids := []string{"B1", "B2", "B3"}
	for i, id := range ids {
		require.NoError(t, store.Append(ctx, Event{
			BeneficiaryID: id,
			AnchorID:      fmt.Sprintf("0.0.%d", i+1),
		}))
	}

	events, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, id := range ids {
		assert.Equal(t, id, events[i].BeneficiaryID)
	}
}

func TestFileStoreEmptyWhenNoPriorState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh", "aidlog.jsonl")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	events, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFileStoreCorruptRecordSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aidlog.jsonl")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(ctx, Event{BeneficiaryID: "B1", AnchorID: "0.0.1"}))

	// Simulate a torn write from a previous process.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"beneficiaryId":"B2","aid`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = store.List(ctx)
	assert.ErrorContains(t, err, "corrupt record")
}

func TestFileStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
