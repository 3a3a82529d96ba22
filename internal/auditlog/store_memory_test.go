package auditlog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreAppendListRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	first := Event{
		BeneficiaryID: "B1",
		AidType:       "food",
		Location:      "Sousse",
		Timestamp:     "2024-05-01T10:00:00Z",
		AnchorID:      "0.0.101",
	}
	second := Event{
		BeneficiaryID: "B2",
		AidType:       "medicine",
		Location:      "Tunis",
		Timestamp:     "2024-05-02T09:00:00Z",
		AnchorID:      "0.0.102",
	}

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	events, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first, events[0])
	assert.Equal(t, second, events[1])
}

func TestInMemoryStoreListIsIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, Event{BeneficiaryID: "B1", AnchorID: "0.0.1"}))

	a, err := store.List(ctx)
	require.NoError(t, err)
	b, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInMemoryStoreListReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, Event{BeneficiaryID: "B1", AnchorID: "0.0.1"}))

	events, err := store.List(ctx)
	require.NoError(t, err)
	events[0].BeneficiaryID = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B1", again[0].BeneficiaryID)
}

func TestInMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			err := store.Append(ctx, Event{
				BeneficiaryID: fmt.Sprintf("B%d", n),
				AnchorID:      fmt.Sprintf("0.0.%d", n),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	events, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, goroutines)
}
