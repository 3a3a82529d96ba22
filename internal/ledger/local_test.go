package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidproof/pkg/platform/sentinel"
)

func TestLocalLedgerSequentialIDs(t *testing.T) {
	l, err := NewLocalLedger("")
	require.NoError(t, err)
	ctx := context.Background()

	first, err := l.Anchor(ctx, "aaaa")
	require.NoError(t, err)
	second, err := l.Anchor(ctx, "bbbb")
	require.NoError(t, err)

	assert.Equal(t, "0.0.1", first)
	assert.Equal(t, "0.0.2", second)
}

func TestLocalLedgerLookup(t *testing.T) {
	l, err := NewLocalLedger("")
	require.NoError(t, err)
	ctx := context.Background()

	id, err := l.Anchor(ctx, "cafe")
	require.NoError(t, err)

	fp, err := l.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cafe", fp)

	_, err = l.Lookup(ctx, "0.0.999")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestLocalLedgerResumesSequenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	l, err := NewLocalLedger(dir)
	require.NoError(t, err)
	_, err = l.Anchor(ctx, "aaaa")
	require.NoError(t, err)
	_, err = l.Anchor(ctx, "bbbb")
	require.NoError(t, err)

	reopened, err := NewLocalLedger(dir)
	require.NoError(t, err)

	id, err := reopened.Anchor(ctx, "cccc")
	require.NoError(t, err)
	assert.Equal(t, "0.0.3", id)

	// Receipts written by the first instance are readable from disk.
	fp, err := reopened.Lookup(ctx, "0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "aaaa", fp)
}
