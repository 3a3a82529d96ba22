package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"aidproof/pkg/platform/sentinel"
)

// localReceipt is what the local ledger persists per anchored fingerprint.
type localReceipt struct {
	AnchorID    string    `json:"anchorId"`
	Fingerprint string    `json:"fingerprint"`
	TxID        string    `json:"txId"`
	AnchoredAt  time.Time `json:"anchoredAt"`
}

// LocalLedger is a file-backed stand-in for the real ledger, used in dev and
// tests. Receipts use the same shape of id the Hedera file service returns
// ("0.0.<n>"), assigned sequentially. With an empty dir it runs memory-only.
type LocalLedger struct {
	mu       sync.Mutex
	dir      string
	seq      uint64
	receipts map[string]localReceipt // anchorID -> receipt
}

// NewLocalLedger opens dir (created if missing) and resumes the sequence from
// any receipts already on disk.
func NewLocalLedger(dir string) (*LocalLedger, error) {
	l := &LocalLedger{dir: dir, receipts: make(map[string]localReceipt)}
	if dir == "" {
		return l, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ledger: create local ledger dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ledger: read local ledger dir: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSuffix(name, ".json"), 10, 64)
		if err != nil {
			continue
		}
		if n > l.seq {
			l.seq = n
		}
	}
	return l, nil
}

func (l *LocalLedger) Anchor(_ context.Context, fingerprint string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	receipt := localReceipt{
		AnchorID:    fmt.Sprintf("0.0.%d", l.seq),
		Fingerprint: fingerprint,
		TxID:        uuid.NewString(),
		AnchoredAt:  time.Now().UTC(),
	}

	if l.dir != "" {
		data, err := json.MarshalIndent(receipt, "", "  ")
		if err != nil {
			l.seq--
			return "", fmt.Errorf("ledger: marshal receipt: %w", err)
		}
		path := filepath.Join(l.dir, fmt.Sprintf("%d.json", l.seq))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			l.seq--
			return "", fmt.Errorf("ledger: write receipt: %w", err)
		}
	}

	l.receipts[receipt.AnchorID] = receipt
	return receipt.AnchorID, nil
}

// Lookup returns the fingerprint anchored under anchorID, checking memory
// first and falling back to disk.
func (l *LocalLedger) Lookup(_ context.Context, anchorID string) (string, error) {
	l.mu.Lock()
	if receipt, ok := l.receipts[anchorID]; ok {
		l.mu.Unlock()
		return receipt.Fingerprint, nil
	}
	l.mu.Unlock()

	if l.dir == "" {
		return "", sentinel.ErrNotFound
	}
	seq, ok := strings.CutPrefix(anchorID, "0.0.")
	if !ok {
		return "", sentinel.ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(l.dir, seq+".json"))
	if err != nil {
		return "", sentinel.ErrNotFound
	}
	var receipt localReceipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return "", fmt.Errorf("ledger: corrupt receipt %s: %w", anchorID, err)
	}
	l.mu.Lock()
	l.receipts[anchorID] = receipt
	l.mu.Unlock()
	return receipt.Fingerprint, nil
}
