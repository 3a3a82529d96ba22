package ledger

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// HederaConfig selects the network and operator account used for anchoring.
type HederaConfig struct {
	Network     string // "testnet" or "mainnet"
	OperatorID  string // e.g. "0.0.12345"
	OperatorKey string // DER-encoded private key
}

// HederaLedger anchors fingerprints by creating a file on the Hedera file
// service holding the fingerprint as its contents. The receipt's file id is
// the anchor id.
type HederaLedger struct {
	client *hedera.Client
	maxFee hedera.Hbar
}

// NewHedera builds a client for the configured network and operator.
func NewHedera(cfg HederaConfig) (*HederaLedger, error) {
	var client *hedera.Client
	switch cfg.Network {
	case "mainnet":
		client = hedera.ClientForMainnet()
	case "", "testnet":
		client = hedera.ClientForTestnet()
	default:
		return nil, fmt.Errorf("ledger: unknown hedera network %q", cfg.Network)
	}

	operatorID, err := hedera.AccountIDFromString(cfg.OperatorID)
	if err != nil {
		return nil, fmt.Errorf("ledger: parse operator id: %w", err)
	}
	operatorKey, err := hedera.PrivateKeyFromString(cfg.OperatorKey)
	if err != nil {
		return nil, fmt.Errorf("ledger: parse operator key: %w", err)
	}
	client.SetOperator(operatorID, operatorKey)

	return &HederaLedger{
		client: client,
		maxFee: hedera.NewHbar(1),
	}, nil
}

func (h *HederaLedger) Anchor(_ context.Context, fingerprint string) (string, error) {
	resp, err := hedera.NewFileCreateTransaction().
		SetKeys(h.client.GetOperatorPublicKey()).
		SetContents([]byte(fingerprint)).
		SetMaxTransactionFee(h.maxFee).
		Execute(h.client)
	if err != nil {
		return "", fmt.Errorf("ledger: file create: %w", err)
	}

	receipt, err := resp.GetReceipt(h.client)
	if err != nil {
		return "", fmt.Errorf("ledger: receipt: %w", err)
	}
	if receipt.FileID == nil {
		return "", fmt.Errorf("ledger: receipt missing file id")
	}
	return receipt.FileID.String(), nil
}

// Close releases the underlying network client.
func (h *HederaLedger) Close() error {
	return h.client.Close()
}
