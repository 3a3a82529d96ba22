package auditlog

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestCanonicalForm(t *testing.T) {
	// Pins the canonical serialization: compact JSON, fields in submission
	// order, no HTML escaping.
	want := sha256.Sum256([]byte(`{"beneficiaryId":"B1","aidType":"food","location":"Sousse","timestamp":"2024-05-01T10:00:00Z"}`))

	got := Digest("B1", "food", "Sousse", "2024-05-01T10:00:00Z")
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestDigestDeterministic(t *testing.T) {
	a := Digest("B1", "food", "Sousse", "2024-05-01T10:00:00Z")
	b := Digest("B1", "food", "Sousse", "2024-05-01T10:00:00Z")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestDigestChangesWithAnyField(t *testing.T) {
	base := Digest("B1", "food", "Sousse", "2024-05-01T10:00:00Z")

	assert.NotEqual(t, base, Digest("B2", "food", "Sousse", "2024-05-01T10:00:00Z"))
	assert.NotEqual(t, base, Digest("B1", "medicine", "Sousse", "2024-05-01T10:00:00Z"))
	assert.NotEqual(t, base, Digest("B1", "food", "Tunis", "2024-05-01T10:00:00Z"))
	assert.NotEqual(t, base, Digest("B1", "food", "Sousse", "2024-05-01T10:00:01Z"))
}

func TestDigestDoesNotEscapeHTMLCharacters(t *testing.T) {
	want := sha256.Sum256([]byte(`{"beneficiaryId":"a&b","aidType":"<food>","location":"Sousse","timestamp":"2024-05-01T10:00:00Z"}`))

	got := Digest("a&b", "<food>", "Sousse", "2024-05-01T10:00:00Z")
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestDigestFieldOrderMatters(t *testing.T) {
	// Swapping two field values must not collide: position is part of the
	// canonical form.
	assert.NotEqual(t,
		Digest("food", "B1", "Sousse", "2024-05-01T10:00:00Z"),
		Digest("B1", "food", "Sousse", "2024-05-01T10:00:00Z"),
	)
}
