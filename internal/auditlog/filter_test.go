package auditlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var filterFixtures = []Event{
	{BeneficiaryID: "B1", AidType: "food", Location: "Sousse", Timestamp: "2024-05-01T10:00:00Z", AnchorID: "0.0.1"},
	{BeneficiaryID: "B2", AidType: "Medicine", Location: "Tunis", Timestamp: "2024-05-01T12:30:00Z", AnchorID: "0.0.2"},
	{BeneficiaryID: "B3", AidType: "food", Location: "SOUSSE", Timestamp: "2024-05-02T09:00:00Z", AnchorID: "0.0.3"},
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	got := Filter{}.Apply(filterFixtures)
	assert.Equal(t, filterFixtures, got)
}

func TestFilterLocationCaseInsensitiveSubstring(t *testing.T) {
	got := Filter{Location: "sousse"}.Apply(filterFixtures)
	assert.Len(t, got, 2)
	assert.Equal(t, "B1", got[0].BeneficiaryID)
	assert.Equal(t, "B3", got[1].BeneficiaryID)
}

func TestFilterDatePrefix(t *testing.T) {
	got := Filter{Date: "2024-05-01"}.Apply(filterFixtures)
	assert.Len(t, got, 2)
	assert.Equal(t, "B1", got[0].BeneficiaryID)
	assert.Equal(t, "B2", got[1].BeneficiaryID)

	got = Filter{Date: "2024-05-02"}.Apply(filterFixtures)
	assert.Len(t, got, 1)
	assert.Equal(t, "B3", got[0].BeneficiaryID)
}

func TestFilterAidTypeCaseInsensitive(t *testing.T) {
	got := Filter{AidType: "medicine"}.Apply(filterFixtures)
	assert.Len(t, got, 1)
	assert.Equal(t, "B2", got[0].BeneficiaryID)
}

func TestFilterBeneficiarySubstring(t *testing.T) {
	got := Filter{BeneficiaryID: "b1"}.Apply(filterFixtures)
	assert.Len(t, got, 1)
	assert.Equal(t, "B1", got[0].BeneficiaryID)
}

func TestFilterPredicatesCombineWithAND(t *testing.T) {
	got := Filter{Location: "sousse", Date: "2024-05-01"}.Apply(filterFixtures)
	assert.Len(t, got, 1)
	assert.Equal(t, "B1", got[0].BeneficiaryID)
}

func TestFilterNoMatchReturnsEmptyNotNil(t *testing.T) {
	got := Filter{Location: "sfax"}.Apply(filterFixtures)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter{AidType: "food"}.Apply(filterFixtures)
	assert.Equal(t, []string{"B1", "B3"}, []string{got[0].BeneficiaryID, got[1].BeneficiaryID})
}
