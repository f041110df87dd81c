// internal/records/memory_test.go
package records

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-assistant/internal/models"
)

func TestMemoryStoreFindByNumber(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rec, err := store.FindByNumber(ctx, "001/2024")
	require.NoError(t, err)
	assert.Equal(t, "FIR/001/2024", rec.CaseNumber)
	assert.Equal(t, models.CaseStatusUnderInvestigation, rec.Status)
	assert.Equal(t, "SI Ramesh Kumar", rec.OfficerName)

	// Full number and case-insensitive partials resolve too.
	rec, err = store.FindByNumber(ctx, "fir/002/2024")
	require.NoError(t, err)
	assert.Equal(t, "FIR/002/2024", rec.CaseNumber)

	_, err = store.FindByNumber(ctx, "999/1999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreVerifyAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ok, err := store.VerifyAccess(ctx, "001/2024", "9876543210")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.VerifyAccess(ctx, "001/2024", "0000000000")
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown case verifies as false, not as an error.
	ok, err = store.VerifyAccess(ctx, "999/1999", "9876543210")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreStatsByLocation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	stats, err := store.StatsByLocation(ctx, "guntur")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Theft", stats[0].CrimeType)
	assert.Equal(t, 5, stats[0].Count)

	stats, err = store.StatsByLocation(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestMemoryStoreSearch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	hits, err := store.Search(ctx, "fraud")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "FIR/002/2024", hits[0].CaseNumber)

	hits, err = store.Search(ctx, "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestMemoryStoreComplaints(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	rec, err := store.Create(ctx, models.ComplaintTheft, "cycle stolen", "Guntur", "9876543210")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.ID, "COMP/AP/"))
	assert.Equal(t, models.ComplaintOpen, rec.Status)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestComplaintIDsAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec, err := store.Create(ctx, models.ComplaintOther, "d", "l", "c")
		require.NoError(t, err)
		assert.False(t, seen[rec.ID])
		seen[rec.ID] = true
	}
}
