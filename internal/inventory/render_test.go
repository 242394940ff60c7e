package inventory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func TestRenderItemsEmpty(t *testing.T) {
	var b strings.Builder
	New().RenderItems(&b)

	out := b.String()
	assert.Contains(t, out, "=== Items in Storage ===")
	assert.Contains(t, out, "No items in storage.")
}

func TestRenderItems(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddItem(types.NewPosition(1, 4), testBook(1000, "Dune")))
	require.NoError(t, inv.AddItem(types.NewPosition(0, 2), types.Magazine{
		ItemInfo: types.ItemInfo{ID: 1001, Name: "Nature", Description: "weekly"},
		Edition:  "June 2025",
		Title:    "Shelving at Scale",
	}))

	var b strings.Builder
	inv.RenderItems(&b)
	out := b.String()

	assert.Contains(t, out, "Shelf: 0, Compartment: 2")
	assert.Contains(t, out, "Edition: June 2025")
	assert.Contains(t, out, "Shelf: 1, Compartment: 4")
	assert.Contains(t, out, "Title: Dune")

	// Grid order: the magazine on shelf 0 lists before the book on shelf 1.
	assert.Less(t,
		strings.Index(out, "ID: 1001"),
		strings.Index(out, "ID: 1000"))
}

func TestRenderLoansEmpty(t *testing.T) {
	var b strings.Builder
	New().RenderLoans(&b)

	out := b.String()
	assert.Contains(t, out, "=== Checked Out Items ===")
	assert.Contains(t, out, "No items are currently checked out.")
}

func TestRenderLoans(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	inv := New(WithClock(fixedClock(now)))
	require.NoError(t, inv.AddItem(types.NewPosition(2, 7), testBook(1000, "Dune")))
	_, err := inv.CheckoutItem(1000, "Alice")
	require.NoError(t, err)

	var b strings.Builder
	inv.RenderLoans(&b)
	out := b.String()

	assert.Contains(t, out, "Item ID: 1000")
	assert.Contains(t, out, "Checked out by: Alice")
	assert.Contains(t, out, "Due date: 2025-07-01")
	assert.Contains(t, out, "Original position: shelf 2, compartment 7")
	assert.Contains(t, out, "------------------------")
}
