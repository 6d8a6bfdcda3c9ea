package services_test

import (
	"testing"

	"ecoshare/internal/models"
	"ecoshare/internal/services"
	"ecoshare/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poster() *models.UserAccount {
	return &models.UserAccount{
		Username: "Alice",
		Contact:  "+91 111 22222",
	}
}

func TestFeedService_InitializeSeedsOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	feed := services.NewFeedService(store)

	first, err := feed.Initialize()
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Surplus Dosa Batter", first[0].ItemName)
	assert.Equal(t, "Old Study Lamp", first[1].ItemName)

	// A second call without any AddListing yields the identical sequence.
	second, err := feed.Initialize()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// So does a fresh service over the same store.
	again, err := services.NewFeedService(store).Initialize()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestFeedService_AddListingPrices(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		itemName   string
		descriptor string
		wantPrice  string
	}{
		{"cloth is always free", models.CategoryCloth, "Jacket", "For Free", "FREE"},
		{"free product", models.CategoryProduct, "Lamp", "For Free", "FREE"},
		{"rented product", models.CategoryProduct, "Lamp", "Rent", "See Listing"},
		{"discounted food", models.CategoryFood, "Dosa", "Quarter Price", "Quarter Price"},
		{"half price food", models.CategoryFood, "Idli", "Half Price", "Half Price"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			feed := services.NewFeedService(storage.NewMemoryStore())
			listing, err := feed.AddListing(tc.category, tc.itemName, tc.descriptor, poster())
			require.NoError(t, err)
			assert.Equal(t, tc.wantPrice, listing.Price)
			assert.Equal(t, tc.category, listing.Type)
			assert.Equal(t, tc.descriptor, listing.ListingType)
			assert.Equal(t, "Alice", listing.User)
			assert.Equal(t, "+91 111 22222", listing.Contact)
		})
	}
}

func TestFeedService_AddListingValidation(t *testing.T) {
	feed := services.NewFeedService(storage.NewMemoryStore())

	_, err := feed.AddListing(models.CategoryCloth, "", "For Free", poster())
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = feed.AddListing("Vehicle", "Bike", "For Free", poster())
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestFeedService_NewestFirstOrdering(t *testing.T) {
	store := storage.NewMemoryStore()
	feed := services.NewFeedService(store)

	a, err := feed.AddListing(models.CategoryCloth, "Coat", "For Free", poster())
	require.NoError(t, err)
	b, err := feed.AddListing(models.CategoryFood, "Dosa", "Half Price", poster())
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID, "ids must be increasing")

	// Both resolve by id, and the sequence begins with the newest.
	gotA, err := feed.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coat", gotA.ItemName)
	gotB, err := feed.FindByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dosa", gotB.ItemName)

	items, err := feed.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, b.ID, items[0].ID)

	// Ordering is preserved across a reload from the store.
	reloaded, err := services.NewFeedService(store).Items()
	require.NoError(t, err)
	assert.Equal(t, items, reloaded)
}

func TestFeedService_FindByIDAbsent(t *testing.T) {
	feed := services.NewFeedService(storage.NewMemoryStore())
	_, err := feed.FindByID(42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFeedService_ReadThroughSeesExternalWrites(t *testing.T) {
	store := storage.NewMemoryStore()
	feed := services.NewFeedService(store)
	_, err := feed.Initialize()
	require.NoError(t, err)

	// Another party writes to the same store behind this service's back.
	other := services.NewFeedService(store)
	listing, err := other.AddListing(models.CategoryProduct, "Bicycle", "Rent", poster())
	require.NoError(t, err)

	items, err := feed.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, listing.ID, items[0].ID)
}

func TestStreakAwardFor(t *testing.T) {
	tests := []struct {
		category   string
		descriptor string
		want       int
	}{
		{models.CategoryCloth, "For Free", 5},
		{models.CategoryCloth, "", 5},
		{models.CategoryProduct, "For Free", 5},
		{models.CategoryProduct, "Rent", 0},
		{models.CategoryFood, "Half Price", 5},
		{models.CategoryFood, "Quarter Price", 5},
		{models.CategoryFood, "10% Off", 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, services.StreakAwardFor(tc.category, tc.descriptor),
			"category %s descriptor %q", tc.category, tc.descriptor)
	}
}
