package services

import (
	"fmt"
	"time"

	"ecoshare/internal/models"
	"ecoshare/internal/storage"
)

// Descriptor values with a meaning of their own in the pricing and streak rules.
const (
	ListingForFree      = "For Free"
	ListingHalfPrice    = "Half Price"
	ListingQuarterPrice = "Quarter Price"
)

// StreaksPerListing is awarded for sharing clothing, a free product, or food
// at half or quarter price.
const StreaksPerListing = 5

// FeedService owns the ordered community feed. Listings are kept newest-first
// and persisted as a whole under a single key. Reads for display go through
// Items, which always reloads from the store first so writes made by another
// party against the same store are picked up (read-through policy).
type FeedService struct {
	store  storage.Store
	items  []models.SharedListing
	lastID int64
}

// NewFeedService creates a new FeedService.
func NewFeedService(store storage.Store) *FeedService {
	return &FeedService{store: store}
}

// Initialize loads the persisted feed, seeding it with the two built-in
// example listings when the store is empty. Calling it again without an
// intervening AddListing yields the identical sequence.
func (f *FeedService) Initialize() ([]models.SharedListing, error) {
	if err := f.reload(); err != nil {
		return nil, err
	}
	if len(f.items) > 0 {
		return f.snapshot(), nil
	}

	f.items = seedListings()
	if err := f.persist(); err != nil {
		return nil, err
	}
	return f.snapshot(), nil
}

// AddListing creates a new listing on behalf of user, prepends it to the feed
// and persists the whole sequence. The item name is required; the category
// must be Food, Product or Cloth. The display price follows the category:
// clothing is always FREE, products are FREE only when listed "For Free", and
// food carries its discount label verbatim.
func (f *FeedService) AddListing(category, itemName, descriptor string, user *models.UserAccount) (*models.SharedListing, error) {
	if itemName == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}

	if err := f.reload(); err != nil {
		return nil, err
	}

	listing := models.SharedListing{
		ID:           f.nextID(),
		Type:         category,
		ItemName:     itemName,
		ListingType:  descriptor,
		DiscountType: descriptor,
		User:         user.Username,
		Contact:      user.Contact,
		Price:        priceFor(category, descriptor),
	}

	f.items = append([]models.SharedListing{listing}, f.items...)
	if err := f.persist(); err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindByID returns the listing with the given id, or ErrNotFound.
func (f *FeedService) FindByID(id int64) (*models.SharedListing, error) {
	if err := f.reload(); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			listing := f.items[i]
			return &listing, nil
		}
	}
	return nil, fmt.Errorf("%w: listing %d", ErrNotFound, id)
}

// Items returns the current feed, newest first, reloading it from the store
// before every read.
func (f *FeedService) Items() ([]models.SharedListing, error) {
	if err := f.reload(); err != nil {
		return nil, err
	}
	return f.snapshot(), nil
}

// StreakAwardFor returns the streaks earned for posting a listing: 5 for
// clothing, a product given away for free, or food at half or quarter price;
// 0 for everything else.
func StreakAwardFor(category, descriptor string) int {
	if category == models.CategoryCloth {
		return StreaksPerListing
	}
	switch descriptor {
	case ListingForFree, ListingHalfPrice, ListingQuarterPrice:
		return StreaksPerListing
	}
	return 0
}

// priceFor derives the display price from category and descriptor.
func priceFor(category, descriptor string) string {
	switch category {
	case models.CategoryCloth:
		return "FREE"
	case models.CategoryProduct:
		if descriptor == ListingForFree {
			return "FREE"
		}
		return "See Listing"
	default: // Food carries its discount label as the price
		return descriptor
	}
}

// nextID returns a timestamp-derived id, forced strictly above the last one
// handed out so ids stay unique and increasing within a session.
func (f *FeedService) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= f.lastID {
		id = f.lastID + 1
	}
	f.lastID = id
	return id
}

// reload replaces the cached sequence with the persisted one.
func (f *FeedService) reload() error {
	var items []models.SharedListing
	if _, err := f.store.Get(storage.KeySharedItems, &items); err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}
	f.items = items
	for _, item := range items {
		if item.ID > f.lastID {
			f.lastID = item.ID
		}
	}
	return nil
}

// persist writes the whole sequence back to the store.
func (f *FeedService) persist() error {
	if err := f.store.Set(storage.KeySharedItems, f.items); err != nil {
		return fmt.Errorf("failed to persist feed: %w", err)
	}
	return nil
}

// snapshot returns a copy of the cached sequence.
func (f *FeedService) snapshot() []models.SharedListing {
	out := make([]models.SharedListing, len(f.items))
	copy(out, f.items)
	return out
}

// seedListings returns the two example listings every fresh feed starts with.
func seedListings() []models.SharedListing {
	return []models.SharedListing{
		{
			ID:           1,
			Type:         models.CategoryFood,
			ItemName:     "Surplus Dosa Batter",
			ListingType:  ListingQuarterPrice,
			DiscountType: ListingQuarterPrice,
			User:         "FoodieGuru",
			Contact:      "+91 999 12345",
			Price:        "₹40",
		},
		{
			ID:           2,
			Type:         models.CategoryProduct,
			ItemName:     "Old Study Lamp",
			ListingType:  ListingForFree,
			DiscountType: "",
			User:         "EcoSamaritan",
			Contact:      "+91 888 67890",
			Price:        "FREE",
		},
	}
}
