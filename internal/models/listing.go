package models

// Listing categories. These are the only values accepted by the feed.
const (
	CategoryFood    = "Food"
	CategoryProduct = "Product"
	CategoryCloth   = "Cloth"
)

// SharedListing is a community marketplace post. The posting user's name and
// contact are copied by value at creation time; listings are immutable
// historical records and do not reflect later profile edits.
type SharedListing struct {
	ID           int64  `json:"id"`
	Type         string `json:"type" validate:"required,oneof=Food Product Cloth"`
	ItemName     string `json:"itemName" validate:"required"`
	ListingType  string `json:"listingType"`
	DiscountType string `json:"discountType"`
	User         string `json:"user"`
	Contact      string `json:"contact"`
	Price        string `json:"price"`
}

// ValidCategory reports whether category is one of the three listing categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryFood, CategoryProduct, CategoryCloth:
		return true
	}
	return false
}
