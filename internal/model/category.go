package model

// Category is one of the fixed catalogue labels
type Category string

const (
	CategoryBedding            Category = "Bedding"
	CategoryTowels             Category = "Towels"
	CategoryBathroomAmenities  Category = "Bathroom Amenities"
	CategoryGuestSupplies      Category = "Guest Supplies"
	CategoryHousekeeping       Category = "Housekeeping"
	CategoryLobby              Category = "Lobby"
	CategoryLeatherAccessories Category = "Leather Accessories"
	CategorySafetyBoxes        Category = "Safety Boxes"
	CategoryRestaurantSupplies Category = "Restaurant Supplies"
	CategoryHospitalSupplies   Category = "Hospital Supplies"
	CategorySpaSupplies        Category = "Spa Supplies"
	CategoryEcoFriendly        Category = "Eco-Friendly"
	CategorySCollection        Category = "S-Collection"
)

// DefaultCategory is preselected by the add form when no category is given
const DefaultCategory = CategoryBedding

var categories = []Category{
	CategoryBedding,
	CategoryTowels,
	CategoryBathroomAmenities,
	CategoryGuestSupplies,
	CategoryHousekeeping,
	CategoryLobby,
	CategoryLeatherAccessories,
	CategorySafetyBoxes,
	CategoryRestaurantSupplies,
	CategoryHospitalSupplies,
	CategorySpaSupplies,
	CategoryEcoFriendly,
	CategorySCollection,
}

// Categories returns the fixed category list in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryLabels returns the category labels as plain strings, for selects and radio groups
func CategoryLabels() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// String returns the display label
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the fixed labels (exact match)
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
