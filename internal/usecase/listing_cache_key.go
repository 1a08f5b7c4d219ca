package usecase

import "github.com/google/uuid"

// ListingCacheKey identifies the pre-search profile listing for a category.
// A nil category is the unfiltered listing.
func ListingCacheKey(categoryID *uuid.UUID) string {
	if categoryID == nil || *categoryID == uuid.Nil {
		return listingKeyPrefix + "all"
	}
	return listingKeyPrefix + "category:" + categoryID.String()
}
