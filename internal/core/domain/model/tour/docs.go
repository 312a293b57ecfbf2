// Package tour provides the Tour aggregate and its dependent entities.
//
// The package includes:
//   - Tour: the bookable product, including its primary image pointer and
//     optimistic concurrency version
//   - Duration: the "<N>[-<M>] hour(s)" value object
//   - Image: an image owned by a tour
//   - Line: an inclusion or exclusion line (LineType Included/Excluded)
//   - ItineraryItem: an activity on a given day of the tour
//
// Key business rules:
//   - name, location and tagline are required and at most 80 characters
//   - price and reviews count are non-negative, rating is within [0, 5]
//   - the primary image is never set through a patch; it changes only as a
//     side effect of adding or removing images (see ChangePrimaryImage)
//   - dependents carry the owning tour's ID and are never re-parented
package tour
