// Package services provides domain services that apply business rules across
// a tour and its dependent entities, where the rule does not belong to a
// single entity.
//
// The package includes:
//   - PrimaryImageSelector: derives a tour's primary image from the images it owns
//   - ItineraryPolicy: decides whether a new itinerary item is acceptable
package services
