package http

import (
	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toTour(t *tour.Tour) servers.Tour {
	response := servers.Tour{
		Id:           t.ID().Bytes(),
		Name:         t.Name(),
		Location:     t.Location(),
		Price:        t.Price(),
		Duration:     t.Duration().String(),
		Rating:       t.Rating(),
		ReviewsCount: t.ReviewsCount(),
		IsHotDeal:    t.IsHotDeal(),
		Description:  t.Description(),
		Tagline:      t.Tagline(),
		Version:      t.Version(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
	if t.HasPrimaryImage() {
		imageURL := t.ImageURL()
		response.ImageUrl = &imageURL
	}
	return response
}

func toTours(tours []*tour.Tour) []servers.Tour {
	response := make([]servers.Tour, len(tours))
	for i, t := range tours {
		response[i] = toTour(t)
	}
	return response
}

func toTourLines(lines []*tour.Line) []servers.TourLine {
	response := make([]servers.TourLine, len(lines))
	for i, line := range lines {
		response[i] = toTourLine(line)
	}
	return response
}

func toTourLine(line *tour.Line) servers.TourLine {
	return servers.TourLine{
		Id:          line.ID().Bytes(),
		TourId:      line.TourID().Bytes(),
		Description: line.Description(),
		Type:        servers.TourLineType(line.Type().String()),
		CreatedAt:   line.CreatedAt(),
	}
}

func toItinerary(items []*tour.ItineraryItem) []servers.ItineraryItem {
	response := make([]servers.ItineraryItem, len(items))
	for i, item := range items {
		response[i] = toItineraryItem(item)
	}
	return response
}

func toItineraryItem(item *tour.ItineraryItem) servers.ItineraryItem {
	return servers.ItineraryItem{
		Id:        item.ID().Bytes(),
		TourId:    item.TourID().Bytes(),
		DayNumber: item.DayNumber(),
		Activity:  item.Activity(),
		CreatedAt: item.CreatedAt(),
	}
}

func toTourImages(images []*tour.Image) []servers.TourImage {
	response := make([]servers.TourImage, len(images))
	for i, image := range images {
		response[i] = toTourImage(image)
	}
	return response
}

func toTourImage(image *tour.Image) servers.TourImage {
	return servers.TourImage{
		Id:        image.ID().Bytes(),
		TourId:    image.TourID().Bytes(),
		ImageUrl:  image.ImageURL(),
		CreatedAt: image.CreatedAt(),
		UpdatedAt: image.UpdatedAt(),
	}
}

func toInquiry(i *inquiry.Inquiry) servers.Inquiry {
	contact := i.Contact()
	response := servers.Inquiry{
		Id:        i.ID().Bytes(),
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: i.CreatedAt(),
	}
	if contact.Phone != "" {
		response.Phone = &contact.Phone
	}
	if tourID := i.TourID(); tourID != nil {
		id := tourID.Bytes()
		response.TourId = &id
	}
	return response
}

func toInquiries(inquiries []*inquiry.Inquiry) []servers.Inquiry {
	response := make([]servers.Inquiry, len(inquiries))
	for i, item := range inquiries {
		response[i] = toInquiry(item)
	}
	return response
}

func toDetails(body servers.NewTour) tour.Details {
	details := tour.Details{
		Name:        body.Name,
		Location:    body.Location,
		Duration:    body.Duration,
		Description: body.Description,
		Tagline:     body.Tagline,
	}
	if body.Price != nil {
		details.Price = *body.Price
	}
	if body.Rating != nil {
		details.Rating = *body.Rating
	}
	if body.ReviewsCount != nil {
		details.ReviewsCount = *body.ReviewsCount
	}
	if body.IsHotDeal != nil {
		details.IsHotDeal = *body.IsHotDeal
	}
	return details
}

func toPatch(body servers.TourPatch) tour.Patch {
	return tour.Patch{
		Name:         body.Name,
		Location:     body.Location,
		Price:        body.Price,
		Duration:     body.Duration,
		Rating:       body.Rating,
		ReviewsCount: body.ReviewsCount,
		IsHotDeal:    body.IsHotDeal,
		Description:  body.Description,
		Tagline:      body.Tagline,
	}
}

func toContact(body servers.NewInquiry) inquiry.Contact {
	contact := inquiry.Contact{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	}
	if body.Phone != nil {
		contact.Phone = *body.Phone
	}
	return contact
}
