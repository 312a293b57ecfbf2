package http

import (
	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use case handlers the HTTP server delegates to.
type Handlers struct {
	// Command handlers
	CreateTour          commands.CreateTourCommandHandler
	UpdateTour          commands.UpdateTourCommandHandler
	DeleteTour          commands.DeleteTourCommandHandler
	AddTourLine         commands.AddTourLineCommandHandler
	RemoveTourLine      commands.RemoveTourLineCommandHandler
	AddItineraryItem    commands.AddItineraryItemCommandHandler
	RemoveItineraryItem commands.RemoveItineraryItemCommandHandler
	AddTourImage        commands.AddTourImageCommandHandler
	RemoveTourImage     commands.RemoveTourImageCommandHandler
	CreateInquiry       commands.CreateInquiryCommandHandler
	DeleteInquiry       commands.DeleteInquiryCommandHandler

	// Query handlers
	GetTourView        queries.GetTourViewQueryHandler
	ListTours          queries.ListToursQueryHandler
	ListTourDependents queries.ListTourDependentsQueryHandler
	ListInquiries      queries.ListInquiriesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers       Handlers
	maxUploadBytes int64
}

// NewServer creates a new HTTP server with the required command and query
// handlers. maxUploadBytes caps the size of a multipart image upload.
func NewServer(handlers Handlers, maxUploadBytes int64) *Server {
	return &Server{
		handlers:       handlers,
		maxUploadBytes: maxUploadBytes,
	}
}
