package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tours/internal/adapters/out/memory"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readerFactoryFunc func() queries.Reader

func (fn readerFactoryFunc) Create() queries.Reader {
	return fn()
}

type fixture struct {
	repos   ports.UnitOfWork
	readers queries.ReaderFactory
}

func newFixture() fixture {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	return fixture{
		repos:   factory.Create(),
		readers: readerFactoryFunc(func() queries.Reader { return factory.Create() }),
	}
}

func (f fixture) addTour(t *testing.T, name string, hot bool, createdAt time.Time) *tour.Tour {
	t.Helper()
	aggregate, err := tour.NewTour(kernel.NewUUID(), tour.Details{
		Name:        name,
		Location:    "Galle",
		Price:       50,
		Duration:    "2-3 hours",
		IsHotDeal:   hot,
		Description: "d",
		Tagline:     "t",
	}, createdAt)
	require.NoError(t, err)
	require.NoError(t, f.repos.TourRepository().Add(t.Context(), aggregate))
	return aggregate
}

func TestGetTourViewQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	now := time.Now()
	stored := f.addTour(t, "Galle Walk", false, now)

	for i, day := range []int{3, 1, 2} {
		item, err := tour.NewItineraryItem(kernel.NewUUID(), stored.ID(), day, "activity", now.Add(time.Duration(i)))
		require.NoError(t, err)
		require.NoError(t, f.repos.ItineraryRepository().Add(ctx, item))
	}
	for _, lt := range []tour.LineType{tour.Included, tour.Included, tour.Excluded} {
		line, err := tour.NewLine(kernel.NewUUID(), stored.ID(), "line", lt, now)
		require.NoError(t, err)
		require.NoError(t, f.repos.TourLineRepository().Add(ctx, line))
	}
	img, err := tour.NewImage(kernel.NewUUID(), stored.ID(), "/uploads/a.jpg", now)
	require.NoError(t, err)
	require.NoError(t, f.repos.TourImageRepository().Add(ctx, img))

	query, err := queries.NewGetTourViewQuery(stored.ID())
	require.NoError(t, err)
	view, err := queries.NewGetTourViewQueryHandler(f.readers).Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, stored.ID().IsEqual(view.Tour.ID()))
	assert.Len(t, view.Inclusions, 2)
	assert.Len(t, view.Exclusions, 1)
	assert.Len(t, view.Images, 1)
	require.Len(t, view.Itinerary, 3)
	for i, item := range view.Itinerary {
		assert.Equal(t, i+1, item.DayNumber())
	}
}

type failingReader struct {
	queries.Reader
	getCalls int
}

func (r *failingReader) TourRepository() ports.TourRepository {
	r.getCalls++
	return r.Reader.TourRepository()
}

func (r *failingReader) TourLineRepository() ports.TourLineRepository {
	panic("dependents must not be read for a missing tour")
}

func TestGetTourViewQueryHandler_Handle_NotFoundSkipsDependents(t *testing.T) {
	f := newFixture()
	reader := &failingReader{Reader: f.repos}
	readers := readerFactoryFunc(func() queries.Reader { return reader })

	query, err := queries.NewGetTourViewQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = queries.NewGetTourViewQueryHandler(readers).Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 1, reader.getCalls)
}

func TestListToursQueryHandler_Handle(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.addTour(t, "Galle Walk", true, now)
	f.addTour(t, "Kandy Temple", false, now.Add(time.Second))
	f.addTour(t, "Galle Fort Night", true, now.Add(2*time.Second))

	query, err := queries.NewListToursQuery(ports.TourFilter{HotOnly: true}, pagination.Request{Page: 2, Limit: 1})
	require.NoError(t, err)

	result, err := queries.NewListToursQueryHandler(f.readers).Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 1, result.Limit)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Galle Walk", result.Items[0].Name())
}

func TestNewListToursQuery_RejectsUnknownSortField(t *testing.T) {
	_, err := queries.NewListToursQuery(ports.TourFilter{}, pagination.Request{SortBy: "imageUrl"})
	require.True(t, errs.IsValidation(err))
}

type erroringTourRepository struct {
	ports.TourRepository
}

func (erroringTourRepository) Count(context.Context, ports.TourFilter) (int64, error) {
	return 0, errors.New("count failed")
}

type erroringReader struct {
	queries.Reader
}

func (r erroringReader) TourRepository() ports.TourRepository {
	return erroringTourRepository{TourRepository: r.Reader.TourRepository()}
}

func TestListToursQueryHandler_Handle_CountError(t *testing.T) {
	f := newFixture()
	readers := readerFactoryFunc(func() queries.Reader { return erroringReader{Reader: f.repos} })

	query, err := queries.NewListToursQuery(ports.TourFilter{}, pagination.Request{})
	require.NoError(t, err)

	_, err = queries.NewListToursQueryHandler(readers).Handle(t.Context(), query)
	require.EqualError(t, err, "count failed")
}

func TestListTourDependentsQueryHandler_Handle_DeletedTourHasEmptyLists(t *testing.T) {
	f := newFixture()
	h := queries.NewListTourDependentsQueryHandler(f.readers)
	tourID := kernel.NewUUID()

	for _, dep := range []queries.Dependent{queries.Inclusions, queries.Exclusions, queries.Itinerary, queries.Images} {
		query, err := queries.NewListTourDependentsQuery(tourID, dep)
		require.NoError(t, err)

		resp, err := h.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
		assert.Empty(t, resp.Itinerary)
		assert.Empty(t, resp.Images)
	}

	_, err := queries.NewListTourDependentsQuery(tourID, queries.UnknownDependent)
	require.Error(t, err)
}

func TestListTourIDsQueryHandler_Handle(t *testing.T) {
	f := newFixture()
	a := f.addTour(t, "Galle Walk", false, time.Now())
	b := f.addTour(t, "Ella Hike", true, time.Now())

	ids, err := queries.NewListTourIDsQueryHandler(f.readers).Handle(t.Context(), queries.NewListTourIDsQuery())
	require.NoError(t, err)
	assert.ElementsMatch(t, []kernel.UUID{a.ID(), b.ID()}, ids)

	_, err = queries.NewListTourIDsQueryHandler(f.readers).Handle(t.Context(), queries.ListTourIDsQuery{})
	require.ErrorIs(t, err, queries.ErrListTourIDsQueryIsNotConstructed)
}
