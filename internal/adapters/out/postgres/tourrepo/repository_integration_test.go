package tourrepo_test

import (
	"context"
	"testing"
	"time"

	"tours/internal/adapters/out/postgres/pgtest"
	"tours/internal/adapters/out/postgres/tourrepo"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type TourRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tourrepo.GormTourRepository
}

func (suite *TourRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *TourRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "tours"))
	suite.repository = tourrepo.NewGormTourRepository(suite.db)
}

func (suite *TourRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TourRepositoryIntegrationTestSuite) TestAdd_Persists() {
	ctx := context.Background()
	t := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())

	suite.Require().NoError(suite.repository.Add(ctx, t))

	got, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(t.Details(), got.Details())
	suite.Empty(got.ImageURL())
	suite.Equal(1, got.Version())
	suite.True(t.CreatedAt().Equal(got.CreatedAt()))
}

func (suite *TourRepositoryIntegrationTestSuite) TestAdd_NotConstructed_Fails() {
	err := suite.repository.Add(context.Background(), &tour.Tour{})
	suite.Require().ErrorIs(err, tour.ErrTourIsNotConstructed)
}

func (suite *TourRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TourRepositoryIntegrationTestSuite) TestUpdate_WritesDetailsOnly() {
	ctx := context.Background()
	t := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())
	suite.Require().NoError(suite.repository.Add(ctx, t))

	loaded, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ChangePrimaryImage("/uploads/a.jpg", baseTime().Add(time.Minute)))
	suite.Require().NoError(suite.repository.UpdatePrimaryImage(ctx, loaded))

	stale := t
	price := 0.0
	hot := true
	suite.Require().NoError(stale.Apply(tour.Patch{Price: &price, IsHotDeal: &hot}, baseTime().Add(2*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, stale))

	got, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Zero(got.Price())
	suite.True(got.IsHotDeal())
	suite.Equal("/uploads/a.jpg", got.ImageURL(), "update must not touch the primary image")
	suite.Equal(2, got.Version())
}

func (suite *TourRepositoryIntegrationTestSuite) TestUpdate_Missing_NotFound() {
	t := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())
	err := suite.repository.Update(context.Background(), t)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TourRepositoryIntegrationTestSuite) TestUpdatePrimaryImage_StaleVersion_Conflict() {
	ctx := context.Background()
	t := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())
	suite.Require().NoError(suite.repository.Add(ctx, t))

	first, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)

	first.ChangePrimaryImage("/uploads/a.jpg", baseTime())
	second.ChangePrimaryImage("/uploads/b.jpg", baseTime())

	suite.Require().NoError(suite.repository.UpdatePrimaryImage(ctx, first))
	err = suite.repository.UpdatePrimaryImage(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	got, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal("/uploads/a.jpg", got.ImageURL())
}

func (suite *TourRepositoryIntegrationTestSuite) TestUpdatePrimaryImage_Missing_NotFound() {
	t := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())
	t.ChangePrimaryImage("/uploads/a.jpg", baseTime())
	err := suite.repository.UpdatePrimaryImage(context.Background(), t)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TourRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	t := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())
	suite.Require().NoError(suite.repository.Add(ctx, t))

	suite.Require().NoError(suite.repository.Delete(ctx, t.ID()))

	exists, err := suite.repository.Exists(ctx, t.ID())
	suite.Require().NoError(err)
	suite.False(exists)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, t.ID()), errs.ErrObjectNotFound)
}

func (suite *TourRepositoryIntegrationTestSuite) TestListAndCount_FilterSortPage() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTour("Galle Walk", "Galle", 50, true, baseTime())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTour("Kandy Temple", "Kandy", 80, true, baseTime().Add(time.Hour))))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTour("Ella Hike", "Ella", 30, false, baseTime().Add(2*time.Hour))))

	page, err := pagination.NewPage(pagination.Request{Limit: 1, SortBy: "price", SortOrder: "asc"}, ports.TourSortFields)
	suite.Require().NoError(err)

	hot := ports.TourFilter{HotOnly: true}
	tours, err := suite.repository.List(ctx, hot, page)
	suite.Require().NoError(err)
	suite.Require().Len(tours, 1)
	suite.Equal("Galle Walk", tours[0].Name())

	total, err := suite.repository.Count(ctx, hot)
	suite.Require().NoError(err)
	suite.EqualValues(2, total)

	search := ports.TourFilter{Search: "kand"}
	tours, err = suite.repository.List(ctx, search, pagination.Default())
	suite.Require().NoError(err)
	suite.Require().Len(tours, 1)
	suite.Equal("Kandy", tours[0].Location())

	tours, err = suite.repository.List(ctx, ports.TourFilter{}, pagination.Default())
	suite.Require().NoError(err)
	suite.Require().Len(tours, 3)
	suite.Equal("Ella Hike", tours[0].Name(), "default sort is newest first")
}

func (suite *TourRepositoryIntegrationTestSuite) TestList_SearchEscapesWildcards() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTour("Galle Walk", "Galle", 50, false, baseTime())))

	tours, err := suite.repository.List(ctx, ports.TourFilter{Search: "%"}, pagination.Default())
	suite.Require().NoError(err)
	suite.Empty(tours)
}

func (suite *TourRepositoryIntegrationTestSuite) TestListIDs() {
	ctx := context.Background()
	a := suite.newTour("Galle Walk", "Galle", 50, false, baseTime())
	b := suite.newTour("Ella Hike", "Ella", 30, false, baseTime())
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	ids, err := suite.repository.ListIDs(ctx)
	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{a.ID(), b.ID()}, ids)
}

func (suite *TourRepositoryIntegrationTestSuite) newTour(
	name, location string,
	price float64,
	hot bool,
	now time.Time,
) *tour.Tour {
	t, err := tour.NewTour(kernel.NewUUID(), tour.Details{
		Name:        name,
		Location:    location,
		Price:       price,
		Duration:    "4 hours",
		IsHotDeal:   hot,
		Description: "A day out",
		Tagline:     "See it all",
	}, now)
	suite.Require().NoError(err)
	return t
}

func baseTime() time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestTourRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TourRepositoryIntegrationTestSuite))
}
