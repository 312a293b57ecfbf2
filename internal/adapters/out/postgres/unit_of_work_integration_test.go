package postgres_test

import (
	"context"
	"testing"
	"time"

	adapter "tours/internal/adapters/out/postgres"
	"tours/internal/adapters/out/postgres/pgtest"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.TourRepository())
	suite.NotNil(uow1.TourImageRepository())
	suite.NotNil(uow1.TourLineRepository())
	suite.NotNil(uow1.ItineraryRepository())
	suite.NotNil(uow1.InquiryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	t := newTour(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TourRepository().Add(ctx, t))

	image, err := tour.NewImage(kernel.NewUUID(), t.ID(), "/uploads/a.jpg", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TourImageRepository().Add(ctx, image))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	_, err = reader.TourRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	images, err := reader.TourImageRepository().ListByTour(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Len(images, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	t := newTour(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TourRepository().Add(ctx, t))

	exists, err := uow.TourRepository().Exists(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(exists, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	exists, err = suite.factory.Create().TourRepository().Exists(ctx, t.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryServesPort() {
	var factory ports.UnitOfWorkFactory = suite.factory
	suite.NotNil(factory.Create())
}

func newTour(suite *UnitOfWorkIntegrationTestSuite) *tour.Tour {
	t, err := tour.NewTour(kernel.NewUUID(), tour.Details{
		Name:        "Galle Walk",
		Location:    "Galle",
		Price:       50,
		Duration:    "4 hours",
		Description: "A day out",
		Tagline:     "See it all",
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return t
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
