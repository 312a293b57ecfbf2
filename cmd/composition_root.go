package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "tours/internal/adapters/in/http"
	"tours/internal/adapters/out/media"
	"tours/internal/adapters/out/memory"
	"tours/internal/adapters/out/mongodb"
	"tours/internal/adapters/out/postgres"
	"tours/internal/adapters/out/redislock"
	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/services"
	"tours/internal/core/ports"
	"tours/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the storage client, the media store and the job lock
// for the lifetime of the process, and builds every handler from them.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	media      ports.MediaStore
	locker     ports.Locker
	closers    []func(context.Context) error
}

// NewCompositionRoot opens the storage selected by config.StorageDriver and,
// when REDIS_ADDR is set, the Redis client used for job leases. Close
// releases everything opened here.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		locker: redislock.NoopLocker{},
	}

	if err := c.openStorage(ctx); err != nil {
		return nil, errors.Join(err, c.Close(ctx))
	}

	diskStore, err := media.NewDiskStore(config.UploadDir, config.UploadURLPrefix)
	if err != nil {
		return nil, errors.Join(err, c.Close(ctx))
	}
	c.media = diskStore

	if config.RedisAddr != "" {
		rdb, redisErr := redislock.Connect(ctx, config.RedisAddr)
		if redisErr != nil {
			return nil, errors.Join(redisErr, c.Close(ctx))
		}
		c.locker = redislock.New(rdb, logger)
		c.closers = append(c.closers, func(context.Context) error {
			return rdb.Close()
		})
	}

	return c, nil
}

func (c *CompositionRoot) openStorage(ctx context.Context) error {
	switch c.config.StorageDriver {
	case StorageDriverPostgres:
		db, err := postgres.Open(ctx, c.config.DSN())
		if err != nil {
			return err
		}
		c.closers = append(c.closers, func(context.Context) error {
			return postgres.Close(db)
		})
		if err = postgres.Migrate(ctx, db); err != nil {
			return err
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)

	case StorageDriverMongo:
		client, err := mongodb.Connect(ctx, c.config.MongoURI)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, client.Disconnect)
		db := client.Database(c.config.MongoDatabase)
		if err = mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		c.uowFactory = mongodb.NewUnitOfWorkFactory(db)

	case StorageDriverMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())

	default:
		return fmt.Errorf("unsupported storage driver %q", c.config.StorageDriver)
	}

	c.logger.InfoContext(ctx, "Storage opened", "driver", c.config.StorageDriver)
	return nil
}

// Close releases resources in reverse order of opening.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var closeErrs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		closeErrs = append(closeErrs, c.closers[i](ctx))
	}
	c.closers = nil
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) parentCheck() commands.ParentCheck {
	return commands.ParentCheck(c.config.StrictParentCheck)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tourUoW() commands.TourUoWFactory {
	return FuncTourUoWFactory(func() commands.TourUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inquiryUoW() commands.InquiryUoWFactory {
	return FuncInquiryUoWFactory(func() commands.InquiryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readers() queries.ReaderFactory {
	return FuncReaderFactory(func() queries.Reader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTourCommandHandler() commands.CreateTourCommandHandler {
	return commands.NewCreateTourCommandHandler(c.tourUoW())
}

func (c *CompositionRoot) CreateUpdateTourCommandHandler() commands.UpdateTourCommandHandler {
	return commands.NewUpdateTourCommandHandler(c.tourUoW())
}

func (c *CompositionRoot) CreateDeleteTourCommandHandler() commands.DeleteTourCommandHandler {
	return commands.NewDeleteTourCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateAddTourLineCommandHandler() commands.AddTourLineCommandHandler {
	return commands.NewAddTourLineCommandHandler(c.uow(), c.parentCheck())
}

func (c *CompositionRoot) CreateRemoveTourLineCommandHandler() commands.RemoveTourLineCommandHandler {
	return commands.NewRemoveTourLineCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAddItineraryItemCommandHandler() commands.AddItineraryItemCommandHandler {
	return commands.NewAddItineraryItemCommandHandler(
		c.uow(),
		c.parentCheck(),
		services.NewItineraryPolicy(c.config.ItineraryUniqueDays),
	)
}

func (c *CompositionRoot) CreateRemoveItineraryItemCommandHandler() commands.RemoveItineraryItemCommandHandler {
	return commands.NewRemoveItineraryItemCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAddTourImageCommandHandler() commands.AddTourImageCommandHandler {
	return commands.NewAddTourImageCommandHandler(c.uow(), c.media, c.parentCheck(), c.logger)
}

func (c *CompositionRoot) CreateRemoveTourImageCommandHandler() commands.RemoveTourImageCommandHandler {
	return commands.NewRemoveTourImageCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateReconcilePrimaryImageCommandHandler() commands.ReconcilePrimaryImageCommandHandler {
	return commands.NewReconcilePrimaryImageCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSweepOrphansCommandHandler() commands.SweepOrphansCommandHandler {
	return commands.NewSweepOrphansCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateCreateInquiryCommandHandler() commands.CreateInquiryCommandHandler {
	return commands.NewCreateInquiryCommandHandler(c.inquiryUoW(), c.parentCheck())
}

func (c *CompositionRoot) CreateDeleteInquiryCommandHandler() commands.DeleteInquiryCommandHandler {
	return commands.NewDeleteInquiryCommandHandler(c.inquiryUoW())
}

func (c *CompositionRoot) CreateGetTourViewQueryHandler() queries.GetTourViewQueryHandler {
	return queries.NewGetTourViewQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateListToursQueryHandler() queries.ListToursQueryHandler {
	return queries.NewListToursQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateListTourDependentsQueryHandler() queries.ListTourDependentsQueryHandler {
	return queries.NewListTourDependentsQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateListTourIDsQueryHandler() queries.ListTourIDsQueryHandler {
	return queries.NewListTourIDsQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateListInquiriesQueryHandler() queries.ListInquiriesQueryHandler {
	return queries.NewListInquiriesQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateTour:          c.CreateCreateTourCommandHandler(),
		UpdateTour:          c.CreateUpdateTourCommandHandler(),
		DeleteTour:          c.CreateDeleteTourCommandHandler(),
		AddTourLine:         c.CreateAddTourLineCommandHandler(),
		RemoveTourLine:      c.CreateRemoveTourLineCommandHandler(),
		AddItineraryItem:    c.CreateAddItineraryItemCommandHandler(),
		RemoveItineraryItem: c.CreateRemoveItineraryItemCommandHandler(),
		AddTourImage:        c.CreateAddTourImageCommandHandler(),
		RemoveTourImage:     c.CreateRemoveTourImageCommandHandler(),
		CreateInquiry:       c.CreateCreateInquiryCommandHandler(),
		DeleteInquiry:       c.CreateDeleteInquiryCommandHandler(),
		GetTourView:         c.CreateGetTourViewQueryHandler(),
		ListTours:           c.CreateListToursQueryHandler(),
		ListTourDependents:  c.CreateListTourDependentsQueryHandler(),
		ListInquiries:       c.CreateListInquiriesQueryHandler(),
	}, c.config.MaxUploadBytes)
}

// CreateRouter builds the echo instance serving CreateServer.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), httpin.RouterConfig{
		Logger:          c.logger,
		Verifier:        httpin.NewTokenVerifier(c.config.JWTSecret),
		UploadDir:       c.config.UploadDir,
		UploadURLPrefix: c.config.UploadURLPrefix,
		RateLimitRPS:    c.config.RateLimitRPS,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewPrimaryImageReconcileJob(
			c.CreateListTourIDsQueryHandler(),
			c.CreateReconcilePrimaryImageCommandHandler(),
			c.locker,
			c.config.ReconcileSchedule,
			c.logger,
		),
		jobs.NewOrphanSweepJob(
			c.CreateSweepOrphansCommandHandler(),
			c.locker,
			c.config.OrphanSweepSchedule,
			c.logger,
		),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncTourUoWFactory func() commands.TourUoW

func (f FuncTourUoWFactory) Create() commands.TourUoW {
	return f()
}

type FuncInquiryUoWFactory func() commands.InquiryUoW

func (f FuncInquiryUoWFactory) Create() commands.InquiryUoW {
	return f()
}

type FuncReaderFactory func() queries.Reader

func (f FuncReaderFactory) Create() queries.Reader {
	return f()
}
