package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tours/internal/adapters/out/memory"
	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	args := m.Called(ctx, key, ttl)
	release, _ := args.Get(0).(func())
	return release, args.Bool(1), args.Error(2)
}

type uowFactoryFunc func() commands.UoW

func (fn uowFactoryFunc) Create() commands.UoW {
	return fn()
}

type readerFactoryFunc func() queries.Reader

func (fn readerFactoryFunc) Create() queries.Reader {
	return fn()
}

type fixture struct {
	repos     ports.UnitOfWork
	reconcile *jobs.PrimaryImageReconcileJob
	sweep     *jobs.OrphanSweepJob
}

func newFixture(locker ports.Locker) fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	uows := uowFactoryFunc(func() commands.UoW { return factory.Create() })
	readers := readerFactoryFunc(func() queries.Reader { return factory.Create() })

	return fixture{
		repos: factory.Create(),
		reconcile: jobs.NewPrimaryImageReconcileJob(
			queries.NewListTourIDsQueryHandler(readers),
			commands.NewReconcilePrimaryImageCommandHandler(uows),
			locker,
			"0 */5 * * * *",
			logger,
		),
		sweep: jobs.NewOrphanSweepJob(
			commands.NewSweepOrphansCommandHandler(uows, logger),
			locker,
			"0 0 * * * *",
			logger,
		),
	}
}

func grantingLocker() *MockLocker {
	locker := new(MockLocker)
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(func() {}, true, nil)
	return locker
}

func (f fixture) addTour(t *testing.T) *tour.Tour {
	t.Helper()
	aggregate, err := tour.NewTour(kernel.NewUUID(), tour.Details{
		Name:        "Galle Walk",
		Location:    "Galle",
		Price:       50,
		Duration:    "4 hours",
		Description: "d",
		Tagline:     "t",
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.repos.TourRepository().Add(t.Context(), aggregate))
	return aggregate
}

func TestPrimaryImageReconcileJob_RunOnce_RepairsDrift(t *testing.T) {
	ctx := t.Context()
	f := newFixture(grantingLocker())
	stored := f.addTour(t)
	f.addTour(t)

	// an image inserted without the follow-up reconcile
	image, err := tour.NewImage(kernel.NewUUID(), stored.ID(), "/uploads/a.jpg", time.Now())
	require.NoError(t, err)
	require.NoError(t, f.repos.TourImageRepository().Add(ctx, image))

	report, err := f.reconcile.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobs.ReconcileReport{Checked: 2, Repaired: 1}, report)

	got, err := f.repos.TourRepository().Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", got.ImageURL())

	report, err = f.reconcile.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Repaired, "second run is a no-op")
}

func TestPrimaryImageReconcileJob_RunOnce_LeaseHeldElsewhere(t *testing.T) {
	locker := new(MockLocker)
	locker.On("TryLock", mock.Anything, "primary-image-reconcile", mock.Anything).Return(nil, false, nil).Once()
	f := newFixture(locker)
	f.addTour(t)

	report, err := f.reconcile.RunOnce(t.Context())
	require.NoError(t, err)
	assert.Zero(t, report.Checked)
	locker.AssertExpectations(t)
}

func TestPrimaryImageReconcileJob_RunOnce_LockError(t *testing.T) {
	lockErr := errors.New("redis down")
	locker := new(MockLocker)
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(nil, false, lockErr)
	f := newFixture(locker)

	_, err := f.reconcile.RunOnce(t.Context())
	require.ErrorIs(t, err, lockErr)
}

func TestOrphanSweepJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	released := false
	locker := new(MockLocker)
	locker.On("TryLock", mock.Anything, "orphan-sweep", mock.Anything).
		Return(func() { released = true }, true, nil).Once()
	f := newFixture(locker)

	kept := f.addTour(t)
	gone := kernel.NewUUID()
	for _, tourID := range []kernel.UUID{kept.ID(), gone, gone} {
		line, err := tour.NewLine(kernel.NewUUID(), tourID, "Lunch", tour.Included, time.Now())
		require.NoError(t, err)
		require.NoError(t, f.repos.TourLineRepository().Add(ctx, line))
	}

	report, err := f.sweep.RunOnce(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, report.Total())
	assert.True(t, released)

	lines, err := f.repos.TourLineRepository().ListByTour(ctx, kept.ID(), tour.Included)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestJobManager_StartStop(t *testing.T) {
	f := newFixture(grantingLocker())
	manager := jobs.NewJobManager(f.reconcile, f.sweep)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := newFixture(grantingLocker())
	broken := jobs.NewOrphanSweepJob(
		commands.NewSweepOrphansCommandHandler(uowFactoryFunc(func() commands.UoW { return nil }), logger),
		grantingLocker(),
		"not a schedule",
		logger,
	)

	err := jobs.NewJobManager(f.reconcile, broken).StartAll()
	require.Error(t, err)
}
