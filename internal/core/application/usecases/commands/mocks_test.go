package commands_test

import (
	"context"
	"io"

	"tours/internal/adapters/out/memory"
	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

type MockTourRepository struct{ mock.Mock }

func (m *MockTourRepository) Add(ctx context.Context, t *tour.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTourRepository) Update(ctx context.Context, t *tour.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTourRepository) UpdatePrimaryImage(ctx context.Context, t *tour.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTourRepository) Get(ctx context.Context, id kernel.UUID) (*tour.Tour, error) {
	args := m.Called(ctx, id)
	switch v := args.Get(0).(type) {
	case func() *tour.Tour:
		return v(), args.Error(1)
	case *tour.Tour:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockTourRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockTourRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTourRepository) List(_ context.Context, _ ports.TourFilter, _ pagination.Page) ([]*tour.Tour, error) {
	return nil, nil
}
func (m *MockTourRepository) Count(_ context.Context, _ ports.TourFilter) (int64, error) {
	return 0, nil
}
func (m *MockTourRepository) ListIDs(_ context.Context) ([]kernel.UUID, error) {
	return nil, nil
}

type MockDependentCollection struct{ mock.Mock }

func (m *MockDependentCollection) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	args := m.Called(ctx, tourID)
	return int64(args.Int(0)), args.Error(1)
}
func (m *MockDependentCollection) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockTourImageRepository struct{ MockDependentCollection }

func (m *MockTourImageRepository) Add(ctx context.Context, img *tour.Image) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}
func (m *MockTourImageRepository) ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.Image, error) {
	args := m.Called(ctx, tourID)
	switch v := args.Get(0).(type) {
	case func() []*tour.Image:
		return v(), args.Error(1)
	case []*tour.Image:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockTourImageRepository) DeleteScoped(
	ctx context.Context,
	tourID kernel.UUID,
	imageID kernel.UUID,
) (*tour.Image, error) {
	args := m.Called(ctx, tourID, imageID)
	img, _ := args.Get(0).(*tour.Image)
	return img, args.Error(1)
}

type MockTourLineRepository struct{ MockDependentCollection }

func (m *MockTourLineRepository) Add(ctx context.Context, line *tour.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockTourLineRepository) ListByTour(_ context.Context, _ kernel.UUID, _ tour.LineType) ([]*tour.Line, error) {
	return nil, nil
}
func (m *MockTourLineRepository) DeleteScoped(
	ctx context.Context,
	tourID kernel.UUID,
	lineType tour.LineType,
	lineID kernel.UUID,
) error {
	args := m.Called(ctx, tourID, lineType, lineID)
	return args.Error(0)
}

type MockItineraryRepository struct{ MockDependentCollection }

func (m *MockItineraryRepository) Add(ctx context.Context, item *tour.ItineraryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItineraryRepository) ListByTour(_ context.Context, _ kernel.UUID) ([]*tour.ItineraryItem, error) {
	return nil, nil
}
func (m *MockItineraryRepository) DeleteScoped(ctx context.Context, tourID kernel.UUID, itemID kernel.UUID) error {
	args := m.Called(ctx, tourID, itemID)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) TourRepository() ports.TourRepository {
	args := m.Called()
	return args.Get(0).(ports.TourRepository)
}
func (m *MockUoW) TourImageRepository() ports.TourImageRepository {
	args := m.Called()
	return args.Get(0).(ports.TourImageRepository)
}
func (m *MockUoW) TourLineRepository() ports.TourLineRepository {
	args := m.Called()
	return args.Get(0).(ports.TourLineRepository)
}
func (m *MockUoW) ItineraryRepository() ports.ItineraryRepository {
	args := m.Called()
	return args.Get(0).(ports.ItineraryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockTourUoWFactory struct{ mock.Mock }

func (m *MockTourUoWFactory) Create() commands.TourUoW {
	args := m.Called()
	return args.Get(0).(commands.TourUoW)
}

type MockMediaStore struct{ mock.Mock }

func (m *MockMediaStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// memoryFactories wires every handler to one in-memory store.
type memoryFactories struct {
	store   *memory.Store
	factory *memory.UnitOfWorkFactory
}

func newMemoryFactories() memoryFactories {
	store := memory.NewStore()
	return memoryFactories{store: store, factory: memory.NewUnitOfWorkFactory(store)}
}

func (f memoryFactories) uow() commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return f.factory.Create() })
}

func (f memoryFactories) tourUoW() commands.TourUoWFactory {
	return tourUoWFactoryFunc(func() commands.TourUoW { return f.factory.Create() })
}

func (f memoryFactories) inquiryUoW() commands.InquiryUoWFactory {
	return inquiryUoWFactoryFunc(func() commands.InquiryUoW { return f.factory.Create() })
}

func (f memoryFactories) repos() ports.UnitOfWork {
	return f.factory.Create()
}

type uowFactoryFunc func() commands.UoW

func (fn uowFactoryFunc) Create() commands.UoW {
	return fn()
}

type tourUoWFactoryFunc func() commands.TourUoW

func (fn tourUoWFactoryFunc) Create() commands.TourUoW {
	return fn()
}

type inquiryUoWFactoryFunc func() commands.InquiryUoW

func (fn inquiryUoWFactoryFunc) Create() commands.InquiryUoW {
	return fn()
}
