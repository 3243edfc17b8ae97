package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSweepCourierRepository struct{ mock.Mock }

func (m *MockSweepCourierRepository) Add(_ context.Context, _ *courier.Courier) error { return nil }
func (m *MockSweepCourierRepository) Update(_ context.Context, _ *courier.Courier) error {
	return nil
}
func (m *MockSweepCourierRepository) Get(_ context.Context, _ kernel.UUID) (*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockSweepCourierRepository) ReserveFirstAvailable(_ context.Context) (*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockSweepCourierRepository) Release(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSweepCourierRepository) GetAllStranded(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockSweepCourierUoW struct{ mock.Mock }

func (m *MockSweepCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSweepCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSweepCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSweepCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockSweepCourierUoWFactory struct{ mock.Mock }

func (m *MockSweepCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

func strandedCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Asha", "asha@example.com", "9876543210", false)
	require.NoError(t, err)
	return c
}

func TestReleaseStrandedCouriersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := strandedCourier(t)
	second := strandedCourier(t)

	repo := new(MockSweepCourierRepository)
	uow := new(MockSweepCourierUoW)
	factory := new(MockSweepCourierUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("GetAllStranded", ctx).Return([]*courier.Courier{first, second}, nil).Once(),
		repo.On("Release", ctx, first.ID()).Return(nil).Once(),
		repo.On("Release", ctx, second.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewReleaseStrandedCouriersCommandHandler(factory, testLogger())
	err := h.Handle(ctx, commands.NewReleaseStrandedCouriersCommand())

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseStrandedCouriersCommandHandler_Handle_NothingStranded(t *testing.T) {
	ctx := t.Context()

	repo := new(MockSweepCourierRepository)
	uow := new(MockSweepCourierUoW)
	factory := new(MockSweepCourierUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("GetAllStranded", ctx).Return([]*courier.Courier{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewReleaseStrandedCouriersCommandHandler(factory, testLogger())
	err := h.Handle(ctx, commands.NewReleaseStrandedCouriersCommand())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestReleaseStrandedCouriersCommandHandler_Handle_ReleaseError(t *testing.T) {
	ctx := t.Context()
	stranded := strandedCourier(t)

	repo := new(MockSweepCourierRepository)
	uow := new(MockSweepCourierUoW)
	factory := new(MockSweepCourierUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("GetAllStranded", ctx).Return([]*courier.Courier{stranded}, nil).Once(),
		repo.On("Release", ctx, stranded.ID()).Return(errors.New("release error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewReleaseStrandedCouriersCommandHandler(factory, testLogger())
	err := h.Handle(ctx, commands.NewReleaseStrandedCouriersCommand())

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
