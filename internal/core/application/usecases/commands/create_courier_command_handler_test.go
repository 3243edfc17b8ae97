package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(_ context.Context, _ *courier.Courier) error { return nil }
func (m *MockCourierRepository) Get(_ context.Context, _ kernel.UUID) (*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCourierRepository) ReserveFirstAvailable(_ context.Context) (*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCourierRepository) Release(_ context.Context, _ kernel.UUID) error { return nil }
func (m *MockCourierRepository) GetAllStranded(_ context.Context) ([]*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCourierUoW struct{ mock.Mock }

func (m *MockCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(id, "Asha", "asha@example.com", "9876543210")
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockCourierUoW)
	factory := new(MockCourierUoWFactory)

	var added *courier.Courier

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*courier.Courier)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateCourierCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(id))
	assert.True(t, added.IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_InvalidPhone(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Asha", "asha@example.com", "12345")
	require.NoError(t, err)

	factory := new(MockCourierUoWFactory)

	h := commands.NewCreateCourierCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	// Format rules live in the aggregate, so we never reach the factory
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCourierCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Asha", "asha@example.com", "9876543210")
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockCourierUoW)
	factory := new(MockCourierUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateCourierCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewCreateCourierCommand_MissingFields(t *testing.T) {
	testCases := []struct {
		name               string
		courierName, email string
		phone              string
	}{
		{name: "missing name", email: "asha@example.com", phone: "9876543210"},
		{name: "missing email", courierName: "Asha", phone: "9876543210"},
		{name: "missing phone", courierName: "Asha", email: "asha@example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateCourierCommand(kernel.NewUUID(), tc.courierName, tc.email, tc.phone)

			require.Error(t, err)
		})
	}
}

func TestCreateCourierCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCourierCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
}
