package mocks

import (
	"context"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepo) GetTakenSeats(ctx context.Context, tickets []domain.Ticket) ([]domain.Ticket, error) {
	args := m.Called(ctx, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockReservationRepo) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.ReservationWithTickets, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.ReservationWithTickets), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockReservationRepo) GetByIdAndUserId(
	ctx context.Context,
	id, userId int) (*domain.ReservationWithTickets, error) {

	args := m.Called(ctx, id, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationWithTickets), args.Error(1)
}

func (m *MockReservationRepo) CountByPerformanceId(ctx context.Context, performanceId int) (int, error) {
	args := m.Called(ctx, performanceId)
	return args.Int(0), args.Error(1)
}
