package tour

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tourbook/internal/domain"
)

type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) Create(ctx context.Context, t *domain.Tour) error {
	args := m.Called(ctx, t)
	if t != nil {
		t.ID = 5
	}
	return args.Error(0)
}

func (m *MockTourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourRepository) ListAll(ctx context.Context) ([]domain.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourRepository) ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Tour, error) {
	args := m.Called(ctx, agencyUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourRepository) Update(ctx context.Context, t *domain.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceDates(ctx context.Context, tourID int64, dates []domain.TourDate) error {
	args := m.Called(ctx, tourID, dates)
	return args.Error(0)
}

func (m *MockTourRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingChecker struct {
	mock.Mock
}

func (m *MockBookingChecker) ExistsForTour(ctx context.Context, tourID int64) (bool, error) {
	args := m.Called(ctx, tourID)
	return args.Bool(0), args.Error(1)
}

type MockProfileChecker struct {
	mock.Mock
}

func (m *MockProfileChecker) ExistsForUser(ctx context.Context, agencyUserID string) (bool, error) {
	args := m.Called(ctx, agencyUserID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *MockTourRepository, *MockBookingChecker, *MockProfileChecker) {
	tours := new(MockTourRepository)
	bookings := new(MockBookingChecker)
	profiles := new(MockProfileChecker)
	return NewService(tours, bookings, profiles), tours, bookings, profiles
}

func agency() domain.Actor {
	return domain.Actor{ID: "agency-1", Role: domain.RoleAgency, Name: "Sunrise Travel"}
}

func validRequest() SaveTourRequest {
	return SaveTourRequest{
		Name:         "Alpine Lakes Trek",
		Description:  "Five days across three mountain lakes.",
		Price:        decimal.NewFromInt(450),
		MaxGroupSize: 8,
		DurationDays: 5,
		Dates: []time.Time{
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ownedTour() *domain.Tour {
	return &domain.Tour{
		ID:           5,
		Name:         "Alpine Lakes Trek",
		Price:        decimal.NewFromInt(450),
		MaxGroupSize: 8,
		AgencyUserID: "agency-1",
	}
}

func TestCreate_Success(t *testing.T) {
	service, tours, _, profiles := newTestService()

	profiles.On("ExistsForUser", mock.Anything, "agency-1").Return(true, nil)
	tours.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Create(context.Background(), agency(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "agency-1", created.AgencyUserID)
	assert.Len(t, created.AvailableDates, 1)
	tours.AssertExpectations(t)
}

func TestCreate_RequiresProfile(t *testing.T) {
	service, tours, _, profiles := newTestService()

	profiles.On("ExistsForUser", mock.Anything, "agency-1").Return(false, nil)

	_, err := service.Create(context.Background(), agency(), validRequest())

	assert.ErrorIs(t, err, ErrProfileRequired)
	tours.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_ForbiddenForTourist(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Create(context.Background(), domain.Actor{ID: "t", Role: domain.RoleTourist}, validRequest())

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_AccumulatesFieldViolations(t *testing.T) {
	service, _, _, profiles := newTestService()

	profiles.On("ExistsForUser", mock.Anything, "agency-1").Return(true, nil)

	req := SaveTourRequest{
		Name:         "",
		Price:        decimal.NewFromInt(50000),
		MaxGroupSize: 0,
		DurationDays: -1,
	}
	_, err := service.Create(context.Background(), agency(), req)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "max_group_size")
	assert.Contains(t, verr.Fields, "duration_days")
}

func TestCreate_PriceBounds(t *testing.T) {
	service, tours, _, profiles := newTestService()

	profiles.On("ExistsForUser", mock.Anything, "agency-1").Return(true, nil)
	tours.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Price = decimal.NewFromInt(10000)
	_, err := service.Create(context.Background(), agency(), req)
	assert.NoError(t, err)

	req.Price = decimal.NewFromFloat(0.99)
	_, err = service.Create(context.Background(), agency(), req)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestUpdate_Success(t *testing.T) {
	service, tours, _, _ := newTestService()

	tours.On("GetByID", mock.Anything, int64(5)).Return(ownedTour(), nil).Once()
	tours.On("Update", mock.Anything, mock.Anything).Return(nil)
	tours.On("ReplaceDates", mock.Anything, int64(5), mock.Anything).Return(nil)

	updated := ownedTour()
	updated.Name = "Alpine Lakes Trek v2"
	tours.On("GetByID", mock.Anything, int64(5)).Return(updated, nil).Once()

	req := validRequest()
	req.Name = "Alpine Lakes Trek v2"
	got, err := service.Update(context.Background(), agency(), 5, req)

	assert.NoError(t, err)
	assert.Equal(t, "Alpine Lakes Trek v2", got.Name)
	tours.AssertExpectations(t)
}

func TestUpdate_ForbiddenForOtherAgency(t *testing.T) {
	service, tours, _, _ := newTestService()

	tours.On("GetByID", mock.Anything, int64(5)).Return(ownedTour(), nil)

	other := domain.Actor{ID: "agency-2", Role: domain.RoleAgency}
	_, err := service.Update(context.Background(), other, 5, validRequest())

	// Ownership failures surface as Forbidden, not NotFound.
	assert.ErrorIs(t, err, ErrForbidden)
	tours.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	service, tours, _, _ := newTestService()

	tours.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Update(context.Background(), agency(), 404, validRequest())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	service, tours, bookings, _ := newTestService()

	tours.On("GetByID", mock.Anything, int64(5)).Return(ownedTour(), nil)
	bookings.On("ExistsForTour", mock.Anything, int64(5)).Return(false, nil)
	tours.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := service.Delete(context.Background(), agency(), 5)

	assert.NoError(t, err)
	tours.AssertExpectations(t)
}

func TestDelete_BlockedByBookings(t *testing.T) {
	service, tours, bookings, _ := newTestService()

	tours.On("GetByID", mock.Anything, int64(5)).Return(ownedTour(), nil)
	bookings.On("ExistsForTour", mock.Anything, int64(5)).Return(true, nil)

	err := service.Delete(context.Background(), agency(), 5)

	assert.ErrorIs(t, err, ErrHasBookings)
	tours.AssertNotCalled(t, "Delete", mock.Anything, int64(5))
}

func TestList_TouristSeesAll(t *testing.T) {
	service, tours, _, _ := newTestService()

	tours.On("ListAll", mock.Anything).Return([]domain.Tour{{ID: 1}, {ID: 2}}, nil)

	list, err := service.List(context.Background(), domain.Actor{ID: "t", Role: domain.RoleTourist})

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	tours.AssertNotCalled(t, "ListByAgency", mock.Anything, mock.Anything)
}

func TestList_AgencySeesOwn(t *testing.T) {
	service, tours, _, _ := newTestService()

	tours.On("ListByAgency", mock.Anything, "agency-1").Return([]domain.Tour{{ID: 1}}, nil)

	list, err := service.List(context.Background(), agency())

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGet_NotFound(t *testing.T) {
	service, tours, _, _ := newTestService()

	tours.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatesNormalizedToUTCMidnight(t *testing.T) {
	service, tours, _, profiles := newTestService()

	profiles.On("ExistsForUser", mock.Anything, "agency-1").Return(true, nil)
	tours.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Dates = []time.Time{time.Date(2024, 6, 1, 15, 45, 0, 0, time.UTC)}
	created, err := service.Create(context.Background(), agency(), req)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), created.AvailableDates[0].Date)
}
