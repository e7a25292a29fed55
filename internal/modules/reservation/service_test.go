package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"malaeb/internal/domain"
	"malaeb/internal/notification"
	"malaeb/internal/repository"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	if res != nil {
		res.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) HasOverlap(ctx context.Context, stadiumID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, stadiumID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockStadiumRepository struct {
	mock.Mock
}

func (m *MockStadiumRepository) GetByID(ctx context.Context, id int64) (*domain.Stadium, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stadium), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 77
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) TotalPaid(ctx context.Context, reservationID int64) (float64, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).(float64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListActiveAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Create(ctx context.Context, in notification.CreateInput) (*notification.Notification, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func managedStadium() *domain.Stadium {
	managerID := int64(50)
	return &domain.Stadium{
		ID:          5,
		NameEn:      "North Stadium",
		NameFr:      "Stade Nord",
		NameAr:      "الملعب الشمالي",
		HourlyPrice: 300,
		ManagerID:   &managerID,
		IsActive:    true,
	}
}

func newServiceWithMocks() (*Service, *MockReservationRepository, *MockStadiumRepository, *MockPaymentRepository, *MockUserRepository, *MockNotifier) {
	reservations := new(MockReservationRepository)
	stadiums := new(MockStadiumRepository)
	payments := new(MockPaymentRepository)
	users := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewService(reservations, stadiums, payments, users, notifier)
	return svc, reservations, stadiums, payments, users, notifier
}

func TestService_Create_Success_NotifiesManager(t *testing.T) {
	svc, reservations, stadiums, _, users, notifier := newServiceWithMocks()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	end := start.Add(2 * time.Hour)

	stadiums.On("GetByID", mock.Anything, int64(5)).Return(managedStadium(), nil)
	reservations.On("HasOverlap", mock.Anything, int64(5), start, end).Return(false, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(50)).Return(&domain.User{
		ID: 50, Name: "Manager", PreferredLocale: domain.LocaleFR,
	}, nil)
	notifier.On("Create", mock.Anything, mock.MatchedBy(func(in notification.CreateInput) bool {
		return in.UserID == 50 &&
			in.Type == notification.TypeReservationRequested &&
			in.Model == notification.ModelReservation &&
			in.ReferenceID == 999 &&
			in.RecipientLocale == domain.LocaleFR &&
			in.TitleEn != "" && in.TitleFr != "" && in.TitleAr != ""
	})).Return(&notification.Notification{ID: 1}, nil)

	res, err := svc.Create(context.Background(), 10, CreateReservationRequest{
		StadiumID: 5,
		StartTime: start,
		EndTime:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, 600.0, res.TotalPrice)
	assert.Equal(t, domain.ReservationPending, res.Status)
	assert.Equal(t, domain.PaymentUnpaid, res.PaymentStatus)
	notifier.AssertExpectations(t)
}

func TestService_Create_SlotUnavailable(t *testing.T) {
	svc, reservations, stadiums, _, _, notifier := newServiceWithMocks()

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(time.Hour)

	stadiums.On("GetByID", mock.Anything, int64(5)).Return(managedStadium(), nil)
	reservations.On("HasOverlap", mock.Anything, int64(5), start, end).Return(true, nil)

	_, err := svc.Create(context.Background(), 10, CreateReservationRequest{
		StadiumID: 5, StartTime: start, EndTime: end,
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	notifier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsPastOrInvertedSlot(t *testing.T) {
	svc, _, _, _, _, _ := newServiceWithMocks()

	past := time.Now().Add(-time.Hour)
	_, err := svc.Create(context.Background(), 10, CreateReservationRequest{
		StadiumID: 5, StartTime: past, EndTime: past.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	start := time.Now().Add(24 * time.Hour)
	_, err = svc.Create(context.Background(), 10, CreateReservationRequest{
		StadiumID: 5, StartTime: start, EndTime: start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestService_Create_InactiveStadium(t *testing.T) {
	svc, _, stadiums, _, _, _ := newServiceWithMocks()

	s := managedStadium()
	s.IsActive = false
	stadiums.On("GetByID", mock.Anything, int64(5)).Return(s, nil)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(context.Background(), 10, CreateReservationRequest{
		StadiumID: 5, StartTime: start, EndTime: start.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrStadiumInactive)
}

func TestService_Confirm_NotifiesOwnerInTheirLocale(t *testing.T) {
	svc, reservations, _, _, users, notifier := newServiceWithMocks()

	reservations.On("GetByID", mock.Anything, int64(999)).Return(&domain.Reservation{
		ID: 999, UserID: 10, StadiumID: 5, Status: domain.ReservationPending,
	}, nil)
	reservations.On("UpdateStatus", mock.Anything, int64(999), domain.ReservationConfirmed, "").Return(nil)
	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{
		ID: 10, PreferredLocale: domain.LocaleAR,
	}, nil)
	notifier.On("Create", mock.Anything, mock.MatchedBy(func(in notification.CreateInput) bool {
		return in.UserID == 10 &&
			in.Type == notification.TypeReservationConfirmed &&
			in.RecipientLocale == domain.LocaleAR
	})).Return(&notification.Notification{ID: 2}, nil)

	err := svc.Confirm(context.Background(), 999, 50)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestService_Confirm_RejectsNonPending(t *testing.T) {
	svc, reservations, _, _, _, _ := newServiceWithMocks()

	reservations.On("GetByID", mock.Anything, int64(999)).Return(&domain.Reservation{
		ID: 999, Status: domain.ReservationCancelled,
	}, nil)

	err := svc.Confirm(context.Background(), 999, 50)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Cancel_OwnerOnlyUnlessStaff(t *testing.T) {
	svc, reservations, _, _, _, _ := newServiceWithMocks()

	reservations.On("GetByID", mock.Anything, int64(999)).Return(&domain.Reservation{
		ID: 999, UserID: 10, Status: domain.ReservationPending,
	}, nil)

	// Another regular user cannot cancel it, and learns nothing
	err := svc.Cancel(context.Background(), 999, 11, false, "")
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestService_RecordPayment_FullAmountMarksPaid(t *testing.T) {
	svc, reservations, _, payments, users, notifier := newServiceWithMocks()

	reservations.On("GetByID", mock.Anything, int64(999)).Return(&domain.Reservation{
		ID: 999, UserID: 10, StadiumID: 5, TotalPrice: 600,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	payments.On("TotalPaid", mock.Anything, int64(999)).Return(600.0, nil)
	reservations.On("UpdatePaymentStatus", mock.Anything, int64(999), domain.PaymentPaid).Return(nil)
	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{
		ID: 10, PreferredLocale: domain.LocaleEN,
	}, nil)
	notifier.On("Create", mock.Anything, mock.MatchedBy(func(in notification.CreateInput) bool {
		return in.UserID == 10 && in.Type == notification.TypePaymentReceived
	})).Return(&notification.Notification{ID: 3}, nil)

	p, err := svc.RecordPayment(context.Background(), 999, 50, RecordPaymentRequest{
		Amount: 600, Method: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), p.ID)
	reservations.AssertExpectations(t)
}

func TestService_RecordPayment_PartialAmountMarksPartial(t *testing.T) {
	svc, reservations, _, payments, users, notifier := newServiceWithMocks()

	reservations.On("GetByID", mock.Anything, int64(999)).Return(&domain.Reservation{
		ID: 999, UserID: 10, TotalPrice: 600,
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	payments.On("TotalPaid", mock.Anything, int64(999)).Return(200.0, nil)
	reservations.On("UpdatePaymentStatus", mock.Anything, int64(999), domain.PaymentPartial).Return(nil)
	users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10}, nil)
	notifier.On("Create", mock.Anything, mock.Anything).Return(&notification.Notification{ID: 4}, nil)

	_, err := svc.RecordPayment(context.Background(), 999, 50, RecordPaymentRequest{
		Amount: 200, Method: "card",
	})

	require.NoError(t, err)
	reservations.AssertExpectations(t)
}
