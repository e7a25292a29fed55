package reservation

import (
	"context"
	"fmt"
	"time"

	"malaeb/internal/domain"
	"malaeb/internal/notification"
	"malaeb/internal/repository"
)

type Service struct {
	reservations ReservationRepositoryInterface
	stadiums     StadiumRepositoryInterface
	payments     PaymentRepositoryInterface
	users        UserRepositoryInterface
	notifier     Notifier
}

func NewService(
	reservations ReservationRepositoryInterface,
	stadiums StadiumRepositoryInterface,
	payments PaymentRepositoryInterface,
	users UserRepositoryInterface,
	notifier Notifier,
) *Service {
	return &Service{
		reservations: reservations,
		stadiums:     stadiums,
		payments:     payments,
		users:        users,
		notifier:     notifier,
	}
}

// Create books a stadium slot and notifies the party responsible for
// approving it (the stadium manager, or every admin when unmanaged).
func (s *Service) Create(ctx context.Context, userID int64, req CreateReservationRequest) (*domain.Reservation, error) {
	if !req.EndTime.After(req.StartTime) || req.StartTime.Before(time.Now()) {
		return nil, ErrInvalidSlot
	}

	stadium, err := s.stadiums.GetByID(ctx, req.StadiumID)
	if err != nil {
		return nil, err
	}
	if !stadium.IsActive {
		return nil, ErrStadiumInactive
	}

	busy, err := s.reservations.HasOverlap(ctx, stadium.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, ErrSlotUnavailable
	}

	hours := req.EndTime.Sub(req.StartTime).Hours()
	res := &domain.Reservation{
		StadiumID:     stadium.ID,
		UserID:        userID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        domain.ReservationPending,
		PaymentStatus: domain.PaymentUnpaid,
		TotalPrice:    hours * stadium.HourlyPrice,
		Notes:         req.Notes,
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	if err := s.notifyRequested(ctx, res, stadium); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *Service) notifyRequested(ctx context.Context, res *domain.Reservation, stadium *domain.Stadium) error {
	var recipients []domain.User
	if stadium.ManagerID != nil {
		manager, err := s.users.GetByID(ctx, *stadium.ManagerID)
		if err != nil {
			return err
		}
		recipients = []domain.User{*manager}
	} else {
		admins, err := s.users.ListActiveAdmins(ctx)
		if err != nil {
			return err
		}
		recipients = admins
	}

	actor := res.UserID
	link := fmt.Sprintf("/dashboard/reservations/%d", res.ID)
	slot := res.StartTime.Format("2006-01-02 15:04")

	for _, r := range recipients {
		_, err := s.notifier.Create(ctx, notification.CreateInput{
			UserID:          r.ID,
			RecipientLocale: r.PreferredLocale,
			ActorUserID:     &actor,
			Type:            notification.TypeReservationRequested,
			Model:           notification.ModelReservation,
			ReferenceID:     res.ID,
			TitleEn:         "New reservation request",
			TitleFr:         "Nouvelle demande de réservation",
			TitleAr:         "طلب حجز جديد",
			MessageEn:       fmt.Sprintf("%s requested on %s", stadium.NameEn, slot),
			MessageFr:       fmt.Sprintf("%s demandé le %s", stadium.NameFr, slot),
			MessageAr:       fmt.Sprintf("تم طلب %s بتاريخ %s", stadium.NameAr, slot),
			Link:            &link,
			Metadata: map[string]any{
				"stadium_id": stadium.ID,
				"start_time": res.StartTime.Format(time.RFC3339),
				"end_time":   res.EndTime.Format(time.RFC3339),
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Confirm moves a pending reservation to confirmed and notifies its owner.
func (s *Service) Confirm(ctx context.Context, id, actorID int64) error {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.Status != domain.ReservationPending {
		return ErrInvalidTransition
	}

	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationConfirmed, ""); err != nil {
		return err
	}

	return s.notifyOwner(ctx, res, actorID, notification.TypeReservationConfirmed,
		"Reservation confirmed", "Réservation confirmée", "تم تأكيد الحجز",
		"Your reservation has been confirmed",
		"Votre réservation a été confirmée",
		"تم تأكيد حجزك")
}

// Cancel moves a reservation to cancelled and notifies its owner. Allowed
// from pending or confirmed; non-staff callers may only cancel their own.
func (s *Service) Cancel(ctx context.Context, id, actorID int64, isStaff bool, reason string) error {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isStaff && res.UserID != actorID {
		// Hidden rather than forbidden, same as a read
		return repository.ErrReservationNotFound
	}
	if res.Status != domain.ReservationPending && res.Status != domain.ReservationConfirmed {
		return ErrInvalidTransition
	}

	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationCancelled, reason); err != nil {
		return err
	}

	msgEn := "Your reservation has been cancelled"
	msgFr := "Votre réservation a été annulée"
	msgAr := "تم إلغاء حجزك"
	if reason != "" {
		msgEn = msgEn + ": " + reason
		msgFr = msgFr + " : " + reason
		msgAr = msgAr + ": " + reason
	}

	return s.notifyOwner(ctx, res, actorID, notification.TypeReservationCancelled,
		"Reservation cancelled", "Réservation annulée", "تم إلغاء الحجز",
		msgEn, msgFr, msgAr)
}

func (s *Service) notifyOwner(
	ctx context.Context,
	res *domain.Reservation,
	actorID int64,
	t notification.Type,
	titleEn, titleFr, titleAr, msgEn, msgFr, msgAr string,
) error {
	owner, err := s.users.GetByID(ctx, res.UserID)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("/reservations/%d", res.ID)

	_, err = s.notifier.Create(ctx, notification.CreateInput{
		UserID:          owner.ID,
		RecipientLocale: owner.PreferredLocale,
		ActorUserID:     &actorID,
		Type:            t,
		Model:           notification.ModelReservation,
		ReferenceID:     res.ID,
		TitleEn:         titleEn,
		TitleFr:         titleFr,
		TitleAr:         titleAr,
		MessageEn:       msgEn,
		MessageFr:       msgFr,
		MessageAr:       msgAr,
		Link:            &link,
		Metadata:        map[string]any{"stadium_id": res.StadiumID},
	})
	return err
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reservations.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// RecordPayment stores a payment row, rolls the reservation's aggregate
// payment status forward, and notifies the reservation owner.
func (s *Service) RecordPayment(ctx context.Context, reservationID, recordedBy int64, req RecordPaymentRequest) (*domain.Payment, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		ReservationID: res.ID,
		Amount:        req.Amount,
		Method:        domain.PaymentMethod(req.Method),
		RecordedBy:    recordedBy,
		Reference:     req.Reference,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	total, err := s.payments.TotalPaid(ctx, res.ID)
	if err != nil {
		return nil, err
	}

	status := domain.PaymentPartial
	if total >= res.TotalPrice {
		status = domain.PaymentPaid
	}
	if err := s.reservations.UpdatePaymentStatus(ctx, res.ID, status); err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, res.UserID)
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("/reservations/%d", res.ID)
	_, err = s.notifier.Create(ctx, notification.CreateInput{
		UserID:          owner.ID,
		RecipientLocale: owner.PreferredLocale,
		ActorUserID:     &recordedBy,
		Type:            notification.TypePaymentReceived,
		Model:           notification.ModelPayment,
		ReferenceID:     p.ID,
		TitleEn:         "Payment received",
		TitleFr:         "Paiement reçu",
		TitleAr:         "تم استلام الدفعة",
		MessageEn:       fmt.Sprintf("We received %.2f for your reservation", req.Amount),
		MessageFr:       fmt.Sprintf("Nous avons reçu %.2f pour votre réservation", req.Amount),
		MessageAr:       fmt.Sprintf("استلمنا %.2f لقاء حجزك", req.Amount),
		Link:            &link,
		Metadata:        map[string]any{"reservation_id": res.ID, "amount": req.Amount},
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) ListPayments(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	if _, err := s.reservations.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}
	return s.payments.ListByReservation(ctx, reservationID)
}
