package services

import (
	"context"
	"errors"
	"testing"

	"turakBack/internal/models"
)

// fakeReservationStore mirrors the repository's inclusive-overlap semantics
// in memory.
type fakeReservationStore struct {
	reservations []models.Reservation
	nextID       int
	createCalls  int
}

func (f *fakeReservationStore) GetActiveReservations(_ context.Context, propertyID int) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.PropertyID == propertyID && r.Status != models.ReservationCancelled {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) CreateReservation(_ context.Context, res models.Reservation) (models.Reservation, error) {
	f.createCalls++
	for _, r := range f.reservations {
		if r.PropertyID == res.PropertyID && r.Status != models.ReservationCancelled &&
			DateRangesConflict(r.StartDate, r.EndDate, res.StartDate, res.EndDate) {
			return models.Reservation{}, models.ErrDateConflict
		}
	}
	f.nextID++
	res.ID = f.nextID
	res.Status = models.ReservationPending
	f.reservations = append(f.reservations, res)
	return res, nil
}

func (f *fakeReservationStore) GetReservationByID(_ context.Context, id int) (models.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reservation{}, models.ErrReservationNotFound
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, id int, status string) (models.Reservation, error) {
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations[i].Status = status
			return f.reservations[i], nil
		}
	}
	return models.Reservation{}, models.ErrReservationNotFound
}

func (f *fakeReservationStore) DeleteReservation(_ context.Context, id int) error {
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return models.ErrReservationNotFound
}

func (f *fakeReservationStore) GetReservationsByProperty(_ context.Context, propertyID int) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) GetReservationsByUser(_ context.Context, userID int) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakePropertyStore struct {
	properties map[int]models.Property
}

func (f *fakePropertyStore) GetPropertyByID(_ context.Context, id int) (models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return p, nil
}

func newReservationService(store *fakeReservationStore) *ReservationService {
	return &ReservationService{
		ReservationRepo: store,
		PropertyRepo: &fakePropertyStore{properties: map[int]models.Property{
			1: {ID: 1, Title: "Two-room flat", UserID: 10},
		}},
	}
}

func TestCreateReservationInvalidRangeNeverReachesStore(t *testing.T) {
	store := &fakeReservationStore{}
	svc := newReservationService(store)

	_, err := svc.CreateReservation(context.Background(), models.Reservation{
		PropertyID: 1, UserID: 20, TotalPrice: 500,
		StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 1),
	})
	if !errors.Is(err, models.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if store.createCalls != 0 {
		t.Fatal("store must not be reached on invalid range")
	}
}

func TestCreateReservationRejectsNonPositivePrice(t *testing.T) {
	svc := newReservationService(&fakeReservationStore{})

	_, err := svc.CreateReservation(context.Background(), models.Reservation{
		PropertyID: 1, UserID: 20, TotalPrice: 0,
		StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 10),
	})
	if !errors.Is(err, models.ErrInvalidTotalPrice) {
		t.Fatalf("expected ErrInvalidTotalPrice, got %v", err)
	}
}

func TestCreateReservationUnknownProperty(t *testing.T) {
	svc := newReservationService(&fakeReservationStore{})

	_, err := svc.CreateReservation(context.Background(), models.Reservation{
		PropertyID: 99, UserID: 20, TotalPrice: 500,
		StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 10),
	})
	if !errors.Is(err, models.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestCreateReservationInclusiveBoundaryConflict(t *testing.T) {
	store := &fakeReservationStore{}
	svc := newReservationService(store)
	ctx := context.Background()

	first, err := svc.CreateReservation(ctx, models.Reservation{
		PropertyID: 1, UserID: 20, TotalPrice: 500,
		StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 10),
	})
	if err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	if first.Status != models.ReservationPending {
		t.Fatalf("expected pending status, got %s", first.Status)
	}
	if _, err = svc.UpdateStatus(ctx, first.ID, models.ReservationConfirmed, models.Requester{UserID: 10, Role: models.RoleUser}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// Starting on the confirmed reservation's end day is a conflict.
	_, err = svc.CreateReservation(ctx, models.Reservation{
		PropertyID: 1, UserID: 30, TotalPrice: 300,
		StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 15),
	})
	if !errors.Is(err, models.ErrDateConflict) {
		t.Fatalf("expected ErrDateConflict on shared boundary day, got %v", err)
	}

	// The day after is free.
	second, err := svc.CreateReservation(ctx, models.Reservation{
		PropertyID: 1, UserID: 30, TotalPrice: 300,
		StartDate: day(2024, 6, 11), EndDate: day(2024, 6, 15),
	})
	if err != nil {
		t.Fatalf("non-overlapping reservation rejected: %v", err)
	}

	// No two active reservations on the property may overlap.
	active, _ := store.GetActiveReservations(ctx, 1)
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			if DateRangesConflict(active[i].StartDate, active[i].EndDate, active[j].StartDate, active[j].EndDate) {
				t.Fatalf("overlapping active reservations %d and %d", active[i].ID, active[j].ID)
			}
		}
	}
	_ = second
}

func TestCheckAvailability(t *testing.T) {
	store := &fakeReservationStore{}
	svc := newReservationService(store)
	ctx := context.Background()

	ok, err := svc.CheckAvailability(ctx, 1, day(2024, 6, 1), day(2024, 6, 10))
	if err != nil || !ok {
		t.Fatalf("empty calendar must be available, ok=%v err=%v", ok, err)
	}

	if _, err := svc.CreateReservation(ctx, models.Reservation{
		PropertyID: 1, UserID: 20, TotalPrice: 500,
		StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 10),
	}); err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	ok, err = svc.CheckAvailability(ctx, 1, day(2024, 6, 5), day(2024, 6, 12))
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if ok {
		t.Fatal("expected overlap to be reported")
	}

	// A pending reservation blocks too; a cancelled one does not.
	store.reservations[0].Status = models.ReservationCancelled
	ok, err = svc.CheckAvailability(ctx, 1, day(2024, 6, 5), day(2024, 6, 12))
	if err != nil || !ok {
		t.Fatalf("cancelled reservation must not block, ok=%v err=%v", ok, err)
	}

	if _, err := svc.CheckAvailability(ctx, 1, day(2024, 6, 10), day(2024, 6, 1)); !errors.Is(err, models.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	store := &fakeReservationStore{}
	svc := newReservationService(store)
	ctx := context.Background()
	owner := models.Requester{UserID: 10, Role: models.RoleUser}  // property owner
	renter := models.Requester{UserID: 20, Role: models.RoleUser} // reservation owner
	admin := models.Requester{UserID: 99, Role: models.RoleAdmin}

	res, err := svc.CreateReservation(ctx, models.Reservation{
		PropertyID: 1, UserID: 20, TotalPrice: 500,
		StartDate: day(2024, 7, 1), EndDate: day(2024, 7, 5),
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	// The renter cannot confirm their own reservation.
	if _, err := svc.UpdateStatus(ctx, res.ID, models.ReservationConfirmed, renter); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for renter confirm, got %v", err)
	}
	// A stranger cannot touch it at all.
	stranger := models.Requester{UserID: 77, Role: models.RoleUser}
	if _, err := svc.UpdateStatus(ctx, res.ID, models.ReservationCancelled, stranger); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, res.ID, models.ReservationConfirmed, owner)
	if err != nil {
		t.Fatalf("owner confirm: %v", err)
	}
	if updated.Status != models.ReservationConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	// confirmed -> pending is a reverse transition.
	if _, err := svc.UpdateStatus(ctx, res.ID, models.ReservationPending, admin); !errors.Is(err, models.ErrTransitionNotAllowed) {
		t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
	}

	// The renter may cancel their confirmed reservation.
	updated, err = svc.UpdateStatus(ctx, res.ID, models.ReservationCancelled, renter)
	if err != nil {
		t.Fatalf("renter cancel: %v", err)
	}
	if updated.Status != models.ReservationCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}

	// Cancelled is terminal, even for an admin.
	for _, target := range []string{models.ReservationPending, models.ReservationConfirmed} {
		if _, err := svc.UpdateStatus(ctx, res.ID, target, admin); !errors.Is(err, models.ErrTransitionNotAllowed) {
			t.Fatalf("expected cancelled -> %s to fail, got %v", target, err)
		}
	}

	// Unknown status value.
	if _, err := svc.UpdateStatus(ctx, res.ID, "approved", admin); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDeleteReservationAuthorization(t *testing.T) {
	store := &fakeReservationStore{}
	svc := newReservationService(store)
	ctx := context.Background()

	res, err := svc.CreateReservation(ctx, models.Reservation{
		PropertyID: 1, UserID: 20, TotalPrice: 500,
		StartDate: day(2024, 8, 1), EndDate: day(2024, 8, 5),
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	if err := svc.DeleteReservation(ctx, res.ID, models.Requester{UserID: 30, Role: models.RoleUser}); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteReservation(ctx, res.ID, models.Requester{UserID: 20, Role: models.RoleUser}); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.DeleteReservation(ctx, res.ID, models.Requester{UserID: 99, Role: models.RoleAdmin}); !errors.Is(err, models.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound after delete, got %v", err)
	}
}
