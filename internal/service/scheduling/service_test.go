package scheduling

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
	"github.com/aorbo/booking-api/pkg/errors"
)

type fakeProviderRepo struct {
	providers map[uuid.UUID]*model.Provider
}

func (f *fakeProviderRepo) Create(_ context.Context, p *model.Provider) error {
	p.ID = uuid.New()
	f.providers[p.ID] = p
	return nil
}

func (f *fakeProviderRepo) Get(_ context.Context, id uuid.UUID) (*model.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProviderRepo) List(_ context.Context, _ string) ([]*model.Provider, error) {
	var out []*model.Provider
	for _, p := range f.providers {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProviderRepo) Update(_ context.Context, p *model.Provider) error {
	f.providers[p.ID] = p
	return nil
}

func (f *fakeProviderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.providers, id)
	return nil
}

// fakeLedger mirrors the postgres ledger: one mutex-guarded map keyed by
// (provider, date, slot) stands in for the unique index, so concurrent
// Create calls on the same key resolve to one winner.
type fakeLedger struct {
	mu    sync.Mutex
	byKey map[string]*model.Booking
	byID  map[uuid.UUID]*model.Booking
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		byKey: make(map[string]*model.Booking),
		byID:  make(map[uuid.UUID]*model.Booking),
	}
}

func slotKey(providerID uuid.UUID, date, slot string) string {
	return fmt.Sprintf("%s/%s/%s", providerID, date, slot)
}

func (f *fakeLedger) Create(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(b.ProviderID, b.Date, b.Slot)
	if _, exists := f.byKey[key]; exists {
		return repository.ErrDuplicateSlot
	}

	b.ID = uuid.New()
	stored := *b
	f.byKey[key] = &stored
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeLedger) Get(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeLedger) ListBookedSlots(_ context.Context, providerID uuid.UUID, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var slots []string
	for _, b := range f.byID {
		if b.ProviderID == providerID && b.Date == date && b.Status == model.BookingStatusBooked {
			slots = append(slots, b.Slot)
		}
	}
	return slots, nil
}

func (f *fakeLedger) CountBooked(_ context.Context, providerID uuid.UUID, date string) (int, error) {
	slots, _ := f.ListBookedSlots(context.Background(), providerID, date)
	return len(slots), nil
}

func (f *fakeLedger) MarkCancelled(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = model.BookingStatusCancelled
	return nil
}

func (f *fakeLedger) ListForRequester(_ context.Context, requesterID string) ([]*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.Booking
	for _, b := range f.byID {
		if b.RequesterID == requesterID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeEmitter) Emit(_ context.Context, eventType string, _ interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventType)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeLedger, *model.Provider, *fakeEmitter) {
	t.Helper()

	providers := &fakeProviderRepo{providers: make(map[uuid.UUID]*model.Provider)}
	provider := &model.Provider{
		Name:           "Dr. Rahman",
		Specialization: "Neurology",
		AvailableDays:  []string{"Mon", "Wed"},
		Hours:          "6 PM - 9 PM",
		SlotMinutes:    15,
	}
	require.NoError(t, providers.Create(context.Background(), provider))

	ledger := newFakeLedger()
	emitter := &fakeEmitter{}
	svc := NewService(providers, ledger, emitter, nil, nil)
	return svc, ledger, provider, emitter
}

func bookReq(providerID, slot string) *model.BookSlotRequest {
	return &model.BookSlotRequest{
		ProviderID:   providerID,
		Date:         "2026-09-07", // a Monday
		Slot:         slot,
		PatientName:  "Asha Begum",
		PatientPhone: "01700000000",
		RequesterID:  "user-1",
	}
}

func TestAvailableSlotsFullWindow(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	resp, err := svc.AvailableSlots(context.Background(), provider.ID.String(), "2026-09-07", 0)
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 13)
	assert.Equal(t, "18:00", resp.Slots[0])
	assert.Equal(t, "20:45", resp.Slots[12])
	assert.Empty(t, resp.Reason)
	assert.Equal(t, 15, resp.SlotMinutes)
}

func TestAvailableSlotsSubtractsBooked(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	_, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:15"))
	require.NoError(t, err)

	resp, err := svc.AvailableSlots(context.Background(), provider.ID.String(), "2026-09-07", 0)
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 12)
	assert.NotContains(t, resp.Slots, "18:15")
}

func TestAvailableSlotsOffDay(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	// 2026-09-01 is a Tuesday; the provider works Mon and Wed.
	resp, err := svc.AvailableSlots(context.Background(), provider.ID.String(), "2026-09-01", 0)
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Contains(t, resp.Reason, "Tue")
}

func TestAvailableSlotsUnparsableHours(t *testing.T) {
	svc, _, provider, _ := newTestService(t)
	provider.Hours = "whenever"

	resp, err := svc.AvailableSlots(context.Background(), provider.ID.String(), "2026-09-07", 0)
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Contains(t, resp.Reason, "format invalid")
}

func TestAvailableSlotsGranularityOverride(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	resp, err := svc.AvailableSlots(context.Background(), provider.ID.String(), "2026-09-07", 30)
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 6)
	assert.Equal(t, 30, resp.SlotMinutes)
}

func TestAvailableSlotsUnknownProvider(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.AvailableSlots(context.Background(), uuid.NewString(), "2026-09-07", 0)
	require.Error(t, err)
	assert.Equal(t, errors.KindUnknownProvider, errors.KindOf(err))
}

func TestBookSuccess(t *testing.T) {
	svc, _, provider, emitter := newTestService(t)

	booking, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.NoError(t, err)

	assert.Equal(t, 1, booking.SerialNo)
	assert.Equal(t, model.BookingStatusBooked, booking.Status)
	assert.Equal(t, "Neurology", booking.Specialization)
	assert.Equal(t, []string{model.EventBookingCreated}, emitter.events)
}

func TestBookMissingField(t *testing.T) {
	svc, ledger, provider, _ := newTestService(t)

	req := bookReq(provider.ID.String(), "18:00")
	req.PatientPhone = ""

	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingField, errors.KindOf(err))
	assert.Empty(t, ledger.byID)
}

func TestBookOffDay(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	req := bookReq(provider.ID.String(), "18:00")
	req.Date = "2026-09-01" // Tuesday

	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, errors.KindNotAvailableDay, errors.KindOf(err))
}

func TestBookInvalidWindow(t *testing.T) {
	svc, _, provider, _ := newTestService(t)
	provider.Hours = "9 PM - 6 PM"

	_, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidWindow, errors.KindOf(err))
}

func TestBookSlotNotOffered(t *testing.T) {
	svc, ledger, provider, _ := newTestService(t)

	// Off-grid time inside the window.
	_, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:07"))
	require.Error(t, err)
	assert.Equal(t, errors.KindSlotNotOffered, errors.KindOf(err))
	assert.Empty(t, ledger.byID, "ledger must not be touched for off-grid slots")
}

func TestBookSerialNumbersSequential(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	for i, slot := range []string{"18:00", "18:15", "18:30"} {
		booking, err := svc.Book(context.Background(), bookReq(provider.ID.String(), slot))
		require.NoError(t, err)
		assert.Equal(t, i+1, booking.SerialNo)
	}
}

func TestBookSameSlotConflicts(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	_, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.Error(t, err)
	assert.Equal(t, errors.KindSlotConflict, errors.KindOf(err))
}

func TestBookCancelledSlotStaysOccupied(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	booking, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), booking.ID)
	require.NoError(t, err)

	// The slot key is never released, even after cancellation.
	_, err = svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.Error(t, err)
	assert.Equal(t, errors.KindSlotConflict, errors.KindOf(err))
}

func TestBookConcurrentSameSlot(t *testing.T) {
	svc, ledger, provider, _ := newTestService(t)

	const attempts = 16
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "19:00"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.KindOf(err) == errors.KindSlotConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)

	booked, err := ledger.ListBookedSlots(context.Background(), provider.ID, "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"19:00"}, booked)
}

func TestCancelIdempotent(t *testing.T) {
	svc, _, provider, emitter := newTestService(t)

	booking, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.NoError(t, err)

	first, err := svc.Cancel(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, first.Status)

	second, err := svc.Cancel(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, second.Status)
	assert.Equal(t, first.ID, second.ID)

	// Only the first cancel emits an event.
	assert.Equal(t, []string{model.EventBookingCreated, model.EventBookingCancelled}, emitter.events)
}

func TestCancelUnknownBooking(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Cancel(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
}

func TestListBookingsRequiresRequester(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ListBookings(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingField, errors.KindOf(err))
}

func TestListBookings(t *testing.T) {
	svc, _, provider, _ := newTestService(t)

	_, err := svc.Book(context.Background(), bookReq(provider.ID.String(), "18:00"))
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), bookReq(provider.ID.String(), "18:15"))
	require.NoError(t, err)

	bookings, err := svc.ListBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
