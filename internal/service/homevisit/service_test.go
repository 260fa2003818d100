package homevisit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
)

type fakeHomeVisitRepo struct {
	byID map[uuid.UUID]*model.HomeVisitRequest
}

func newFakeHomeVisitRepo() *fakeHomeVisitRepo {
	return &fakeHomeVisitRepo{byID: make(map[uuid.UUID]*model.HomeVisitRequest)}
}

func (f *fakeHomeVisitRepo) Create(_ context.Context, req *model.HomeVisitRequest) error {
	req.ID = uuid.New()
	cp := *req
	f.byID[req.ID] = &cp
	return nil
}

func (f *fakeHomeVisitRepo) Get(_ context.Context, id uuid.UUID) (*model.HomeVisitRequest, error) {
	visit, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *visit
	return &cp, nil
}

func (f *fakeHomeVisitRepo) ListForRequester(_ context.Context, requesterID string) ([]*model.HomeVisitRequest, error) {
	var out []*model.HomeVisitRequest
	for _, v := range f.byID {
		if v.RequesterID == requesterID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeHomeVisitRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.HomeVisitStatus) error {
	visit, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	visit.Status = status
	return nil
}

func validRequest() *model.CreateHomeVisitRequest {
	return &model.CreateHomeVisitRequest{
		RequesterID:   "user-1",
		PatientName:   "Anika Rahman",
		PatientPhone:  "01711111111",
		ServiceType:   "physiotherapy",
		PreferredDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		PreferredSlot: "10:00",
		City:          "Dhaka",
		Area:          "Banani",
		Address:       "House 12, Road 5",
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeHomeVisitRepo()
	svc := NewService(repo)

	visit, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, model.HomeVisitStatusPending, visit.Status)
	assert.NotEqual(t, uuid.Nil, visit.ID)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeHomeVisitRepo())

	req := validRequest()
	req.PreferredDate = "07-09-2026"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateRejectsPastDate(t *testing.T) {
	svc := NewService(newFakeHomeVisitRepo())

	req := validRequest()
	req.PreferredDate = "2020-01-15"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateRejectsBadBookingID(t *testing.T) {
	svc := NewService(newFakeHomeVisitRepo())

	req := validRequest()
	req.BookingID = "not-a-uuid"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCancel(t *testing.T) {
	repo := newFakeHomeVisitRepo()
	svc := NewService(repo)

	visit, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.HomeVisitStatusCancelled, cancelled.Status)

	// A second cancel is a no-op.
	again, err := svc.Cancel(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Equal(t, model.HomeVisitStatusCancelled, again.Status)
}

func TestCancelCompletedRejected(t *testing.T) {
	repo := newFakeHomeVisitRepo()
	svc := NewService(repo)

	visit, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	repo.byID[visit.ID].Status = model.HomeVisitStatusCompleted

	_, err = svc.Cancel(context.Background(), visit.ID)
	assert.Error(t, err)
}

func TestCancelUnknown(t *testing.T) {
	svc := NewService(newFakeHomeVisitRepo())

	_, err := svc.Cancel(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestListRequiresRequester(t *testing.T) {
	svc := NewService(newFakeHomeVisitRepo())

	_, err := svc.ListForRequester(context.Background(), "")
	assert.Error(t, err)
}
