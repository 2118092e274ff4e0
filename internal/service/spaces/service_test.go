package spaces

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	spaceStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
)

type fakeSpaceRepo struct {
	spaces    []*domain.Space
	createErr error
	updateErr error
	nextID    int64

	created      *domain.Space
	updated      *domain.Space
	activeID     int64
	activeValue  bool
	activeReason *string
	deletedID    int64
	repoErr      error
}

func (f *fakeSpaceRepo) Create(_ context.Context, space *domain.Space) (*domain.Space, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *space
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id int64) (*domain.Space, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	for _, s := range f.spaces {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, spaceStorage.ErrSpaceNotFound
}

func (f *fakeSpaceRepo) List(_ context.Context) ([]*domain.Space, error) {
	return f.spaces, nil
}

func (f *fakeSpaceRepo) Update(_ context.Context, space *domain.Space) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = space
	return nil
}

func (f *fakeSpaceRepo) SetActive(_ context.Context, id int64, active bool, reason *string) error {
	if f.repoErr != nil {
		return f.repoErr
	}
	f.activeID = id
	f.activeValue = active
	f.activeReason = reason
	return nil
}

func (f *fakeSpaceRepo) SoftDelete(_ context.Context, id int64) error {
	if f.repoErr != nil {
		return f.repoErr
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateSpaceRequest {
	return &models.CreateSpaceRequest{
		Name:        "Большая аудитория",
		Description: "Аудитория на первом этаже",
		Capacity:    80,
		Type:        string(domain.SpaceAuditorium),
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeSpaceRepo{nextID: 1}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Большая аудитория", resp.Name)
	// Новое помещение сразу доступно для бронирования
	assert.True(t, resp.Active)
}

func TestCreate_TrimsName(t *testing.T) {
	repo := &fakeSpaceRepo{nextID: 1}
	svc := NewService(repo, nopLogger{})

	req := validCreateRequest()
	req.Name = "  Часовня  "

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Часовня", resp.Name)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &fakeSpaceRepo{createErr: spaceStorage.ErrDuplicateName}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateSpaceRequest)
	}{
		{"empty name", func(r *models.CreateSpaceRequest) { r.Name = "   " }},
		{"zero capacity", func(r *models.CreateSpaceRequest) { r.Capacity = 0 }},
		{"negative capacity", func(r *models.CreateSpaceRequest) { r.Capacity = -5 }},
		{"unknown type", func(r *models.CreateSpaceRequest) { r.Type = "garage" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSpaceRepo{}, nopLogger{})

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_DeletedHidden(t *testing.T) {
	repo := &fakeSpaceRepo{spaces: []*domain.Space{
		{ID: 1, Name: "Склад", Deleted: true},
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeSpaceRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeSpaceRepo{spaces: []*domain.Space{
		{ID: 1, Name: "Старое имя", Capacity: 30, Type: domain.SpaceAuditorium, Active: true},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateSpaceRequest{
		Name:        "Новое имя",
		Description: "Обновлено",
		Capacity:    45,
		Type:        string(domain.SpaceMultipurpose),
	})
	require.NoError(t, err)

	assert.Equal(t, "Новое имя", resp.Name)
	assert.Equal(t, 45, resp.Capacity)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.SpaceMultipurpose, repo.updated.Type)
}

func TestUpdate_DuplicateName(t *testing.T) {
	repo := &fakeSpaceRepo{
		spaces:    []*domain.Space{{ID: 1, Name: "Зал", Capacity: 30, Type: domain.SpaceEventHall, Active: true}},
		updateErr: spaceStorage.ErrDuplicateName,
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateSpaceRequest{
		Name: "Занятое имя", Capacity: 30, Type: string(domain.SpaceEventHall),
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSetActive_DeactivationRequiresReason(t *testing.T) {
	svc := NewService(&fakeSpaceRepo{}, nopLogger{})

	err := svc.SetActive(context.Background(), 1, &models.SetActiveRequest{Active: false})
	assert.ErrorIs(t, err, ErrReasonRequired)

	err = svc.SetActive(context.Background(), 1, &models.SetActiveRequest{Active: false, Reason: ptr.Ptr("   ")})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestSetActive_DeactivationStoresReason(t *testing.T) {
	repo := &fakeSpaceRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.SetActive(context.Background(), 1, &models.SetActiveRequest{
		Active: false,
		Reason: ptr.Ptr("ремонт кровли"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.activeID)
	assert.False(t, repo.activeValue)
	require.NotNil(t, repo.activeReason)
	assert.Equal(t, "ремонт кровли", *repo.activeReason)
}

func TestSetActive_ActivationWithoutReason(t *testing.T) {
	repo := &fakeSpaceRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.SetActive(context.Background(), 1, &models.SetActiveRequest{Active: true})
	require.NoError(t, err)
	assert.True(t, repo.activeValue)
}

func TestSetActive_NotFound(t *testing.T) {
	repo := &fakeSpaceRepo{repoErr: spaceStorage.ErrSpaceNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.SetActive(context.Background(), 404, &models.SetActiveRequest{Active: true})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestSoftDelete_Success(t *testing.T) {
	repo := &fakeSpaceRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.SoftDelete(context.Background(), 7))
	assert.Equal(t, int64(7), repo.deletedID)
}

func TestSearch_DiacriticInsensitive(t *testing.T) {
	repo := &fakeSpaceRepo{spaces: []*domain.Space{
		{ID: 1, Name: "Auditório Principal", Type: domain.SpaceAuditorium},
		{ID: 2, Name: "Capela São José", Type: domain.SpaceChapel},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Query: "auditorio"})
	require.NoError(t, err)
	require.Len(t, resp.Spaces, 1)
	assert.Equal(t, int64(1), resp.Spaces[0].ID)

	resp, err = svc.Search(context.Background(), &models.SearchRequest{Query: "sao"})
	require.NoError(t, err)
	require.Len(t, resp.Spaces, 1)
	assert.Equal(t, int64(2), resp.Spaces[0].ID)
}

func TestSearch_MatchesDescription(t *testing.T) {
	repo := &fakeSpaceRepo{spaces: []*domain.Space{
		{ID: 1, Name: "Зал №1", Description: "Подходит для репетиций хора", Type: domain.SpaceEventHall},
		{ID: 2, Name: "Зал №2", Description: "Лекции и семинары", Type: domain.SpaceEventHall},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Query: "хора"})
	require.NoError(t, err)
	require.Len(t, resp.Spaces, 1)
	assert.Equal(t, int64(1), resp.Spaces[0].ID)
}

func TestSearch_TypeFilter(t *testing.T) {
	repo := &fakeSpaceRepo{spaces: []*domain.Space{
		{ID: 1, Name: "Аудитория", Type: domain.SpaceAuditorium},
		{ID: 2, Name: "Часовня", Type: domain.SpaceChapel},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Search(context.Background(), &models.SearchRequest{
		TypeFilter: ptr.Ptr(string(domain.SpaceChapel)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Spaces, 1)
	assert.Equal(t, int64(2), resp.Spaces[0].ID)
}

func TestSearch_InvalidTypeFilter(t *testing.T) {
	svc := NewService(&fakeSpaceRepo{}, nopLogger{})

	_, err := svc.Search(context.Background(), &models.SearchRequest{
		TypeFilter: ptr.Ptr("garage"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	repo := &fakeSpaceRepo{spaces: []*domain.Space{
		{ID: 1, Name: "Аудитория", Type: domain.SpaceAuditorium},
		{ID: 2, Name: "Часовня", Type: domain.SpaceChapel},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Search(context.Background(), &models.SearchRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Spaces, 2)
}

func TestFoldString(t *testing.T) {
	assert.Equal(t, "auditorio", foldString(" Auditório "))
	assert.Equal(t, "sao jose", foldString("São José"))
	assert.Equal(t, "часовня", foldString("ЧАСОВНЯ"))
}
