package models

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

// CreateSpaceRequest запрос на создание помещения
type CreateSpaceRequest struct {
	Name        string
	Description string
	Capacity    int
	Type        string
}

// UpdateSpaceRequest запрос на обновление помещения
type UpdateSpaceRequest struct {
	Name        string
	Description string
	Capacity    int
	Type        string
}

// SetActiveRequest запрос на активацию/деактивацию помещения
type SetActiveRequest struct {
	Active bool
	Reason *string
}

// SearchRequest параметры поиска помещений
type SearchRequest struct {
	Query      string
	TypeFilter *string
}

// SpaceResponse помещение в ответе сервиса
type SpaceResponse struct {
	ID                 int64
	Name               string
	Description        string
	Capacity           int
	Type               string
	Active             bool
	DeactivationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SpaceListResponse список помещений
type SpaceListResponse struct {
	Spaces []*SpaceResponse
}

// FromDomainSpace конвертирует доменную модель в ответ сервиса
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	return &SpaceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		Capacity:           s.Capacity,
		Type:               string(s.Type),
		Active:             s.Active,
		DeactivationReason: s.DeactivationReason,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список помещений
func FromDomainSpaceList(list []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{Spaces: make([]*SpaceResponse, 0, len(list))}
	for _, s := range list {
		resp.Spaces = append(resp.Spaces, FromDomainSpace(s))
	}
	return resp
}
