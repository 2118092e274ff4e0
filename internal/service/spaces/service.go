package spaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	spaceRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

// Service сервис реестра помещений
type Service struct {
	spaceRepo SpaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса помещений
func NewService(spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// Create создает новое помещение
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%q type=%s capacity=%d", req.Name, req.Type, req.Capacity)

	spaceType, err := validateSpaceFields(req.Name, req.Description, req.Capacity, req.Type)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	space := &domain.Space{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Capacity:    req.Capacity,
		Type:        spaceType,
		Active:      true,
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateName) {
			s.logger.Warn("Create: space name=%q already taken", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает помещение по ID.
// Удалённые помещения не возвращаются.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSpace(space), nil
}

// Update обновляет основные поля помещения
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d", id)

	spaceType, err := validateSpaceFields(req.Name, req.Description, req.Capacity, req.Type)
	if err != nil {
		s.logger.Warn("Update: validation failed for space id=%d: %v", id, err)
		return nil, err
	}

	space, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	space.Name = strings.TrimSpace(req.Name)
	space.Description = req.Description
	space.Capacity = req.Capacity
	space.Type = spaceType

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateName) {
			s.logger.Warn("Update: space name=%q already taken", req.Name)
			return nil, ErrDuplicateName
		}
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated space id=%d", id)
	return models.FromDomainSpace(space), nil
}

// SetActive активирует или деактивирует помещение.
// При деактивации причина обязательна и сохраняется; при активации очищается.
// Существующие брони не затрагиваются — деактивация лишь закрывает помещение
// для новых бронирований.
func (s *Service) SetActive(ctx context.Context, id int64, req *models.SetActiveRequest) error {
	s.logger.Info("SetActive: space id=%d active=%t", id, req.Active)

	if !req.Active && (req.Reason == nil || strings.TrimSpace(*req.Reason) == "") {
		s.logger.Warn("SetActive: deactivation of space id=%d without reason", id)
		return ErrReasonRequired
	}

	if err := s.spaceRepo.SetActive(ctx, id, req.Active, req.Reason); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("SetActive: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("SetActive: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: space id=%d now active=%t", id, req.Active)
	return nil
}

// SoftDelete помечает помещение удалённым.
// Запись остается разрешимой по id для исторических бронирований.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	s.logger.Info("SoftDelete: deleting space id=%d", id)

	if err := s.spaceRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("SoftDelete: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("SoftDelete: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SoftDelete: space id=%d marked deleted", id)
	return nil
}

// Search ищет помещения по подстроке имени или описания.
// Поиск нечувствителен к регистру и диакритике ("Auditório" находится
// по запросу "auditorio"). Результаты — в порядке создания.
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.SpaceListResponse, error) {
	if req.TypeFilter != nil && !domain.SpaceType(*req.TypeFilter).IsValid() {
		s.logger.Warn("Search: invalid type filter=%q", *req.TypeFilter)
		return nil, fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, *req.TypeFilter)
	}

	all, err := s.spaceRepo.List(ctx)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	query := foldString(req.Query)

	matched := make([]*domain.Space, 0, len(all))
	for _, space := range all {
		if req.TypeFilter != nil && space.Type != domain.SpaceType(*req.TypeFilter) {
			continue
		}
		if query != "" &&
			!strings.Contains(foldString(space.Name), query) &&
			!strings.Contains(foldString(space.Description), query) {
			continue
		}
		matched = append(matched, space)
	}

	s.logger.Info("Search: query=%q matched %d of %d spaces", req.Query, len(matched), len(all))
	return models.FromDomainSpaceList(matched), nil
}

// getExisting получает помещение и скрывает удалённые
func (s *Service) getExisting(ctx context.Context, id int64) (*domain.Space, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if space.Deleted {
		s.logger.Warn("space id=%d is deleted", id)
		return nil, ErrSpaceNotFound
	}

	return space, nil
}

// validateSpaceFields валидирует поля помещения и возвращает тип
func validateSpaceFields(name, description string, capacity int, spaceType string) (domain.SpaceType, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if len(name) > domain.MaxTitleLength {
		return "", fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(description) > domain.MaxDescriptionLength {
		return "", fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if capacity <= 0 {
		return "", fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	st := domain.SpaceType(spaceType)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, spaceType)
	}

	return st, nil
}
