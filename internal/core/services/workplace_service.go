package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

// NewWorkplaceService creates a new workplace service with the provided dependencies
func NewWorkplaceService(workplaceRepo portsrepo.WorkplaceRepositoryFacade) portssvc.WorkplaceSvcFacade {
	return &workplaceService{workplaceRepo: workplaceRepo}
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// FindWorkplaceByID retrieves a workplace by its ID
func (s *workplaceService) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find workplace by ID", slog.String("workplace_id", workplaceID))
		return nil, notFound(err, "Workplace not found")
	}
	return workplace, nil
}

// ListWorkplaces returns every active workplace.
func (s *workplaceService) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces")
		return nil, err
	}
	if workplaces == nil {
		return []domain.Workplace{}, nil // Return empty slice, not nil
	}
	return workplaces, nil
}

// CreateWorkplace registers a new check-in location.
func (s *workplaceService) CreateWorkplace(ctx context.Context, actor *domain.User, req dto.CreateWorkplaceRequest) (*domain.Workplace, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	workplace := &domain.Workplace{
		Name:         strings.TrimSpace(req.Name),
		Address:      req.Address,
		RadiusMeters: req.RadiusMeters,
		AuditFields:  newAudit(s.now(), actor.UserID),
	}
	if req.Latitude != nil {
		workplace.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		workplace.Longitude = *req.Longitude
	}

	if err := s.workplaceRepo.SaveWorkplace(ctx, workplace); err != nil {
		s.LogError(ctx, err, "Failed to save workplace in repository", slog.String("workplace_name", workplace.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Workplace created successfully", slog.String("workplace_id", workplace.WorkplaceID))
	return workplace, nil
}

func (s *workplaceService) UpdateWorkplace(ctx context.Context, actor *domain.User, workplaceID string, req dto.UpdateWorkplaceRequest) (*domain.Workplace, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	workplace, err := s.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workplace.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		workplace.Address = *req.Address
	}
	if req.Latitude != nil {
		workplace.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		workplace.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		workplace.RadiusMeters = *req.RadiusMeters
	}
	touch(&workplace.AuditFields, s.now(), actor.UserID)

	if err := s.workplaceRepo.UpdateWorkplace(ctx, *workplace); err != nil {
		s.LogError(ctx, err, "Failed to update workplace", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return workplace, nil
}

func (s *workplaceService) DeleteWorkplace(ctx context.Context, actor *domain.User, workplaceID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.workplaceRepo.MarkWorkplaceDeleted(ctx, workplaceID, s.now(), actor.UserID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete workplace", slog.String("workplace_id", workplaceID))
		return notFound(err, "Workplace not found")
	}
	s.LogInfo(ctx, "Workplace deleted", slog.String("workplace_id", workplaceID))
	return nil
}
