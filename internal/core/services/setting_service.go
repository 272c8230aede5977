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

type settingService struct {
	BaseService
	settingRepo portsrepo.SettingRepository
}

// NewSettingService creates the settings service.
func NewSettingService(settingRepo portsrepo.SettingRepository) portssvc.SettingSvcFacade {
	return &settingService{settingRepo: settingRepo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) GetSetting(ctx context.Context) (*domain.Setting, error) {
	setting, err := s.settingRepo.GetOrCreateSetting(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, err
	}
	return setting, nil
}

func (s *settingService) UpdateSetting(ctx context.Context, actor *domain.User, req dto.UpdateSettingRequest) (*domain.Setting, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	setting, err := s.GetSetting(ctx)
	if err != nil {
		return nil, err
	}

	if req.IsMaintenanceMode != nil {
		setting.IsMaintenanceMode = *req.IsMaintenanceMode
	}
	if req.MaintenanceMessage != nil {
		setting.MaintenanceMessage = strings.TrimSpace(*req.MaintenanceMessage)
	}
	if req.MinAppVersion != nil {
		setting.MinAppVersion = strings.TrimSpace(*req.MinAppVersion)
	}
	setting.LastUpdatedAt = s.now()
	setting.LastUpdatedBy = actor.UserID

	if err := s.settingRepo.UpdateSetting(ctx, *setting); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, err
	}
	s.LogInfo(ctx, "Settings updated", slog.Bool("maintenance", setting.IsMaintenanceMode))
	return setting, nil
}
