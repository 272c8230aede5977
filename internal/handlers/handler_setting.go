package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/gin-gonic/gin"
)

type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

func newSettingHandler(ss portssvc.SettingSvcFacade) *settingHandler {
	return &settingHandler{settingService: ss}
}

// registerSettingRoutes keeps GET public so clients can show the maintenance message.
func registerSettingRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, settingService portssvc.SettingSvcFacade) {
	h := newSettingHandler(settingService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSetting)
		settings.PUT("", requireAuth, middleware.RequireAdmin(), h.updateSetting)
	}
}

// getSetting godoc
// @Summary Get system settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.SettingResponse}
// @Router /settings [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	setting, err := h.settingService.GetSetting(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to load settings")
		return
	}
	response.OK(c, "Settings retrieved", dto.ToSettingResponse(setting))
}

// updateSetting godoc
// @Summary Update system settings
// @Description Toggles maintenance mode and changes its message or the minimum app version.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=dto.SettingResponse}
// @Failure 403 {object} response.Envelope
// @Router /settings [put]
func (h *settingHandler) updateSetting(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateSettingRequest
	if !bindJSON(c, &req) {
		return
	}
	setting, err := h.settingService.UpdateSetting(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err, "Failed to update settings")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Settings updated", slog.Bool("maintenance", setting.IsMaintenanceMode))
	response.OK(c, "Settings updated", dto.ToSettingResponse(setting))
}
