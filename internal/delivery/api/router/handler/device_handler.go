package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for push device handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// RegisterDevice handles POST /api/devices. Registering the same deviceId
// again refreshes its token, so clients call it on every launch.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), principal.AccountID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// GetDevices handles GET /api/devices
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	devices, err := h.deviceUC.GetDevices(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles PUT /api/devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	deviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), principal.AccountID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated successfully"})
}

// DeactivateDevice handles DELETE /api/devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	deviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), principal.AccountID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
