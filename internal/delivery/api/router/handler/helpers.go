package handler

import (
	"strconv"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UpdateOrderStatusRequest is the body of every order status PATCH
type UpdateOrderStatusRequest struct {
	NewStatus string `json:"newStatus" validate:"required"`
}

// ApprovalRequest resolves a pending seller or delivery application
type ApprovalRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// currentPrincipal returns the principal or writes a 401.
func currentPrincipal(c echo.Context) (*entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return principal, nil
}

func parseInt64Param(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)

	return id, err == nil && id > 0
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// parseStatuses reads ?status=a,b into order statuses. Values are validated by the usecase.
func parseStatuses(c echo.Context) []entity.OrderStatus {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil
	}

	var statuses []entity.OrderStatus
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			statuses = append(statuses, entity.OrderStatus(part))
		}
	}

	return statuses
}
