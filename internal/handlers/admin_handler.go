package handlers

import (
	"net/http"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/repositories"

	"github.com/labstack/echo/v4"
)

// AdminHandler handles administrative operations on the sales table
type AdminHandler struct {
	salesRepo   repositories.SalesRepositoryInterface
	development bool
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(salesRepo repositories.SalesRepositoryInterface, development bool) *AdminHandler {
	return &AdminHandler{
		salesRepo:   salesRepo,
		development: development,
	}
}

// TruncateSales empties the sales fact table. This is an administrative
// reset before a fresh import, not a normal-path operation.
func (h *AdminHandler) TruncateSales(c echo.Context) error {
	if err := h.salesRepo.Truncate(); err != nil {
		return SendSystemError(c, err, h.development)
	}

	return c.JSON(http.StatusOK, dto.TruncateResponse{
		Success: true,
		Message: "sales_transactions truncated",
	})
}
