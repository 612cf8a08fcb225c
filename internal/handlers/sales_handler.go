package handlers

import (
	"net/http"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesHandler handles the read-only sales query endpoints
type SalesHandler struct {
	salesService services.SalesServiceInterface
	development  bool
}

// NewSalesHandler creates a new sales handler. development controls whether
// internal error detail is echoed back to clients.
func NewSalesHandler(salesService services.SalesServiceInterface, development bool) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		development:  development,
	}
}

// GetSales retrieves one page of sales transactions matching the requested
// filters, with pagination metadata.
func (h *SalesHandler) GetSales(c echo.Context) error {
	filters, err := parseSalesFilters(c)
	if err != nil {
		return sendFilterError(c, err)
	}

	transactions, pagination, err := h.salesService.GetSalesData(filters)
	if err != nil {
		return SendSystemError(c, err, h.development)
	}

	return c.JSON(http.StatusOK, dto.SalesListResponse{
		Success:    true,
		Data:       transactions,
		Pagination: pagination,
	})
}

// GetFilterOptions returns the distinct values of every categorical filter
// dimension, for populating filter selectors.
func (h *SalesHandler) GetFilterOptions(c echo.Context) error {
	options, err := h.salesService.GetFilterOptions()
	if err != nil {
		return SendSystemError(c, err, h.development)
	}

	return c.JSON(http.StatusOK, dto.FilterOptionsResponse{
		Success:        true,
		Regions:        options.Regions,
		Genders:        options.Genders,
		Categories:     options.Categories,
		PaymentMethods: options.PaymentMethods,
		Tags:           options.Tags,
	})
}

// GetStatistics aggregates totals over the rows matching the same filter
// parameters the listing endpoint accepts, minus sort and paging.
func (h *SalesHandler) GetStatistics(c echo.Context) error {
	filters, err := parseSalesFilters(c)
	if err != nil {
		return sendFilterError(c, err)
	}

	stats, err := h.salesService.GetStatistics(filters)
	if err != nil {
		return SendSystemError(c, err, h.development)
	}

	return c.JSON(http.StatusOK, dto.StatisticsResponse{
		Success:       true,
		TotalUnits:    stats.TotalUnits,
		TotalAmount:   stats.TotalAmount,
		TotalDiscount: stats.TotalDiscount,
	})
}
