package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/vendor-matching/internal/dto"
	"github.com/octobees/vendor-matching/internal/repository"
	"github.com/octobees/vendor-matching/internal/service"
	"github.com/octobees/vendor-matching/internal/service/intent"
)

// VendorsHandler exposes vendor catalogue endpoints.
type VendorsHandler struct {
	service *service.VendorsService
}

// NewVendorsHandler creates a new handler instance.
func NewVendorsHandler(service *service.VendorsService) *VendorsHandler {
	return &VendorsHandler{service: service}
}

// Categories handles GET /vendors/categories.
func (h *VendorsHandler) Categories(c echo.Context) error {
	return Success(c, http.StatusOK, "categories retrieved", intent.Categories())
}

// Regions handles GET /vendors/regions.
func (h *VendorsHandler) Regions(c echo.Context) error {
	return Success(c, http.StatusOK, "regions retrieved", intent.Regions())
}

// ListAdmin handles GET /admin/vendors.
func (h *VendorsHandler) ListAdmin(c echo.Context) error {
	filter := dto.VendorListFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Region:   strings.TrimSpace(c.QueryParam("region")),
		Page:     parseIntDefault(c.QueryParam("page"), 1),
		PerPage:  parseIntDefault(c.QueryParam("per_page"), 20),
	}

	if filter.Category != "" {
		if _, ok := intent.ParseCategory(filter.Category); !ok {
			return Error(c, http.StatusBadRequest, "invalid category")
		}
	}
	if filter.Region != "" {
		if _, ok := intent.ParseRegion(filter.Region); !ok {
			return Error(c, http.StatusBadRequest, "invalid region")
		}
	}
	if maxPriceStr := strings.TrimSpace(c.QueryParam("max_price")); maxPriceStr != "" {
		maxPrice, err := strconv.Atoi(maxPriceStr)
		if err != nil || maxPrice < 0 {
			return Error(c, http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPrice = &maxPrice
	}

	vendors, err := h.service.ListVendors(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list vendors")
	}

	return Success(c, http.StatusOK, "vendors retrieved", vendors)
}

// GetAdmin handles GET /admin/vendors/:id.
func (h *VendorsHandler) GetAdmin(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid vendor id")
	}

	vendor, err := h.service.GetVendor(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return Error(c, http.StatusNotFound, "vendor not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to fetch vendor")
	}

	return Success(c, http.StatusOK, "vendor retrieved", vendor)
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
