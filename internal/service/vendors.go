package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/octobees/vendor-matching/internal/dto"
	"github.com/octobees/vendor-matching/internal/entity"
	"github.com/octobees/vendor-matching/internal/repository"
)

// VendorsService exposes read operations for the vendor catalogue.
type VendorsService struct {
	repo repository.VendorsRepository
}

// NewVendorsService creates a new instance of VendorsService.
func NewVendorsService(repo repository.VendorsRepository) *VendorsService {
	return &VendorsService{repo: repo}
}

// ListVendors returns vendors respecting pagination defaults.
func (s *VendorsService) ListVendors(ctx context.Context, filter dto.VendorListFilter) ([]entity.Vendor, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}
	return s.repo.List(ctx, filter)
}

// GetVendor returns a single vendor or repository.ErrVendorNotFound.
func (s *VendorsService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return s.repo.Get(ctx, id)
}
