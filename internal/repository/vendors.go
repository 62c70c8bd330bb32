package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/vendor-matching/internal/dto"
	"github.com/octobees/vendor-matching/internal/entity"
)

// VendorsRepository describes read access to the vendor catalogue.
type VendorsRepository interface {
	FindVendors(ctx context.Context, category, region string, priceCeiling *int) ([]entity.Vendor, error)
	List(ctx context.Context, filter dto.VendorListFilter) ([]entity.Vendor, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
}

// ErrVendorNotFound indicates there is no vendor with the requested id.
var ErrVendorNotFound = errors.New("vendor not found")

// pgxPool is the subset of *pgxpool.Pool the repository relies on.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXVendorsRepository implements VendorsRepository using pgx.
type PGXVendorsRepository struct {
	pool pgxPool
}

// NewPGXVendorsRepository wires a pgx backed repository.
func NewPGXVendorsRepository(pool *pgxpool.Pool) *PGXVendorsRepository {
	return &PGXVendorsRepository{pool: pool}
}

const vendorColumns = `
            id,
            name,
            slug,
            category,
            region,
            city,
            price_from,
            short_description,
            style,
            main_photo_url,
            instagram_url,
            created_at,
            updated_at
`

// FindVendors returns every vendor of the category in the region, in
// catalogue order. With a price ceiling, vendors priced above it are dropped
// while vendors without a price are kept.
func (r *PGXVendorsRepository) FindVendors(ctx context.Context, category, region string, priceCeiling *int) ([]entity.Vendor, error) {
	query := strings.Builder{}
	query.WriteString("SELECT")
	query.WriteString(vendorColumns)
	query.WriteString("FROM vendors WHERE category = $1 AND region = $2")

	args := []any{category, region}
	if priceCeiling != nil {
		query.WriteString(" AND (price_from IS NULL OR price_from <= $3)")
		args = append(args, *priceCeiling)
	}
	query.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("find vendors: %w", err)
	}
	defer rows.Close()

	return scanVendors(rows)
}

// List retrieves a page of vendors matching the provided filter.
func (r *PGXVendorsRepository) List(ctx context.Context, filter dto.VendorListFilter) ([]entity.Vendor, error) {
	baseQuery := strings.Builder{}
	baseQuery.WriteString("SELECT")
	baseQuery.WriteString(vendorColumns)
	baseQuery.WriteString("FROM vendors")

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", idx))
		args = append(args, filter.Category)
		idx++
	}
	if filter.Region != "" {
		clauses = append(clauses, fmt.Sprintf("region = $%d", idx))
		args = append(args, filter.Region)
		idx++
	}
	if filter.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("(price_from IS NULL OR price_from <= $%d)", idx))
		args = append(args, *filter.MaxPrice)
		idx++
	}

	if len(clauses) > 0 {
		baseQuery.WriteString(" WHERE ")
		baseQuery.WriteString(strings.Join(clauses, " AND "))
	}
	baseQuery.WriteString(" ORDER BY created_at ASC, id ASC")

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	offset := (page - 1) * perPage
	baseQuery.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, offset)

	rows, err := r.pool.Query(ctx, baseQuery.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	return scanVendors(rows)
}

// Get fetches a single vendor by id.
func (r *PGXVendorsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	rows, err := r.pool.Query(ctx, "SELECT"+vendorColumns+"FROM vendors WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	defer rows.Close()

	vendors, err := scanVendors(rows)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, ErrVendorNotFound
	}
	return &vendors[0], nil
}

func scanVendors(rows pgx.Rows) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	for rows.Next() {
		var (
			v                entity.Vendor
			slug             sql.NullString
			city             sql.NullString
			priceFrom        sql.NullInt64
			shortDescription sql.NullString
			style            sql.NullString
			mainPhotoURL     sql.NullString
			instagramURL     sql.NullString
		)

		err := rows.Scan(
			&v.ID,
			&v.Name,
			&slug,
			&v.Category,
			&v.Region,
			&city,
			&priceFrom,
			&shortDescription,
			&style,
			&mainPhotoURL,
			&instagramURL,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}

		v.Slug = nullStringToPtr(slug)
		v.City = nullStringToPtr(city)
		v.ShortDescription = nullStringToPtr(shortDescription)
		v.Style = nullStringToPtr(style)
		v.MainPhotoURL = nullStringToPtr(mainPhotoURL)
		v.InstagramURL = nullStringToPtr(instagramURL)
		if priceFrom.Valid {
			cast := int(priceFrom.Int64)
			v.PriceFrom = &cast
		}

		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendors: %w", err)
	}
	return vendors, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}
