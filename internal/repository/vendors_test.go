package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/octobees/vendor-matching/internal/dto"
)

type stubVendorRows struct {
	remaining int
	err       error
}

func (s *stubVendorRows) Close()                                       {}
func (s *stubVendorRows) Err() error                                   { return s.err }
func (s *stubVendorRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (s *stubVendorRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *stubVendorRows) Next() bool {
	if s.remaining == 0 {
		return false
	}
	s.remaining--
	return true
}

func (s *stubVendorRows) Scan(dest ...any) error {
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	*dest[0].(*uuid.UUID) = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	*dest[1].(*string) = "Studio Lumière"
	*dest[2].(*sql.NullString) = sql.NullString{String: "studio-lumiere", Valid: true}
	*dest[3].(*string) = "Photographe"
	*dest[4].(*string) = "Auvergne-Rhône-Alpes"
	*dest[5].(*sql.NullString) = sql.NullString{String: "Lyon", Valid: true}
	*dest[6].(*sql.NullInt64) = sql.NullInt64{Int64: 1800, Valid: true}
	*dest[7].(*sql.NullString) = sql.NullString{}
	*dest[8].(*sql.NullString) = sql.NullString{String: "Bohème", Valid: true}
	*dest[9].(*sql.NullString) = sql.NullString{String: "https://cdn.example.com/1.jpg", Valid: true}
	*dest[10].(*sql.NullString) = sql.NullString{}
	*dest[11].(*time.Time) = created
	*dest[12].(*time.Time) = created
	return nil
}

func (s *stubVendorRows) Values() ([]any, error) { return nil, nil }
func (s *stubVendorRows) RawValues() [][]byte    { return nil }
func (s *stubVendorRows) Conn() *pgx.Conn        { return nil }

type capturingPool struct {
	sql  string
	args []any
	rows pgx.Rows
	err  error
}

func (p *capturingPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	p.sql = sql
	p.args = args
	if p.err != nil {
		return nil, p.err
	}
	return p.rows, nil
}

func TestScanVendors(t *testing.T) {
	vendors, err := scanVendors(&stubVendorRows{remaining: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vendors) != 1 {
		t.Fatalf("expected 1 vendor, got %d", len(vendors))
	}
	v := vendors[0]
	if v.Name != "Studio Lumière" || v.Category != "Photographe" {
		t.Fatalf("unexpected vendor: %+v", v)
	}
	if v.PriceFrom == nil || *v.PriceFrom != 1800 {
		t.Fatalf("expected price_from 1800, got %v", v.PriceFrom)
	}
	if v.ShortDescription != nil || v.InstagramURL != nil {
		t.Fatalf("expected null columns to stay nil")
	}
	if !v.HasMainPhoto() || v.HasInstagram() {
		t.Fatalf("unexpected media flags")
	}
}

func TestScanVendors_RowsError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := scanVendors(&stubVendorRows{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected rows error to propagate, got %v", err)
	}
}

func TestFindVendors_ExactFilters(t *testing.T) {
	pool := &capturingPool{rows: &stubVendorRows{remaining: 2}}
	repo := &PGXVendorsRepository{pool: pool}

	vendors, err := repo.FindVendors(context.Background(), "Photographe", "Auvergne-Rhône-Alpes", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vendors) != 2 {
		t.Fatalf("expected 2 vendors, got %d", len(vendors))
	}
	if !strings.Contains(pool.sql, "category = $1 AND region = $2") {
		t.Fatalf("expected exact category/region filter, got %s", pool.sql)
	}
	if strings.Contains(pool.sql, "price_from") && strings.Contains(pool.sql, "$3") {
		t.Fatalf("expected no price filter without ceiling: %s", pool.sql)
	}
	if len(pool.args) != 2 || pool.args[0] != "Photographe" {
		t.Fatalf("unexpected args: %+v", pool.args)
	}
}

func TestFindVendors_PriceCeilingKeepsUnpriced(t *testing.T) {
	pool := &capturingPool{rows: &stubVendorRows{}}
	repo := &PGXVendorsRepository{pool: pool}

	ceiling := 15000
	if _, err := repo.FindVendors(context.Background(), "Traiteur", "Île-de-France", &ceiling); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pool.sql, "(price_from IS NULL OR price_from <= $3)") {
		t.Fatalf("expected nullable price ceiling clause, got %s", pool.sql)
	}
	if len(pool.args) != 3 || pool.args[2] != 15000 {
		t.Fatalf("unexpected args: %+v", pool.args)
	}
}

func TestFindVendors_QueryError(t *testing.T) {
	repo := &PGXVendorsRepository{pool: &capturingPool{err: errors.New("connection refused")}}
	if _, err := repo.FindVendors(context.Background(), "DJ", "Bretagne", nil); err == nil || !strings.Contains(err.Error(), "find vendors") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestList_PaginationDefaults(t *testing.T) {
	pool := &capturingPool{rows: &stubVendorRows{}}
	repo := &PGXVendorsRepository{pool: pool}

	maxPrice := 3000
	_, err := repo.List(context.Background(), dto.VendorListFilter{Region: "Bretagne", MaxPrice: &maxPrice, PerPage: 500, Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pool.sql, "WHERE region = $1 AND (price_from IS NULL OR price_from <= $2)") {
		t.Fatalf("unexpected where clause: %s", pool.sql)
	}
	if !strings.HasSuffix(pool.sql, "LIMIT $3 OFFSET $4") {
		t.Fatalf("expected pagination placeholders, got %s", pool.sql)
	}
	if pool.args[2] != 100 || pool.args[3] != 200 {
		t.Fatalf("expected per_page capped at 100 and offset 200, got %+v", pool.args)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &PGXVendorsRepository{pool: &capturingPool{rows: &stubVendorRows{}}}
	if _, err := repo.Get(context.Background(), uuid.New()); !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}
