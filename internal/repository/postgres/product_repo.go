package postgres

import (
	"context"
	"fmt"
	"time"

	"kamenpro-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the part of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type productRepo struct {
	db Querier
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductSource {
	return &productRepo{db: db}
}

// NewProductRepositoryWithQuerier is used by tests and by callers holding a
// single connection or transaction.
func NewProductRepositoryWithQuerier(db Querier) domain.ProductSource {
	return &productRepo{db: db}
}

func (r *productRepo) Name() string {
	return "postgres"
}

// ListProductPages returns every product with its main image, ordered by name.
func (r *productRepo) ListProductPages(ctx context.Context) ([]domain.ProductPage, error) {
	query := `
		SELECT
			p.id::text,
			p.naziv,
			COALESCE(p.datum_azuriranja, p.datum_kreiranja),
			COALESCE(s.url_slike, ''),
			COALESCE(s.alt_tekst, '')
		FROM proizvodi p
		LEFT JOIN LATERAL (
			SELECT url_slike, alt_tekst
			FROM slike_proizvoda
			WHERE proizvod_id = p.id
			ORDER BY glavna_slika DESC, redosled_prikaza ASC
			LIMIT 1
		) s ON true
		ORDER BY p.naziv`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var pages []domain.ProductPage
	for rows.Next() {
		var (
			p         domain.ProductPage
			updatedAt *time.Time
		)
		if err := rows.Scan(&p.ID, &p.Name, &updatedAt, &p.ImageURL, &p.ImageTitle); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if updatedAt != nil {
			p.UpdatedAt = *updatedAt
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return pages, nil
}
