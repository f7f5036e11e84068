package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
	"github.com/autodazzle/detailing-backend-go/internal/pkg/database"
)

type catalogRepositoryImpl struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.ServiceRepository {
	return &catalogRepositoryImpl{db: db}
}

func (r *catalogRepositoryImpl) Create(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO services (name, sku, category, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, sku, category, active, created_at, updated_at
	`

	var created catalog.Service
	err := q.QueryRow(ctx, query, s.Name, s.SKU, s.Category, s.Active).Scan(
		&created.ID, &created.Name, &created.SKU, &created.Category,
		&created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_services_sku") {
			return catalog.Service{}, catalog.ErrServiceSKUExists
		}
		return catalog.Service{}, fmt.Errorf("failed to create catalog service: %w", err)
	}

	return created, nil
}

func (r *catalogRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, sku, category, active, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var s catalog.Service
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.SKU, &s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Service{}, catalog.ErrServiceNotFound
		}
		return catalog.Service{}, fmt.Errorf("failed to get catalog service: %w", err)
	}

	return s, nil
}

func (r *catalogRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, sku, category, active, created_at, updated_at
		FROM services
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY category, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		var s catalog.Service
		err := rows.Scan(&s.ID, &s.Name, &s.SKU, &s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *catalogRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(1) FROM services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count catalog services: %w", err)
	}
	return count, nil
}
