package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
)

const productColumns = `id, title, description, category, tags, image_url, price, price_type, badge, is_affiliate,
	cta_buttons, sort_order, is_published, created_at, updated_at`

// ProductRepository reads published products.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository with the given database connection
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching q by ascending sort_order; ties keep insertion order.
func (r *ProductRepository) List(ctx context.Context, q store.ProductQuery) ([]models.Product, error) {
	cond := newConditions("is_published = 1")
	if q.Category != "" {
		cond.add("category = ?", q.Category)
	}
	if q.IsAffiliate != nil {
		cond.add("is_affiliate = ?", boolArg(*q.IsAffiliate))
	}
	cond.search(q.Search, "title", "description", "category")

	query := cond.limit(fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY sort_order ASC, rowid ASC`, productColumns, cond.where()), q.Limit)

	rows, err := r.db.QueryContext(ctx, query, cond.args...)
	if err != nil {
		return nil, queryError("list products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list products", err)
	}
	return products, nil
}

// Get returns the published product with the given ID.
func (r *ProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = ? AND is_published = 1`, productColumns)

	p, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) scanRow(s scanner) (*models.Product, error) {
	var (
		p           models.Product
		description sql.NullString
		imageURL    sql.NullString
		badge       sql.NullString
		priceType   string
		tags        shared.JSONList[string]
		ctas        shared.JSONList[models.ProductCTA]
	)

	err := s.Scan(&p.ID, &p.Title, &description, &p.Category, &tags, &imageURL, &p.Price, &priceType, &badge,
		&p.IsAffiliate, &ctas, &p.SortOrder, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, queryError("scan product", err)
	}

	p.Description = nullable(description)
	p.ImageURL = nullable(imageURL)
	p.Badge = nullable(badge)
	p.PriceType = models.PriceType(priceType)
	p.Tags = tags.Slice()
	p.CTAButtons = ctas.Slice()
	return &p, nil
}
