package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
)

// Catalog searches the products table with the normalized filter set.
type Catalog struct {
	db *DB
}

func NewCatalog(db *DB) *Catalog { return &Catalog{db: db} }

func (c *Catalog) SearchProducts(ctx context.Context, f filters.Filters, requestID string) ([]filters.ProductSummary, error) {
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, val interface{}) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Metal != "" {
		add("metal = $%d", f.Metal)
	}
	if f.Stone != "" {
		add("stone = $%d", f.Stone)
	}
	if f.ReadyToShip != nil {
		add("ready_to_ship = $%d", *f.ReadyToShip)
	}
	if f.Featured != nil {
		add("featured = $%d", *f.Featured)
	}
	if f.PriceMin != nil {
		add("price >= $%d", *f.PriceMin)
	}
	if ceiling := f.Ceiling(); ceiling > 0 {
		add("price <= $%d", ceiling)
	}
	for _, tag := range f.Tags {
		add("$%d = ANY(tags)", tag)
	}
	for _, mat := range f.Materials {
		add("$%d = ANY(materials)", mat)
	}
	if f.Q != "" {
		add("title ILIKE '%%' || $%d || '%%'", f.Q)
	}

	query := `SELECT id, title, price, COALESCE(image_url, ''), tags, COALESCE(shipping_promise, ''), slug
FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += orderClause(f.SortBy)

	limit := f.Limit
	if limit <= 0 {
		limit = filters.DefaultLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := c.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var out []filters.ProductSummary
	for rows.Next() {
		var p filters.ProductSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.Tags, &p.ShippingPromise, &p.Slug); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func orderClause(sortBy string) string {
	switch sortBy {
	case filters.SortPriceAsc:
		return " ORDER BY price ASC, id"
	case filters.SortPriceDesc:
		return " ORDER BY price DESC, id"
	case filters.SortNewest:
		return " ORDER BY created_at DESC, id"
	default:
		return " ORDER BY featured DESC, created_at DESC, id"
	}
}
