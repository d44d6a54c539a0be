package repository

import (
	"context"
)

const productColumns = `id, position, name, description, price, currency, category, brand, size,
	ingredients, usage_instructions, features, benefits, images, image_paths,
	meta_title, meta_description, url, scraped_at, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Position,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Currency,
		&i.Category,
		&i.Brand,
		&i.Size,
		&i.Ingredients,
		&i.UsageInstructions,
		&i.Features,
		&i.Benefits,
		&i.Images,
		&i.ImagePaths,
		&i.MetaTitle,
		&i.MetaDescription,
		&i.Url,
		&i.ScrapedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findProducts = `-- name: FindProducts :many
SELECT ` + productColumns + `
FROM products
ORDER BY position, id`

func (q *Queries) FindProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteProductsNotIn = `-- name: DeleteProductsNotIn :execrows
DELETE FROM products
WHERE NOT (id = ANY($1::text[]))`

func (q *Queries) DeleteProductsNotIn(ctx context.Context, ids []string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProductsNotIn, ids)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countProducts = `-- name: CountProducts :one
SELECT count(*) FROM products`

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countProducts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const upsertProduct = `-- name: UpsertProduct :one
INSERT INTO products (
	id, position, name, description, price, currency, category, brand, size,
	ingredients, usage_instructions, features, benefits, images, image_paths,
	meta_title, meta_description, url, scraped_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
)
ON CONFLICT (id) DO UPDATE SET
	position = EXCLUDED.position,
	name = EXCLUDED.name,
	description = EXCLUDED.description,
	price = EXCLUDED.price,
	currency = EXCLUDED.currency,
	category = EXCLUDED.category,
	brand = EXCLUDED.brand,
	size = EXCLUDED.size,
	ingredients = EXCLUDED.ingredients,
	usage_instructions = EXCLUDED.usage_instructions,
	features = EXCLUDED.features,
	benefits = EXCLUDED.benefits,
	images = EXCLUDED.images,
	image_paths = EXCLUDED.image_paths,
	meta_title = EXCLUDED.meta_title,
	meta_description = EXCLUDED.meta_description,
	url = EXCLUDED.url,
	scraped_at = EXCLUDED.scraped_at,
	updated_at = now()
RETURNING ` + productColumns

type UpsertProductParams struct {
	ID                string   `json:"id"`
	Position          int32    `json:"position"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             string   `json:"price"`
	Currency          string   `json:"currency"`
	Category          string   `json:"category"`
	Brand             string   `json:"brand"`
	Size              string   `json:"size"`
	Ingredients       []string `json:"ingredients"`
	UsageInstructions string   `json:"usage_instructions"`
	Features          []string `json:"features"`
	Benefits          []string `json:"benefits"`
	Images            []string `json:"images"`
	ImagePaths        []string `json:"image_paths"`
	MetaTitle         string   `json:"meta_title"`
	MetaDescription   string   `json:"meta_description"`
	Url               string   `json:"url"`
	ScrapedAt         string   `json:"scraped_at"`
}

func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, upsertProduct,
		arg.ID,
		arg.Position,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Currency,
		arg.Category,
		arg.Brand,
		arg.Size,
		arg.Ingredients,
		arg.UsageInstructions,
		arg.Features,
		arg.Benefits,
		arg.Images,
		arg.ImagePaths,
		arg.MetaTitle,
		arg.MetaDescription,
		arg.Url,
		arg.ScrapedAt,
	)
	return scanProduct(row)
}
