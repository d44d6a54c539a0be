package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID                string             `json:"id"`
	Position          int32              `json:"position"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Price             string             `json:"price"`
	Currency          string             `json:"currency"`
	Category          string             `json:"category"`
	Brand             string             `json:"brand"`
	Size              string             `json:"size"`
	Ingredients       []string           `json:"ingredients"`
	UsageInstructions string             `json:"usage_instructions"`
	Features          []string           `json:"features"`
	Benefits          []string           `json:"benefits"`
	Images            []string           `json:"images"`
	ImagePaths        []string           `json:"image_paths"`
	MetaTitle         string             `json:"meta_title"`
	MetaDescription   string             `json:"meta_description"`
	Url               string             `json:"url"`
	ScrapedAt         string             `json:"scraped_at"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}
