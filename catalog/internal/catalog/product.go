package catalog

import "strings"

// Product mirrors one record of the bundled products_data.json file.
type Product struct {
	URL               string   `json:"url"`
	ProductID         string   `json:"product_id"`
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
	ScrapedAt         string   `json:"scraped_at"`
	ImagesDownloaded  int      `json:"images_downloaded,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

func (p Product) lowerName() string {
	return strings.ToLower(p.Name)
}

func (p Product) lowerDescription() string {
	return strings.ToLower(p.Description)
}
