package response

type Product struct {
	ID                string   `json:"id"`
	Slug              string   `json:"slug"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Excerpt           string   `json:"excerpt"`
	Price             string   `json:"price"`
	FormattedPrice    string   `json:"formattedPrice"`
	Currency          string   `json:"currency"`
	Brand             string   `json:"brand"`
	Size              string   `json:"size"`
	Categories        []string `json:"categories"`
	Ingredients       []string `json:"ingredients"`
	UsageInstructions string   `json:"usageInstructions"`
	Features          []string `json:"features"`
	Benefits          []string `json:"benefits"`
	Images            []string `json:"images"`
	ImageURL          string   `json:"imageUrl"`
	ImageCandidates   []string `json:"imageCandidates"`
	URL               string   `json:"url"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
