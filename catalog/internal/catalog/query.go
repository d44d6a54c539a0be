package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	SortDefault  SortOption = "default"
	SortNameAsc  SortOption = "name-asc"
	SortNameDesc SortOption = "name-desc"
	SortPopular  SortOption = "popular"
)

func (s SortOption) Valid() bool {
	switch s {
	case "", SortDefault, SortNameAsc, SortNameDesc, SortPopular:
		return true
	}
	return false
}

type Query struct {
	Search     string
	Category   string
	Sort       SortOption
	Popularity map[string]float64
}

// Query applies the category filter, then the search text, then the sort.
// When a category is selected the search only looks at name and description.
func (ctlg *Catalog) Query(q Query) []Product {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	var products []Product
	switch {
	case q.Category != "" && q.Category != AllCategories:
		products = ctlg.FilterByCategory(q.Category)
		if term != "" {
			filtered := make([]Product, 0, len(products))
			for _, p := range products {
				if strings.Contains(p.lowerName(), term) || strings.Contains(p.lowerDescription(), term) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
	case term != "":
		products = ctlg.Search(term)
	default:
		products = ctlg.All()
	}

	return Sort(products, q.Sort, q.Popularity)
}

// Sort orders products in place and returns them. Names compare with Turkish
// collation; popular orders by descending score and keeps catalog order for ties.
func Sort(products []Product, option SortOption, popularity map[string]float64) []Product {
	switch option {
	case SortNameAsc, SortNameDesc:
		collator := collate.New(language.Turkish, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			cmp := collator.CompareString(products[i].Name, products[j].Name)
			if option == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return popularity[products[i].ProductID] > popularity[products[j].ProductID]
		})
	}
	return products
}

func Paginate(products []Product, limit int, offset int) []Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(products) {
		return []Product{}
	}
	end := len(products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return products[offset:end]
}
