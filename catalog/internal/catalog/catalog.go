package catalog

import (
	"regexp"
	"slices"
	"sort"
	"strings"
)

const (
	AllCategories = "all"
	FeaturedCount = 8
	RecentCount   = 6
)

var sizeInName = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?\s*(?:ml|gr|g|mg))`)

// Catalog is an immutable, indexed view over a loaded product list. All
// methods are safe for concurrent use and return fresh slices.
type Catalog struct {
	products    []Product
	rules       []Rule
	byID        map[string]int
	byRule      map[string][]int
	memberships [][]string
	categories  []Category
}

func New(products []Product, rules []Rule) *Catalog {
	ctlg := &Catalog{
		products:    slices.Clone(products),
		rules:       normalizeRules(rules),
		byID:        make(map[string]int, len(products)),
		byRule:      make(map[string][]int, len(rules)),
		memberships: make([][]string, len(products)),
	}

	for i, p := range ctlg.products {
		if _, ok := ctlg.byID[p.ProductID]; !ok {
			ctlg.byID[p.ProductID] = i
		}
		name, description := p.lowerName(), p.lowerDescription()
		for _, rule := range ctlg.rules {
			if !rule.match(name, description) {
				continue
			}
			id := rule.ID()
			ctlg.byRule[id] = append(ctlg.byRule[id], i)
			ctlg.memberships[i] = append(ctlg.memberships[i], id)
		}
	}

	ctlg.categories = make([]Category, 0, len(ctlg.rules))
	for _, rule := range ctlg.rules {
		count := len(ctlg.byRule[rule.ID()])
		if count == 0 {
			continue
		}
		ctlg.categories = append(ctlg.categories, Category{
			ID:          rule.ID(),
			Name:        rule.DisplayName(),
			Description: rule.CategoryDescription(),
			Count:       count,
		})
	}
	sort.SliceStable(ctlg.categories, func(i, j int) bool {
		return ctlg.categories[i].Count > ctlg.categories[j].Count
	})

	return ctlg
}

// normalizeRules lowercases needles and merges rules sharing an id into the
// first of them, so each category id is indexed once.
func normalizeRules(rules []Rule) []Rule {
	normalized := make([]Rule, 0, len(rules))
	byID := make(map[string]int, len(rules))
	for _, rule := range rules {
		nameNeedles := lowerAll(rule.NameContains)
		descriptionNeedles := lowerAll(rule.DescriptionContains)
		if i, ok := byID[rule.ID()]; ok {
			normalized[i].NameContains = append(normalized[i].NameContains, nameNeedles...)
			normalized[i].DescriptionContains = append(normalized[i].DescriptionContains, descriptionNeedles...)
			continue
		}
		r := rule
		r.NameContains = nameNeedles
		r.DescriptionContains = descriptionNeedles
		byID[r.ID()] = len(normalized)
		normalized = append(normalized, r)
	}
	return normalized
}

func lowerAll(needles []string) []string {
	lowered := make([]string, 0, len(needles))
	for _, n := range needles {
		if n = strings.ToLower(n); n != "" {
			lowered = append(lowered, n)
		}
	}
	return lowered
}

func (ctlg *Catalog) Len() int {
	return len(ctlg.products)
}

func (ctlg *Catalog) All() []Product {
	return slices.Clone(ctlg.products)
}

func (ctlg *Catalog) ProductByID(id string) (Product, bool) {
	i, ok := ctlg.byID[id]
	if !ok {
		return Product{}, false
	}
	return ctlg.products[i], true
}

// Search matches the trimmed, lowercased text against name, description and size.
func (ctlg *Catalog) Search(text string) []Product {
	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return ctlg.All()
	}

	matches := []Product{}
	for _, p := range ctlg.products {
		if strings.Contains(p.lowerName(), term) ||
			strings.Contains(p.lowerDescription(), term) ||
			strings.Contains(strings.ToLower(p.Size), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FilterByCategory returns the products tagged with categoryID. Ids that are
// not in the rule table are matched as free text against name and description.
func (ctlg *Catalog) FilterByCategory(categoryID string) []Product {
	if categoryID == AllCategories {
		return ctlg.All()
	}

	if positions, ok := ctlg.byRule[categoryID]; ok {
		return ctlg.at(positions)
	}
	if ctlg.hasRule(categoryID) {
		return []Product{}
	}

	needle := strings.ToLower(strings.ReplaceAll(categoryID, "-", " "))
	matches := []Product{}
	for _, p := range ctlg.products {
		if strings.Contains(p.lowerName(), needle) || strings.Contains(p.lowerDescription(), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

func (ctlg *Catalog) hasRule(categoryID string) bool {
	for _, rule := range ctlg.rules {
		if rule.ID() == categoryID {
			return true
		}
	}
	return false
}

func (ctlg *Catalog) at(positions []int) []Product {
	products := make([]Product, 0, len(positions))
	for _, i := range positions {
		products = append(products, ctlg.products[i])
	}
	return products
}

// Categories returns the non-empty categories sorted by count descending.
func (ctlg *Catalog) Categories() []Category {
	return slices.Clone(ctlg.categories)
}

func (ctlg *Catalog) Category(categoryID string) (Category, bool) {
	for _, category := range ctlg.categories {
		if category.ID == categoryID {
			return category, true
		}
	}
	return Category{}, false
}

// CategoryIDsOf lists the categories a product is tagged with, in rule order.
func (ctlg *Catalog) CategoryIDsOf(productID string) []string {
	i, ok := ctlg.byID[productID]
	if !ok {
		return []string{}
	}
	return slices.Clone(ctlg.memberships[i])
}

func (ctlg *Catalog) Sizes() []string {
	seen := map[string]struct{}{}
	for _, p := range ctlg.products {
		if p.Size != "" {
			seen[p.Size] = struct{}{}
		}
		if match := sizeInName.FindStringSubmatch(p.Name); match != nil {
			seen[match[1]] = struct{}{}
		}
	}

	sizes := make([]string, 0, len(seen))
	for size := range seen {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)
	return sizes
}

func (ctlg *Catalog) Featured() []Product {
	return slices.Clone(ctlg.products[:min(FeaturedCount, len(ctlg.products))])
}

// Recent returns the last loaded products, newest first.
func (ctlg *Catalog) Recent() []Product {
	recent := slices.Clone(ctlg.products[max(0, len(ctlg.products)-RecentCount):])
	slices.Reverse(recent)
	return recent
}
