package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func fixtureProducts() []Product {
	return []Product{
		{
			ProductID:   "exfo-cleanse",
			Name:        "EXFO Cleanse 100ml",
			Description: "Gentle exfoliating cleanser",
			Size:        "100ml",
			Price:       "450",
		},
		{
			ProductID:   "vita-a-serum",
			Name:        "VITA A Serum 30ml",
			Description: "Retinol serum for ageing skin",
			Size:        "30ml",
		},
		{
			ProductID:   "mela-recovery-serum",
			Name:        "MELA Recovery Serum",
			Description: "Targets pigment and uneven tone",
			Size:        "50ml",
		},
		{
			ProductID:   "spf-protect",
			Name:        "U.V. Protect SPF 30",
			Description: "Broad-spectrum sun protection",
			Size:        "50ml",
		},
		{
			ProductID:   "ac-clear-kit",
			Name:        "AC. Clear Home Kit",
			Description: "Complete programme against akne and sebum",
		},
	}
}

func ids(products []Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

func assertIDs(t *testing.T, expected []string, actual []Product) {
	t.Helper()
	if diff := cmp.Diff(expected, ids(actual)); diff != "" {
		t.Errorf("product ids mismatch (-expected +actual):\n%s", diff)
	}
}

func TestAll(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	assertIDs(t, []string{"exfo-cleanse", "vita-a-serum", "mela-recovery-serum", "spf-protect", "ac-clear-kit"}, ctlg.All())
	assert.Equal(t, 5, ctlg.Len())

	all := ctlg.All()
	all[0].Name = "mutated"
	p, ok := ctlg.ProductByID("exfo-cleanse")
	assert.True(t, ok)
	assert.Equal(t, "EXFO Cleanse 100ml", p.Name)
}

func TestSearch(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "given empty query should return every product",
			query:    "",
			expected: ids(ctlg.All()),
		},
		{
			name:     "given whitespace query should return every product",
			query:    "   ",
			expected: ids(ctlg.All()),
		},
		{
			name:     "given lowercase query should match names in catalog order",
			query:    "serum",
			expected: []string{"vita-a-serum", "mela-recovery-serum"},
		},
		{
			name:     "given uppercase query should match the same products",
			query:    "SERUM",
			expected: []string{"vita-a-serum", "mela-recovery-serum"},
		},
		{
			name:     "given size query should match size field",
			query:    "50ml",
			expected: []string{"mela-recovery-serum", "spf-protect"},
		},
		{
			name:     "given description query should match description",
			query:    "  Pigment ",
			expected: []string{"mela-recovery-serum"},
		},
		{
			name:     "given unknown query should return empty result",
			query:    "nothing",
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertIDs(t, test.expected, ctlg.Search(test.query))
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	tests := []struct {
		name       string
		categoryID string
		expected   []string
	}{
		{
			name:       "given all should return every product",
			categoryID: AllCategories,
			expected:   ids(ctlg.All()),
		},
		{
			name:       "given serumlar should return serum products",
			categoryID: "serumlar",
			expected:   []string{"vita-a-serum", "mela-recovery-serum"},
		},
		{
			name:       "given category matched through description should return product",
			categoryID: "leke-tedavisi",
			expected:   []string{"mela-recovery-serum"},
		},
		{
			name:       "given category with two rules matching one product should return it",
			categoryID: "akne-tedavisi",
			expected:   []string{"ac-clear-kit"},
		},
		{
			name:       "given known category without products should return empty result",
			categoryID: "maskeler",
			expected:   []string{},
		},
		{
			name:       "given unknown category should fall back to free text match",
			categoryID: "home-kit",
			expected:   []string{"ac-clear-kit"},
		},
		{
			name:       "given unknown category without matches should return empty result",
			categoryID: "lip-balm",
			expected:   []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertIDs(t, test.expected, ctlg.FilterByCategory(test.categoryID))
		})
	}
}

func TestFilterByCategorySnapshot(t *testing.T) {
	ctlg := New([]Product{
		{ProductID: "hydra", Name: "Hydra Serum"},
		{ProductID: "glow", Name: "Glow Serum"},
		{ProductID: "clay", Name: "Clay Mask"},
	}, DefaultRules())

	assertIDs(t, []string{"hydra", "glow"}, ctlg.FilterByCategory("serumlar"))
}

func TestCategories(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	expected := []Category{
		{ID: "serumlar", Name: "Serumlar", Description: "Yoğun aktif içerikli, hedefli etkili serum formülleri", Count: 2},
		{ID: "temizleyiciler", Name: "Temizleyiciler", Description: "Cildi nazikçe temizleyen, yenileyici etkili ürünler", Count: 1},
		{ID: "kremler", Name: "Kremler", Description: "Nemlendirici, onarıcı ve koruyucu krem formülleri", Count: 1},
		{ID: "güneş-koruma", Name: "Güneş koruma", Description: "Geniş spektrumlu UV koruması sağlayan ürünler", Count: 1},
		{ID: "bakım-kitleri", Name: "Bakım kitleri", Description: "Komple tedavi sistemleri ve ev bakım programları", Count: 1},
		{ID: "leke-tedavisi", Name: "Leke tedavisi", Description: "Pigmentasyon ve leke problemlerine özel çözümler", Count: 1},
		{ID: "akne-tedavisi", Name: "Akne tedavisi", Description: "Akne ve sebum kontrolü için profesyonel ürünler", Count: 1},
	}
	assert.Equal(t, expected, ctlg.Categories())
}

func TestCategoryCountsMatchFilter(t *testing.T) {
	products := fixtureProducts()
	rules := DefaultRules()
	ctlg := New(products, rules)

	categories := ctlg.Categories()
	for i := 1; i < len(categories); i++ {
		assert.GreaterOrEqual(t, categories[i-1].Count, categories[i].Count)
	}

	for _, category := range categories {
		filtered := ctlg.FilterByCategory(category.ID)
		assert.Len(t, filtered, category.Count, "category %s", category.ID)
	}

	for _, rule := range rules {
		filtered := ids(ctlg.FilterByCategory(rule.ID()))
		for _, p := range products {
			if rule.Match(p) {
				assert.Contains(t, filtered, p.ProductID, "category %s", rule.ID())
			}
		}
	}
}

func TestCategoryIDsOf(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	assert.Equal(t, []string{"serumlar", "kremler", "leke-tedavisi"}, ctlg.CategoryIDsOf("mela-recovery-serum"))
	assert.Equal(t, []string{"bakım-kitleri", "akne-tedavisi"}, ctlg.CategoryIDsOf("ac-clear-kit"))
	assert.Equal(t, []string{}, ctlg.CategoryIDsOf("missing"))

	category, ok := ctlg.Category("serumlar")
	assert.True(t, ok)
	assert.Equal(t, 2, category.Count)
	_, ok = ctlg.Category("maskeler")
	assert.False(t, ok)
}

func TestProductByID(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	p, ok := ctlg.ProductByID("spf-protect")
	assert.True(t, ok)
	assert.Equal(t, "U.V. Protect SPF 30", p.Name)

	p, ok = ctlg.ProductByID("missing")
	assert.False(t, ok)
	assert.Equal(t, Product{}, p)
}

func TestSizes(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())
	assert.Equal(t, []string{"100ml", "30ml", "50ml"}, ctlg.Sizes())

	ctlg = New([]Product{{ProductID: "a", Name: "Clay Mask 75 gr"}}, DefaultRules())
	assert.Equal(t, []string{"75 gr"}, ctlg.Sizes())
}

func TestFeaturedAndRecent(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	assertIDs(t, ids(ctlg.All()), ctlg.Featured())
	assertIDs(t, []string{"ac-clear-kit", "spf-protect", "mela-recovery-serum", "vita-a-serum", "exfo-cleanse"}, ctlg.Recent())

	many := make([]Product, 0, 10)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		many = append(many, Product{ProductID: id, Name: id})
	}
	ctlg = New(many, DefaultRules())
	assertIDs(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, ctlg.Featured())
	assertIDs(t, []string{"j", "i", "h", "g", "f", "e"}, ctlg.Recent())

	empty := New(nil, DefaultRules())
	assert.Empty(t, empty.Featured())
	assert.Empty(t, empty.Recent())
	assert.Empty(t, empty.Categories())
}

func TestRuleNeedlesAreCaseInsensitive(t *testing.T) {
	ctlg := New(
		[]Product{{ProductID: "a", Name: "Night Balm"}},
		[]Rule{{Name: "Balms", NameContains: []string{"BALM"}}},
	)

	assertIDs(t, []string{"a"}, ctlg.FilterByCategory("balms"))
	assert.Equal(t, "Balms", ctlg.Categories()[0].Name)
	assert.Equal(t, DefaultCategoryDescription, ctlg.Categories()[0].Description)
}

func TestRulesSharingIDAreMerged(t *testing.T) {
	ctlg := New(
		[]Product{
			{ProductID: "a", Name: "Vita Serum"},
			{ProductID: "b", Name: "Clay Mask"},
			{ProductID: "c", Name: "Vita Tonic"},
		},
		[]Rule{
			{Name: "serumlar", NameContains: []string{"serum"}},
			{Name: "maskeler", NameContains: []string{"mask"}},
			{Name: "Serumlar", NameContains: []string{"vita"}},
		},
	)

	assert.Equal(t, []Category{
		{ID: "serumlar", Name: "Serumlar", Description: DefaultCategoryDescription, Count: 2},
		{ID: "maskeler", Name: "Maskeler", Description: DefaultCategoryDescription, Count: 1},
	}, ctlg.Categories())
	assertIDs(t, []string{"a", "c"}, ctlg.FilterByCategory("serumlar"))
	assert.Equal(t, []string{"serumlar"}, ctlg.CategoryIDsOf("a"))
}
