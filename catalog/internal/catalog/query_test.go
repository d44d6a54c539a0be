package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{
			name:     "given empty query should return catalog order",
			query:    Query{},
			expected: []string{"exfo-cleanse", "vita-a-serum", "mela-recovery-serum", "spf-protect", "ac-clear-kit"},
		},
		{
			name:     "given category all and search should behave like search",
			query:    Query{Category: AllCategories, Search: "serum"},
			expected: []string{"vita-a-serum", "mela-recovery-serum"},
		},
		{
			name:     "given category and search should narrow category by name",
			query:    Query{Category: "serumlar", Search: "MELA"},
			expected: []string{"mela-recovery-serum"},
		},
		{
			name:     "given category and size search should not match size field",
			query:    Query{Category: "serumlar", Search: "50ml"},
			expected: []string{},
		},
		{
			name:     "given name ascending sort should order by name",
			query:    Query{Sort: SortNameAsc},
			expected: []string{"ac-clear-kit", "exfo-cleanse", "mela-recovery-serum", "spf-protect", "vita-a-serum"},
		},
		{
			name:     "given name descending sort with search should order matches by name",
			query:    Query{Search: "serum", Sort: SortNameDesc},
			expected: []string{"vita-a-serum", "mela-recovery-serum"},
		},
		{
			name: "given popular sort should order by score and keep catalog order for ties",
			query: Query{
				Sort:       SortPopular,
				Popularity: map[string]float64{"spf-protect": 5, "mela-recovery-serum": 2},
			},
			expected: []string{"spf-protect", "mela-recovery-serum", "exfo-cleanse", "vita-a-serum", "ac-clear-kit"},
		},
		{
			name:     "given popular sort without scores should keep catalog order",
			query:    Query{Sort: SortPopular},
			expected: []string{"exfo-cleanse", "vita-a-serum", "mela-recovery-serum", "spf-protect", "ac-clear-kit"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertIDs(t, test.expected, ctlg.Query(test.query))
		})
	}
}

func TestSortTurkishCollation(t *testing.T) {
	products := []Product{
		{ProductID: "c", Name: "Çay Maskesi"},
		{ProductID: "d", Name: "Dudak Kremi"},
		{ProductID: "b", Name: "Bakım Seti"},
	}

	assertIDs(t, []string{"b", "c", "d"}, Sort(products, SortNameAsc, nil))
	assertIDs(t, []string{"d", "c", "b"}, Sort(products, SortNameDesc, nil))
}

func TestSortOptionValid(t *testing.T) {
	assert.True(t, SortOption("").Valid())
	assert.True(t, SortNameAsc.Valid())
	assert.True(t, SortPopular.Valid())
	assert.False(t, SortOption("price-asc").Valid())
}

func TestPaginate(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name     string
		limit    int
		offset   int
		expected []string
	}{
		{name: "given no limit should return everything", limit: 0, offset: 0, expected: ids(products)},
		{name: "given limit should cut the page", limit: 2, offset: 0, expected: []string{"exfo-cleanse", "vita-a-serum"}},
		{name: "given offset should skip products", limit: 2, offset: 3, expected: []string{"spf-protect", "ac-clear-kit"}},
		{name: "given offset past the end should return empty page", limit: 2, offset: 10, expected: []string{}},
		{name: "given negative offset should start at zero", limit: 1, offset: -1, expected: []string{"exfo-cleanse"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertIDs(t, test.expected, Paginate(products, test.limit, test.offset))
		})
	}
}
