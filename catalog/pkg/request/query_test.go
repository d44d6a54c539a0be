package request

import (
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestQueryFromValues(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		expected Query
		wantErr  bool
	}{
		{
			name:     "given empty query string should use default limit",
			values:   url.Values{},
			expected: Query{Limit: DefaultLimit},
		},
		{
			name: "given every parameter should trim and parse them",
			values: url.Values{
				"search":   {"  serum "},
				"category": {"serumlar"},
				"sort":     {"name-asc"},
				"limit":    {"10"},
				"offset":   {"20"},
			},
			expected: Query{Search: "serum", Category: "serumlar", Sort: "name-asc", Limit: 10, Offset: 20},
		},
		{
			name:    "given non numeric limit should return error",
			values:  url.Values{"limit": {"ten"}},
			wantErr: true,
		},
		{
			name:    "given non numeric offset should return error",
			values:  url.Values{"offset": {"-x"}},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := QueryFromValues(test.values)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestQueryValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name    string
		query   Query
		wantErr bool
	}{
		{name: "given defaults should be valid", query: Query{Limit: DefaultLimit}},
		{name: "given popular sort should be valid", query: Query{Sort: "popular", Limit: 1}},
		{name: "given unknown sort should be invalid", query: Query{Sort: "price-asc", Limit: 1}, wantErr: true},
		{name: "given zero limit should be invalid", query: Query{Limit: 0}, wantErr: true},
		{name: "given limit above max should be invalid", query: Query{Limit: MaxLimit + 1}, wantErr: true},
		{name: "given negative offset should be invalid", query: Query{Limit: 1, Offset: -1}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validate.Struct(test.query)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
