package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultCategoryDescription = "Profesyonel cilt bakım ürünleri"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Rule tags a product with a category when any needle is a substring of
// the lowercased name (NameContains) or description (DescriptionContains).
type Rule struct {
	Name                string   `yaml:"name"                 json:"name"`
	Description         string   `yaml:"description"          json:"description"`
	NameContains        []string `yaml:"name_contains"        json:"name_contains"`
	DescriptionContains []string `yaml:"description_contains" json:"description_contains"`
}

func (r Rule) ID() string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(r.Name, "-"))
}

func (r Rule) DisplayName() string {
	first, size := utf8.DecodeRuneInString(r.Name)
	if first == utf8.RuneError {
		return r.Name
	}
	return string(unicode.ToUpper(first)) + r.Name[size:]
}

func (r Rule) CategoryDescription() string {
	if r.Description == "" {
		return DefaultCategoryDescription
	}
	return r.Description
}

func (r Rule) Match(p Product) bool {
	return r.match(p.lowerName(), p.lowerDescription())
}

func (r Rule) match(name string, description string) bool {
	for _, needle := range r.NameContains {
		if strings.Contains(name, needle) {
			return true
		}
	}
	for _, needle := range r.DescriptionContains {
		if strings.Contains(description, needle) {
			return true
		}
	}
	return false
}

// DefaultRules is the phFormula keyword table. Order matters: it breaks
// ties between categories with the same count.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:         "temizleyiciler",
			Description:  "Cildi nazikçe temizleyen, yenileyici etkili ürünler",
			NameContains: []string{"cleanse", "temizley", "exfo"},
		},
		{
			Name:         "serumlar",
			Description:  "Yoğun aktif içerikli, hedefli etkili serum formülleri",
			NameContains: []string{"serum", "vita", "age"},
		},
		{
			Name:         "kremler",
			Description:  "Nemlendirici, onarıcı ve koruyucu krem formülleri",
			NameContains: []string{"cream", "krem", "recovery", "post"},
		},
		{
			Name:         "maskeler",
			Description:  "Derinlemesine temizlik ve bakım sağlayan maskeler",
			NameContains: []string{"mask", "maske", "clay"},
		},
		{
			Name:         "güneş koruma",
			Description:  "Geniş spektrumlu UV koruması sağlayan ürünler",
			NameContains: []string{"spf", "protect", "sun", "uv"},
		},
		{
			Name:                "bakım kitleri",
			Description:         "Komple tedavi sistemleri ve ev bakım programları",
			NameContains:        []string{"kit", "set"},
			DescriptionContains: []string{"kit"},
		},
		{
			Name:         "özel çözümler",
			Description:  "Spesifik cilt problemlerine özel aktif formüller",
			NameContains: []string{"solution", "çözüm", "active"},
		},
		{
			Name:                "leke tedavisi",
			Description:         "Pigmentasyon ve leke problemlerine özel çözümler",
			NameContains:        []string{"mela"},
			DescriptionContains: []string{"pigment", "leke"},
		},
		{
			Name:                "akne tedavisi",
			Description:         "Akne ve sebum kontrolü için profesyonel ürünler",
			NameContains:        []string{"ac.", "akne"},
			DescriptionContains: []string{"akne", "sebum"},
		},
		{
			Name:                "kızarıklık tedavisi",
			Description:         "Hassas ve kızarıklığa eğilimli ciltler için özel bakım",
			NameContains:        []string{"cr."},
			DescriptionContains: []string{"kızarıklık", "hassas"},
		},
	}
}
