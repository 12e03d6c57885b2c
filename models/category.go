package models

// Category is the key of a match category. Labels are derived from it and never
// used for comparisons.
type Category string

const (
	CategoryMensSingles   Category = "mensSingles"
	CategoryMensDoubles   Category = "mensDoubles"
	CategoryWomensSingles Category = "womensSingles"
	CategoryWomensDoubles Category = "womensDoubles"
	CategoryMixedDoubles  Category = "mixedDoubles"

	// CategoryDreamBreaker is the synthetic tie-decider played by full rosters.
	CategoryDreamBreaker Category = "dreamBreaker"
)

// CanonicalCategories is the fixed order categories are iterated in, whatever order
// a tournament stored them in.
var CanonicalCategories = []Category{
	CategoryMensSingles,
	CategoryMensDoubles,
	CategoryWomensSingles,
	CategoryWomensDoubles,
	CategoryMixedDoubles,
}

var categoryLabels = map[Category]string{
	CategoryMensSingles:   "Men's Singles",
	CategoryMensDoubles:   "Men's Doubles",
	CategoryWomensSingles: "Women's Singles",
	CategoryWomensDoubles: "Women's Doubles",
	CategoryMixedDoubles:  "Mixed Doubles",
	CategoryDreamBreaker:  "Dream Breaker",
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) IsDoubles() bool {
	return c == CategoryMensDoubles || c == CategoryWomensDoubles || c == CategoryMixedDoubles
}

// RequiredGender returns the gender every player in the category must have.
// ok is false for mixed doubles and the decider, which accept either.
func (c Category) RequiredGender() (gender Gender, ok bool) {
	switch c {
	case CategoryMensSingles, CategoryMensDoubles:
		return GenderMale, true
	case CategoryWomensSingles, CategoryWomensDoubles:
		return GenderFemale, true
	default:
		return "", false
	}
}

// NormalizeCategories drops unknown and duplicate keys and returns the rest in
// canonical order.
func NormalizeCategories(in []Category) []Category {
	enabled := make(map[Category]bool, len(in))
	for _, c := range in {
		enabled[c] = true
	}
	out := make([]Category, 0, len(in))
	for _, c := range CanonicalCategories {
		if enabled[c] {
			out = append(out, c)
		}
	}
	return out
}
