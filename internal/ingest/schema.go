package ingest

// SchemaKind identifies which of the two recognized CSV layouts a batch uses.
type SchemaKind int

const (
	// FlatSchema has a single list-like ingredients column.
	FlatSchema SchemaKind = iota
	// WideSchema spreads ingredients over numbered strIngredientN/strMeasureN columns.
	WideSchema
)

// maxWideIngredients is the number of numbered ingredient/measure column
// pairs a wide-schema row may carry.
const maxWideIngredients = 15

// Schema is the column mapping detected once per batch. Each field holds the
// resolved source column name, or "" when the batch has no such column.
type Schema struct {
	Kind         SchemaKind
	Name         string
	Category     string
	Alcoholic    string
	Glass        string
	Instructions string
	Ingredients  string
	Measures     string
	IBA          string
}

// DetectSchema probes the header once and resolves every field to one of its
// two possible source names, so rows are never re-probed individually.
func DetectSchema(header []string) Schema {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	resolve := func(candidates ...string) string {
		for _, c := range candidates {
			if present[c] {
				return c
			}
		}
		return ""
	}

	s := Schema{
		Name:         resolve("name", "strDrink"),
		Category:     resolve("category", "strCategory"),
		Alcoholic:    resolve("alcoholic", "strAlcoholic"),
		Glass:        resolve("glassType", "strGlass"),
		Instructions: resolve("instructions", "strInstructions"),
		Ingredients:  resolve("ingredients"),
		Measures:     resolve("ingredientMeasures"),
		IBA:          resolve("strIBA"),
	}
	if s.Ingredients != "" {
		s.Kind = FlatSchema
	} else {
		s.Kind = WideSchema
	}
	return s
}
