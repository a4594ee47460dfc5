package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// Row is one raw CSV record keyed by column name.
type Row map[string]string

// Record is the canonical attribute set for one cocktail. Ingredients and
// Measures are aligned: Measures[i] belongs to Ingredients[i] and is ""
// when the source had no usable measure for it.
type Record struct {
	Name         string
	Category     string
	Alcoholic    string
	Glass        string
	Instructions string
	IBA          string
	Ingredients  []string
	Measures     []string
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// usable filters out the placeholder tokens the source data uses for
// missing entries.
func usable(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "none", "nan":
		return false
	}
	return true
}

func (r Row) get(col string) string {
	if col == "" {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// NormalizeRow converts one raw row into a canonical Record using the
// batch's detected schema.
func NormalizeRow(row Row, s Schema) Record {
	rec := Record{
		Name:         row.get(s.Name),
		Category:     row.get(s.Category),
		Alcoholic:    row.get(s.Alcoholic),
		Glass:        row.get(s.Glass),
		Instructions: row.get(s.Instructions),
		IBA:          row.get(s.IBA),
	}

	switch s.Kind {
	case FlatSchema:
		rawIngredients := flatList(row.get(s.Ingredients))
		rawMeasures := flatList(row.get(s.Measures))
		for i, ing := range rawIngredients {
			if !usable(ing) {
				continue
			}
			measure := ""
			if i < len(rawMeasures) && usable(rawMeasures[i]) {
				measure = strings.TrimSpace(rawMeasures[i])
			}
			rec.Ingredients = append(rec.Ingredients, strings.TrimSpace(ing))
			rec.Measures = append(rec.Measures, measure)
		}
	case WideSchema:
		for i := 1; i <= maxWideIngredients; i++ {
			ing := row.get(wideCol("strIngredient", i))
			if !usable(ing) {
				continue
			}
			measure := ""
			if m := row.get(wideCol("strMeasure", i)); usable(m) {
				measure = m
			}
			rec.Ingredients = append(rec.Ingredients, ing)
			rec.Measures = append(rec.Measures, measure)
		}
	}
	return rec
}

// flatList interprets a unified ingredients cell: a bracketed literal is
// parsed into its elements; anything else (including an unparseable
// literal) degrades to a single entry rather than failing the batch.
func flatList(cell string) []string {
	if cell == "" {
		return nil
	}
	if IsListLiteral(cell) {
		if items, err := ParseListLiteral(cell); err == nil {
			return items
		}
	}
	return []string{cell}
}

func wideCol(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// NormalizeBatch normalizes every row and drops later duplicates of the
// same drink name; the first occurrence wins.
func NormalizeBatch(rows []Row, s Schema) []Record {
	records := make([]Record, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		rec := NormalizeRow(row, s)
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		records = append(records, rec)
	}
	return records
}

// CombinedText builds the single text blob that gets embedded: name,
// category, alcoholic type, glass, ingredients and instructions in fixed
// order, with runs of whitespace collapsed.
func (r Record) CombinedText() string {
	parts := []string{r.Name, r.Category, r.Alcoholic, r.Glass}
	parts = append(parts, r.Ingredients...)
	parts = append(parts, r.Instructions)
	joined := strings.Join(parts, " ")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(joined, " "))
}

// IngredientsJoined serializes the ingredient list into the comma-joined
// form stored in the catalog.
func (r Record) IngredientsJoined() string {
	return strings.Join(r.Ingredients, ", ")
}

// Transcript renders the human-readable multi-line recipe stored alongside
// the structured fields. Each ingredient line pairs the measure with the
// ingredient when a usable measure exists.
func (r Record) Transcript() string {
	var sb strings.Builder
	sb.WriteString("Drink: " + r.Name + "\n")
	sb.WriteString("Category: " + r.Category + "\n")
	sb.WriteString("Type: " + r.Alcoholic + "\n")
	sb.WriteString("Glass: " + r.Glass + "\n")
	if r.Instructions != "" {
		sb.WriteString("Instructions: " + r.Instructions + "\n")
	}
	sb.WriteString("Ingredients:\n")
	for i, ing := range r.Ingredients {
		if i < len(r.Measures) && r.Measures[i] != "" {
			sb.WriteString(" - " + r.Measures[i] + " " + ing + "\n")
		} else {
			sb.WriteString(" - " + ing + "\n")
		}
	}
	return sb.String()
}
