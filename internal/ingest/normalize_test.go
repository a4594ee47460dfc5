package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wideSchema() Schema {
	return DetectSchema([]string{"strDrink", "strCategory", "strAlcoholic", "strGlass", "strInstructions", "strIBA",
		"strIngredient1", "strIngredient2", "strIngredient3", "strMeasure1", "strMeasure2", "strMeasure3"})
}

func flatSchema() Schema {
	return DetectSchema([]string{"name", "category", "alcoholic", "glassType", "instructions", "ingredients", "ingredientMeasures"})
}

func TestNormalizeRowWideSkipsNonePlaceholders(t *testing.T) {
	row := Row{
		"strDrink":       "Screwdriver",
		"strIngredient1": "Vodka",
		"strIngredient2": "None",
		"strIngredient3": "",
		"strMeasure1":    "2 oz",
	}
	rec := NormalizeRow(row, wideSchema())

	assert.Equal(t, []string{"Vodka"}, rec.Ingredients)
	assert.Equal(t, []string{"2 oz"}, rec.Measures)

	transcript := rec.Transcript()
	assert.Contains(t, transcript, "- 2 oz Vodka")
	assert.NotContains(t, transcript, "None")
}

func TestNormalizeRowWideMeasureNoneFallsBackToIngredientOnly(t *testing.T) {
	row := Row{
		"strDrink":       "Neat Whiskey",
		"strIngredient1": "Whiskey",
		"strMeasure1":    "none",
	}
	rec := NormalizeRow(row, wideSchema())

	assert.Contains(t, rec.Transcript(), " - Whiskey\n")
	assert.NotContains(t, rec.Transcript(), "none")
}

func TestNormalizeRowFlatListLiteral(t *testing.T) {
	row := Row{
		"name":               "Gimlet",
		"ingredients":        "['Gin', 'Lime juice']",
		"ingredientMeasures": "['2 oz', '1 oz']",
	}
	rec := NormalizeRow(row, flatSchema())

	assert.Equal(t, []string{"Gin", "Lime juice"}, rec.Ingredients)
	assert.Equal(t, "Gin, Lime juice", rec.IngredientsJoined())
	assert.Contains(t, rec.Transcript(), " - 2 oz Gin\n")
	assert.Contains(t, rec.Transcript(), " - 1 oz Lime juice\n")
}

func TestNormalizeRowFlatUnparseableFallsBackToSingleEntry(t *testing.T) {
	row := Row{
		"name":        "Mystery Mix",
		"ingredients": "['Gin', 'Lime]",
	}
	rec := NormalizeRow(row, flatSchema())

	assert.Equal(t, []string{"['Gin', 'Lime]"}, rec.Ingredients)
}

func TestNormalizeRowFlatPlainStringIsSingleIngredient(t *testing.T) {
	row := Row{
		"name":        "Beer",
		"ingredients": "Lager",
	}
	rec := NormalizeRow(row, flatSchema())

	assert.Equal(t, []string{"Lager"}, rec.Ingredients)
}

func TestCombinedTextOrderAndWhitespace(t *testing.T) {
	rec := Record{
		Name:         "Mojito",
		Category:     "Cocktail",
		Alcoholic:    "Alcoholic",
		Glass:        "Highball glass",
		Instructions: "Muddle   mint.\nAdd rum.",
		Ingredients:  []string{"White rum", "Lime"},
	}
	text := rec.CombinedText()

	assert.Equal(t, "Mojito Cocktail Alcoholic Highball glass White rum Lime Muddle mint. Add rum.", text)
}

func TestCombinedTextMissingFieldsCollapse(t *testing.T) {
	rec := Record{Name: "Mojito"}
	assert.Equal(t, "Mojito", rec.CombinedText())
}

func TestTranscriptOmitsEmptyInstructions(t *testing.T) {
	rec := Record{Name: "Mojito"}
	transcript := rec.Transcript()

	assert.Contains(t, transcript, "Drink: Mojito\n")
	assert.NotContains(t, transcript, "Instructions:")
	assert.Contains(t, transcript, "Ingredients:\n")
}

func TestNormalizeBatchDeduplicatesByName(t *testing.T) {
	rows := []Row{
		{"name": "Mojito", "ingredients": "['White rum']"},
		{"name": "Daiquiri", "ingredients": "['White rum']"},
		{"name": "Mojito", "ingredients": "['Dark rum']"},
	}
	records := NormalizeBatch(rows, flatSchema())

	assert.Len(t, records, 2)
	assert.Equal(t, "Mojito", records[0].Name)
	// first occurrence wins
	assert.Equal(t, []string{"White rum"}, records[0].Ingredients)
	assert.Equal(t, "Daiquiri", records[1].Name)
}
