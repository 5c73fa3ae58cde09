package importer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/recipe-tools/tandoor-import/internal/source"
	"github.com/recipe-tools/tandoor-import/internal/tandoor"
)

// ErrMissingTitle is returned when a source document has no title. Title is
// the only required source field.
var ErrMissingTitle = errors.New("source recipe has no title")

// stepDelimiter separates instruction steps in the source's single
// instructions string.
const stepDelimiter = "\r\n\r\n"

// provenanceKeyword is appended to every imported recipe so imports can be
// found (and bulk-deleted) in Tandoor later.
const provenanceKeyword = "pyimport"

// Transform maps a source recipe document into a Tandoor creation payload.
// It is pure: no I/O, and the same input always produces the same output.
//
// Flattened ingredients are intentionally not part of the payload; see
// FlattenIngredients.
func Transform(src *source.Recipe) (*tandoor.Recipe, error) {
	if strings.TrimSpace(src.Title) == "" {
		return nil, ErrMissingTitle
	}

	return &tandoor.Recipe{
		Name:        src.Title,
		Description: src.AdditionalDescription,
		Keywords:    buildKeywords(src.Tags),
		Steps:       splitSteps(src.Instructions),
		WorkingTime: src.PreparationTime,
		SourceURL:   src.SiteURL,
		Servings:    src.Servings,
		Private:     false,
	}, nil
}

// splitSteps breaks the source's single instructions string into ordered
// Tandoor steps. Segments that are empty after trimming are dropped.
func splitSteps(instructions string) []tandoor.Step {
	steps := []tandoor.Step{}
	for _, segment := range strings.Split(instructions, stepDelimiter) {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		steps = append(steps, tandoor.Step{
			Instruction: trimmed,
			Ingredients: []tandoor.Ingredient{},
		})
	}
	return steps
}

// buildKeywords converts source tags into Tandoor keywords, dropping
// empty and whitespace-only tags, and always appends the provenance
// keyword last.
func buildKeywords(tags []string) []tandoor.Keyword {
	keywords := []tandoor.Keyword{}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		keywords = append(keywords, tandoor.Keyword{Name: tag})
	}
	return append(keywords, tandoor.Keyword{Name: provenanceKeyword})
}

// FlattenIngredients converts the source's grouped ingredients into
// Tandoor's flat shape, preserving group and ingredient order. An amount of
// zero becomes the empty string, meaning "unspecified quantity".
//
// The result is never attached to the creation payload: the export path
// this importer replaces left ingredients off the steps, and recipes
// already in Tandoor were created that way. Callers use it only to report
// how much ingredient data a document carries.
func FlattenIngredients(src *source.Recipe) []tandoor.Ingredient {
	ingredients := []tandoor.Ingredient{}
	for _, group := range src.IngredientGroups {
		for _, ing := range group.Ingredients {
			var unit *tandoor.Unit
			if ing.Unit != "" {
				unit = &tandoor.Unit{Name: ing.Unit}
			}
			ingredients = append(ingredients, tandoor.Ingredient{
				Food:   tandoor.Food{Name: ing.Name},
				Amount: formatAmount(ing.Amount),
				Unit:   unit,
				Note:   ing.UsageInfo,
			})
		}
	}
	return ingredients
}

// formatAmount serializes an ingredient amount. Zero means the source left
// the quantity unspecified, so it becomes "" rather than "0".
func formatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
