package source

// Recipe is the JSON document shape exported by the source recipe site.
// The schema is owned by the source service; every field except Title is
// optional in practice.
type Recipe struct {
	Title                   string            `json:"title"`
	AdditionalDescription   string            `json:"additionalDescription"`
	Instructions            string            `json:"instructions"`
	IngredientGroups        []IngredientGroup `json:"ingredientGroups"`
	Tags                    []string          `json:"tags"`
	PreparationTime         int               `json:"preparationTime"`
	SiteURL                 string            `json:"siteUrl"`
	Servings                int               `json:"servings"`
	PreviewImageURLTemplate string            `json:"previewImageUrlTemplate"`
}

// IngredientGroup is an ordered group of ingredients, e.g. "For the dough".
type IngredientGroup struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is a single ingredient line. An Amount of 0 means the source
// left the quantity unspecified ("salt to taste").
type Ingredient struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Unit      string  `json:"unit"`
	UsageInfo string  `json:"usageInfo"`
}
