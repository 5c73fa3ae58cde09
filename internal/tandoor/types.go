package tandoor

// Recipe is the payload for POST /api/recipe/. The schema is owned by
// Tandoor; only the fields this importer fills are modeled.
type Recipe struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Keywords    []Keyword `json:"keywords"`
	Steps       []Step    `json:"steps"`
	WorkingTime int       `json:"working_time"`
	SourceURL   string    `json:"source_url"`
	Servings    int       `json:"servings"`
	Private     bool      `json:"private"`
}

// Keyword is Tandoor's term for a recipe tag.
type Keyword struct {
	Name string `json:"name"`
}

// Step is one instruction step. Tandoor accepts per-step ingredients; the
// slice is always present (possibly empty) so it serializes as [] rather
// than null.
type Step struct {
	Instruction string       `json:"instruction"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is a structured ingredient line in Tandoor's shape. Amount is
// a string: an unspecified quantity is the empty string, never "0".
type Ingredient struct {
	Food   Food   `json:"food"`
	Amount string `json:"amount"`
	Unit   *Unit  `json:"unit"`
	Note   string `json:"note"`
}

// Food names an ingredient.
type Food struct {
	Name string `json:"name"`
}

// Unit names a measurement unit. A nil *Unit serializes as null, which is
// how Tandoor represents "no unit".
type Unit struct {
	Name string `json:"name"`
}
