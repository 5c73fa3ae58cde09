package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recipe-tools/tandoor-import/internal/images"
	"github.com/recipe-tools/tandoor-import/internal/source"
	"github.com/recipe-tools/tandoor-import/internal/tandoor"
)

// Status classifies the outcome of a single import.
type Status string

const (
	// StatusCreated means the recipe exists in Tandoor. The preview image
	// may or may not have been attached; that never fails an import.
	StatusCreated Status = "created"
	// StatusFailed means nothing was created for this document.
	StatusFailed Status = "failed"
)

// Result is the typed outcome of one Import call. Import never returns an
// error directly; failures are carried here so the driver decides how to
// log and report them.
type Result struct {
	Title         string
	Status        Status
	RecipeID      int
	ImageAttached bool
	Ingredients   int
	Err           error
}

// Importer creates recipes in Tandoor from source documents. It holds no
// mutable state besides the authenticated client; each Import call is
// independent.
type Importer struct {
	client      *tandoor.Client
	fetcher     *images.Fetcher
	limiter     Limiter
	imageFormat string
}

// New creates an Importer around an authenticated Tandoor client.
func New(client *tandoor.Client, fetcher *images.Fetcher, limiter Limiter, imageFormat string) *Importer {
	return &Importer{
		client:      client,
		fetcher:     fetcher,
		limiter:     limiter,
		imageFormat: imageFormat,
	}
}

// Import transforms one source document, creates the recipe, and attaches
// its preview image best-effort. Failures never propagate as errors; the
// returned Result says what happened.
func (i *Importer) Import(ctx context.Context, src *source.Recipe) Result {
	result := Result{Title: src.Title, Status: StatusFailed}
	if result.Title == "" {
		result.Title = "unknown"
	}

	recipe, err := Transform(src)
	if err != nil {
		result.Err = fmt.Errorf("transform failed: %w", err)
		return result
	}
	result.Ingredients = len(FlattenIngredients(src))

	id, err := i.client.CreateRecipe(ctx, recipe)
	if err != nil {
		result.Err = fmt.Errorf("recipe creation failed: %w", err)
		return result
	}
	result.RecipeID = id

	// Image attachment is best-effort: the recipe is already created, so
	// nothing past this point can fail the import.
	if src.PreviewImageURLTemplate != "" {
		result.ImageAttached = i.attachImage(ctx, id, src)
	}

	result.Status = StatusCreated
	slog.Info("Recipe imported", "title", result.Title, "id", id, "image", result.ImageAttached)

	i.limiter.Wait()
	return result
}

func (i *Importer) attachImage(ctx context.Context, recipeID int, src *source.Recipe) bool {
	imageURL := images.PreviewURL(src.PreviewImageURLTemplate, i.imageFormat)

	data, err := i.fetcher.Download(ctx, imageURL)
	if err != nil {
		slog.Warn("Failed to download preview image", "title", src.Title, "url", imageURL, "error", err)
		return false
	}

	if err := i.client.UploadImage(ctx, recipeID, imageURL, data); err != nil {
		slog.Warn("Failed to upload preview image", "title", src.Title, "id", recipeID, "error", err)
		return false
	}

	return true
}
