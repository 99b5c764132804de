package generator

import (
	"context"
	"fmt"
)

const (
	PlaceholderMissingKey  = "Please configure the API_KEY to generate descriptions automatically."
	PlaceholderFailed      = "Could not generate description at this time."
	PlaceholderUnavailable = "Description not available."
)

// Generator writes a short job description. It never fails: on any problem
// it returns one of the placeholder texts instead.
type Generator interface {
	Generate(ctx context.Context, title, category, locale string) string
}

func languageName(locale string) string {
	switch locale {
	case "hi":
		return "Hindi"
	case "bn":
		return "Bengali"
	default:
		return "English"
	}
}

func buildPrompt(title, category, locale string) string {
	return fmt.Sprintf(
		"Write a short, attractive, and clear job description (max 50 words) for a %q role in the category of %q. "+
			"The description should be encouraging for daily wage workers. Write it in %s.",
		title, category, languageName(locale),
	)
}
