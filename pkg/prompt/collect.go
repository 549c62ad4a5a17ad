package prompt

import (
	"context"
	"fmt"

	"github.com/VanillaMaster/interpolate/pkg/values"
)

// Collect asks for every expression that known does not already resolve.
// Repeated expressions are asked once. Answers are decoded with
// values.Decode, so "3" becomes a number.
func Collect(ctx context.Context, driver Driver, expressions []string, known func(expr string) bool) (map[string]any, error) {
	answers := make(map[string]any)
	for _, expr := range expressions {
		if _, asked := answers[expr]; asked {
			continue
		}
		if known != nil && known(expr) {
			continue
		}
		raw, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Value for ${%s}:", expr),
			Help:    "Parsed as YAML: numbers, booleans, null and [lists] keep their type.",
		})
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", expr, err)
		}
		answers[expr] = values.Decode(raw)
	}
	return answers, nil
}

// Choose asks the user to pick one of options and returns the chosen option.
func Choose(ctx context.Context, driver Driver, message string, options []string, current string) (string, error) {
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: indexOf(options, current),
	})
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: no option selected")
	}
	return options[idx], nil
}
