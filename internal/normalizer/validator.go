package normalizer

import (
	"errors"
	"fmt"

	"zexplorer/internal/jsonval"
	"zexplorer/internal/models"
)

// Validation errors.
var (
	ErrInputNotArray       = errors.New("input JSON must be an array of listing objects")
	ErrMissingCanonicalKey = errors.New("listing missing required key")
)

// Validator checks pipeline input and normalized output shapes.
type Validator struct {
	required []string
}

// NewValidator creates a validator requiring the canonical listing keys.
func NewValidator() *Validator {
	return &Validator{required: models.CanonicalKeys}
}

// Validate checks that the decoded input is an array and returns its items.
func (v *Validator) Validate(input jsonval.Value) ([]jsonval.Value, error) {
	items, ok := input.AsArray()
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrInputNotArray, input.Kind())
	}

	return items, nil
}

// ValidateListing checks that every required key is present.
func (v *Validator) ValidateListing(rec *jsonval.Object) error {
	for _, key := range v.required {
		if !rec.Has(key) {
			return fmt.Errorf("%w: %s", ErrMissingCanonicalKey, key)
		}
	}

	return nil
}
