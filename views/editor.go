package views

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/qcutapp/dashboard-v2/models"
)

var validate = validator.New()

// SizeOptions is the per-category size catalog offered by the drink
// editor's size rows.
var SizeOptions = map[string][]string{
	"Spirits":   {"Single", "Double", "Triple", "Bottle"},
	"Cocktails": {"Standard", "Large", "Pitcher", "Jug"},
	"Wines": {
		"Bottle", "125ml Glass", "175ml Glass", "250ml Glass",
		"500ml Bottle", "750ml Bottle", "1L Bottle",
	},
	"Soft Drinks": {"Can", "Standard", "Large", "Bottle"},
	"Beers & Bottles": {
		"Pint", "Half-Pint", "330ml Bottle", "500ml Bottle", "275ml Bottle",
		"470ml Bottle", "550ml Bottle", "640ml Bottle", "355ml Bottle",
	},
	"Shots": {"Single", "Double", "Triple", "Bomb"},
}

// CompleteSizes drops rows missing either field. The editor always
// renders a trailing blank row for appending; blanks never reach the
// serialized payload.
func CompleteSizes(sizes []models.Size) []models.Size {
	out := make([]models.Size, 0, len(sizes))
	for _, s := range sizes {
		if s.Size != "" && s.Price != "" {
			out = append(out, s)
		}
	}
	return out
}

// CompleteOptions drops blank option rows and caps the result at limit
// when limit is positive.
func CompleteOptions(options []string, limit int) []string {
	out := make([]string, 0, len(options))
	for _, id := range options {
		if id != "" {
			out = append(out, id)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// checkInput pre-validates an editor payload. Failures surface exactly
// like server validation messages: the editor stays open showing them.
func checkInput(in any) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
		return msgs
	}
	return []string{err.Error()}
}

// errValidation marks a pre-flight validation failure (no HTTP call was
// made).
var errValidation = errors.New("validation failed")
