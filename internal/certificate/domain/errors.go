// Package domain defines core domain models and errors for certificates.
package domain

import (
	"github.com/allisson/certmaker/internal/errors"
)

// Certificate-specific error definitions.
var (
	// ErrUnknownStyle indicates the style identifier is not in the enumerated set.
	ErrUnknownStyle = errors.Wrap(errors.ErrInvalidInput, "unknown style")

	// ErrUnknownFont indicates a slot references a font outside the enumeration.
	ErrUnknownFont = errors.Wrap(errors.ErrRenderFailed, "unknown font")
)
