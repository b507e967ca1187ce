package entity

import "errors"

// Domain errors
var (
	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrOutOfRange       = errors.New("value out of allowed range")
	ErrInvalidFormat    = errors.New("invalid format")

	// Upload errors
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrNotAnImage       = errors.New("file is not an image")
	ErrFileTooLarge     = errors.New("file too large")
	ErrUndecodableImage = errors.New("image cannot be decoded")

	// Upstream errors
	ErrModelUnavailable  = errors.New("inference service unavailable")
	ErrLLMUnavailable    = errors.New("LLM service unavailable")
	ErrSearchUnavailable = errors.New("web search unavailable")
)
