package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCharacters indicates input containing characters
	// outside the transliterable set. Wrapping errors list the
	// offending characters.
	ErrInvalidCharacters = errors.New("invalid characters")

	// ErrEmptyRoman indicates a dictionary entry without a Roman form.
	ErrEmptyRoman = errors.New("empty roman form")

	// ErrEmptyBengali indicates a dictionary entry without a Bengali form.
	ErrEmptyBengali = errors.New("empty bengali form")

	// ErrDictionaryDisabled indicates the exceptions dictionary is not
	// enabled in settings.
	ErrDictionaryDisabled = errors.New("dictionary disabled")
)
