package doublearray

import "errors"

var (
	// ErrEncoding is returned when a key is not valid UTF-8 or contains the terminal code.
	ErrEncoding = errors.New("key cannot be encoded")

	// ErrNegativeValue is returned when a record value is below zero.
	ErrNegativeValue = errors.New("record value is negative")

	// ErrDuplicateKey is returned when the same key is given more than once.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnsorted is returned when keys claimed to be sorted are not in byte order.
	ErrUnsorted = errors.New("keys are not sorted")

	// ErrAlreadyBuilt is returned by a second Build call on the same Builder.
	ErrAlreadyBuilt = errors.New("builder has already been built")

	// ErrCapacity is raised when the arrays would outgrow the int32 index space.
	ErrCapacity = errors.New("double array capacity exceeded")

	// ErrArrayLength is returned when a raw array stream is not a whole number of int32 values.
	ErrArrayLength = errors.New("raw array length is not a multiple of 4")
)
