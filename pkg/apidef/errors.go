/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrNameMissedError = errors.New("name missed")

func ErrNameMissed(msg string, args ...any) error {
	return EnrichError(ErrNameMissedError, msg, args...)
}

var ErrNameUniqueViolationError = errors.New("name already used")

func ErrNameUniqueViolation(msg string, args ...any) error {
	return EnrichError(ErrNameUniqueViolationError, msg, args...)
}

var ErrMutualExclusionError = errors.New("mutually exclusive")

func ErrMutualExclusion(msg string, args ...any) error {
	return EnrichError(ErrMutualExclusionError, msg, args...)
}

var ErrFieldMissedError = errors.New("required field missed")

func ErrFieldMissed(msg string, args ...any) error {
	return EnrichError(ErrFieldMissedError, msg, args...)
}

var ErrInvalidFieldTypeError = errors.New("invalid field type")

func ErrInvalidFieldType(msg string, args ...any) error {
	return EnrichError(ErrInvalidFieldTypeError, msg, args...)
}

var ErrUnknownItemTypeError = errors.New("unknown item type")

func ErrUnknownItemType(msg string, args ...any) error {
	return EnrichError(ErrUnknownItemTypeError, msg, args...)
}

var ErrEmptyObjectError = errors.New("nested object has no properties")

func ErrEmptyObject(msg string, args ...any) error {
	return EnrichError(ErrEmptyObjectError, msg, args...)
}

var ErrRefNotFoundError = errors.New("unresolved resource reference")

func ErrRefNotFound(msg string, args ...any) error {
	return EnrichError(ErrRefNotFoundError, msg, args...)
}

var ErrImportNotFoundError = errors.New("imported property not found")

func ErrImportNotFound(msg string, args ...any) error {
	return EnrichError(ErrImportNotFoundError, msg, args...)
}

var ErrPartialFlattenError = errors.New("partial flatten not supported")

func ErrPartialFlatten(msg string, args ...any) error {
	return EnrichError(ErrPartialFlattenError, msg, args...)
}

var ErrVersionNotFoundError = errors.New("version not found")

func ErrVersionNotFound(msg string, args ...any) error {
	return EnrichError(ErrVersionNotFoundError, msg, args...)
}
