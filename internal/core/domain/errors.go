package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOCR          = errors.New("ocr failure")
	ErrDecode       = errors.New("decode failure")
	ErrAIService    = errors.New("ai service failure")
	ErrUpload       = errors.New("upload failure")
	ErrInvalidInput = errors.New("invalid input")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
