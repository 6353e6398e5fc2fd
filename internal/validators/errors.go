package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFileSelected  = errors.New("no file selected")
	ErrEmptyFileName   = errors.New("file name is required")
	ErrEmptyContent    = errors.New("file content is empty")
	ErrEmptyPassword   = errors.New("password is required")
	ErrContentTooLarge = errors.New("file content exceeds size limit")
)
