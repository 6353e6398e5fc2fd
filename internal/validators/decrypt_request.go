package validators

import (
	"context"

	"github.com/MKhiriev/go-pdf-decrypter/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldSelected requires that a file was picked: it has a name or some
	// content. A named zero-byte file counts as selected.
	FieldSelected = "selected"

	// FieldFileName requires a non-empty file name.
	FieldFileName = "file_name"

	// FieldContent requires non-empty content.
	FieldContent = "content"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldMaxSize bounds content by the validator's size limit. It is a
	// no-op when the limit is not positive.
	FieldMaxSize = "max_size"
)

// DecryptRequestValidator implements [Validator] for [models.DecryptRequest]
// and [models.SelectedFile]. A [models.SelectedFile] carries no password, so
// [FieldPassword] always fails for it.
type DecryptRequestValidator struct {
	maxSize int64
}

// NewDecryptRequestValidator constructs a validator. maxSize bounds content
// length for [FieldMaxSize]; pass 0 to disable the limit.
func NewDecryptRequestValidator(maxSize int64) Validator {
	return &DecryptRequestValidator{maxSize: maxSize}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. With no fields given, [FieldFileName] and
// [FieldContent] are checked.
func (v *DecryptRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DecryptRequest:
		return v.validate(ctx, value, fields...)
	case *models.DecryptRequest:
		return v.validate(ctx, *value, fields...)

	case models.SelectedFile:
		return v.validate(ctx, models.DecryptRequest{FileName: value.Name, Content: value.Content}, fields...)
	case *models.SelectedFile:
		return v.validate(ctx, models.DecryptRequest{FileName: value.Name, Content: value.Content}, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validate returns the first encountered validation error or nil.
func (v *DecryptRequestValidator) validate(_ context.Context, req models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldSelected:
			if req.FileName == "" && len(req.Content) == 0 {
				return ErrNoFileSelected
			}
		case FieldFileName:
			if req.FileName == "" {
				return ErrEmptyFileName
			}
		case FieldContent:
			if len(req.Content) == 0 {
				return ErrEmptyContent
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldMaxSize:
			if v.maxSize > 0 && int64(len(req.Content)) > v.maxSize {
				return ErrContentTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
