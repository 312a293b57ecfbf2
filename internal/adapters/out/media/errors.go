package media

import (
	"fmt"

	"tours/internal/pkg/errs"
)

// ErrUnsupportedFileType is returned for files that are not images. It is a
// validation error so the HTTP layer answers 400.
var ErrUnsupportedFileType = fmt.Errorf("%w: unsupported image file type", errs.ErrValueIsInvalid)

// ErrForeignReference is returned when asked to delete a reference the store
// did not hand out.
var ErrForeignReference = fmt.Errorf("%w: reference is not a stored upload", errs.ErrValueIsInvalid)
