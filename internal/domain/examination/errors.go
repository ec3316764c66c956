package examination

import "errors"

var (
	ErrUnknownField     = errors.New("unknown examination field")
	ErrInvalidPainLevel = errors.New("pain level must be between 0 and 10")
	ErrInvalidCategory  = errors.New("image category must be intraoral or xray")
	ErrMissingFileRef   = errors.New("image file reference is required")
	ErrMissingPatientID = errors.New("patient_id is required")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrNotOnFinalStep   = errors.New("examination can only be completed from the final step")
	ErrAlreadyCommitted = errors.New("examination already committed")
)
