package fontload

import "errors"

// Sentinel errors for library operations.
var (
	// ErrVariantLoad wraps every per-variant failure reported on a Result.
	ErrVariantLoad = errors.New("font variant load failed")

	// Payload errors.
	ErrEmptyPayload  = errors.New("font payload is empty")
	ErrDecodePayload = errors.New("font payload is not valid base64")

	// Face loading errors.
	ErrParseFont     = errors.New("font data could not be parsed")
	ErrUnknownParser = errors.New("unknown font parser")

	// Registry errors.
	ErrRegister     = errors.New("font registration rejected")
	ErrNilFace      = errors.New("nil font face")
	ErrEmptyFamily  = errors.New("font family name cannot be empty")
	ErrDuplicate    = errors.New("duplicate font family")
	ErrNoVariants   = errors.New("font entry has no variants")
	ErrInvalidTable = errors.New("invalid font table")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Specimen errors.
	ErrHTMLConversion   = errors.New("HTML conversion failed")
	ErrSpecimenTemplate = errors.New("specimen template rendering failed")
)
