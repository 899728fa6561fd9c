package assets

// AssetLoader defines the contract for loading specimen assets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadSample loads Markdown sample text by name (without .md extension).
	// Returns ErrSampleNotFound if the sample doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadSample(name string) (string, error)
}

// PayloadLoader loads base64 font payloads by name.
type PayloadLoader interface {
	// LoadPayload returns the base64 payload stored under name.
	// Text payloads are returned as stored (possibly line-wrapped); raw font
	// files are encoded. Returns ErrPayloadNotFound if nothing matches.
	LoadPayload(name string) (string, error)
}

// Names of the built-in specimen assets.
const (
	DefaultStyleName    = "specimen"
	DefaultTemplateName = "specimen"
	DefaultSampleName   = "specimen"
)
