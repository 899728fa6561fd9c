package fontload

import (
	"encoding/base64"
	"fmt"

	"github.com/h2non/filetype"
)

// Source MIME types and CSS format hints.
const (
	MIMETrueType   = "application/x-font-ttf"
	MIMEOpenType   = "font/otf"
	FormatTrueType = "truetype"
	FormatOpenType = "opentype"
)

// Descriptor describes a loadable font-face before it is parsed and registered.
// It mirrors the fields of a CSS @font-face rule.
type Descriptor struct {
	Family  string
	Variant Variant
	Weight  Weight
	Style   string
	Display string

	// Source is the cleaned base64 payload.
	Source string
	MIME   string
	Format string

	data []byte
}

// NewDescriptor cleans and decodes payload and tags it with the family and the
// weight of v. TrueType is assumed unless the decoded data carries the
// OpenType/CFF signature.
func NewDescriptor(family string, v Variant, payload string) (*Descriptor, error) {
	src := Clean(payload)
	if src == "" {
		return nil, ErrEmptyPayload
	}

	data, err := decodePayload(src)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Family:  family,
		Variant: v,
		Weight:  v.Weight(),
		Style:   StyleNormal,
		Display: DisplaySwap,
		Source:  src,
		MIME:    MIMETrueType,
		Format:  FormatTrueType,
		data:    data,
	}
	if filetype.Is(data, "otf") {
		d.MIME = MIMEOpenType
		d.Format = FormatOpenType
	}
	return d, nil
}

// decodePayload accepts padded and unpadded standard base64.
func decodePayload(src string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(src)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(src); rawErr == nil {
		return raw, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrDecodePayload, err)
}

// Data returns the decoded font binary.
func (d *Descriptor) Data() []byte {
	return d.data
}

// URL returns the CSS source expression for the descriptor, e.g.
//
//	url(data:application/x-font-ttf;charset=utf-8;base64,AAEAAA...) format('truetype')
func (d *Descriptor) URL() string {
	return fmt.Sprintf("url(data:%s;charset=utf-8;base64,%s) format('%s')", d.MIME, d.Source, d.Format)
}

// String identifies the descriptor in logs, e.g. "Go (bold)".
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s (%s)", d.Family, d.Variant)
}
