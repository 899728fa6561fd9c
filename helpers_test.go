package fontload

import (
	"context"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// goTable is a one-family table of real font data.
func goTable() Table {
	return Table{{Family: "Go", Normal: Encode(goregular.TTF), Bold: Encode(gobold.TTF)}}
}

// stubFont is a ParsedFont that needs no font data.
type stubFont struct{}

func (stubFont) Name() string    { return "Stub" }
func (stubFont) UnitsPerEm() int { return 1000 }

// stubFaces accepts any decodable payload without parsing it.
var stubFaces = FaceLoaderFunc(func(_ context.Context, d *Descriptor) (*Face, error) {
	return &Face{Descriptor: d, Font: stubFont{}}, nil
})

// stubFace builds a face without decoding or parsing anything.
func stubFace(family string, v Variant) *Face {
	return &Face{
		Descriptor: &Descriptor{Family: family, Variant: v, Weight: v.Weight(), Style: StyleNormal, Display: DisplaySwap},
		Font:       stubFont{},
	}
}
