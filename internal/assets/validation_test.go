package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{name: "simple name", input: "specimen", wantErr: nil},
		{name: "name with hyphen", input: "caveat-regular", wantErr: nil},
		{name: "name with underscore", input: "caveat_bold", wantErr: nil},
		{name: "name with numbers", input: "lmroman10", wantErr: nil},
		{name: "mixed case", input: "CaveatBold", wantErr: nil},
		{name: "at length limit", input: strings.Repeat("a", MaxAssetNameLength), wantErr: nil},

		// Invalid names
		{name: "empty name", input: "", wantErr: ErrInvalidAssetName},
		{name: "over length limit", input: strings.Repeat("a", MaxAssetNameLength+1), wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "fonts/caveat", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: `fonts\caveat`, wantErr: ErrInvalidAssetName},
		{name: "parent traversal", input: "../etc/passwd", wantErr: ErrInvalidAssetName},
		{name: "dot only", input: ".", wantErr: ErrInvalidAssetName},
		{name: "extension given", input: "caveat.ttf", wantErr: ErrInvalidAssetName},
		{name: "hidden file", input: ".hidden", wantErr: ErrInvalidAssetName},
		{name: "newline", input: "caveat\nbold", wantErr: ErrInvalidAssetName},
		{name: "null byte", input: "caveat\x00", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
