package fontload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestNewDescriptor(t *testing.T) {
	t.Parallel()

	otf := base64.StdEncoding.EncodeToString(append([]byte("OTTO\x00"), make([]byte, 32)...))

	tests := []struct {
		name       string
		payload    string
		variant    Variant
		wantData   []byte
		wantMIME   string
		wantFormat string
		wantErr    error
	}{
		{
			name:       "padded base64",
			payload:    "QUJD",
			variant:    VariantNormal,
			wantData:   []byte("ABC"),
			wantMIME:   MIMETrueType,
			wantFormat: FormatTrueType,
		},
		{
			name:       "unpadded base64",
			payload:    "QUI",
			variant:    VariantBold,
			wantData:   []byte("AB"),
			wantMIME:   MIMETrueType,
			wantFormat: FormatTrueType,
		},
		{
			name:       "line-wrapped payload",
			payload:    "QU\nJD\n",
			variant:    VariantNormal,
			wantData:   []byte("ABC"),
			wantMIME:   MIMETrueType,
			wantFormat: FormatTrueType,
		},
		{
			name:       "opentype signature",
			payload:    otf,
			variant:    VariantNormal,
			wantMIME:   MIMEOpenType,
			wantFormat: FormatOpenType,
		},
		{name: "empty payload", payload: "", wantErr: ErrEmptyPayload},
		{name: "whitespace payload", payload: "\n\n", wantErr: ErrEmptyPayload},
		{name: "not base64", payload: "not*base64!", wantErr: ErrDecodePayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := NewDescriptor("Go", tt.variant, tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantData != nil && !bytes.Equal(d.Data(), tt.wantData) {
				t.Errorf("Data() = %q, want %q", d.Data(), tt.wantData)
			}
			if d.MIME != tt.wantMIME || d.Format != tt.wantFormat {
				t.Errorf("MIME/Format = %s/%s, want %s/%s", d.MIME, d.Format, tt.wantMIME, tt.wantFormat)
			}
			if d.Weight != tt.variant.Weight() {
				t.Errorf("Weight = %d, want %d", d.Weight, tt.variant.Weight())
			}
			if d.Style != StyleNormal || d.Display != DisplaySwap {
				t.Errorf("Style/Display = %s/%s, want normal/swap", d.Style, d.Display)
			}
			if strings.ContainsAny(d.Source, " \n") {
				t.Errorf("Source not cleaned: %q", d.Source)
			}
		})
	}
}

func TestDescriptor_URL(t *testing.T) {
	t.Parallel()

	d, err := NewDescriptor("Go", VariantBold, "QUJD\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "url(data:application/x-font-ttf;charset=utf-8;base64,QUJD) format('truetype')"
	if got := d.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
	if got := d.String(); got != "Go (bold)" {
		t.Errorf("String() = %q, want %q", got, "Go (bold)")
	}
}
