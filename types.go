package fontload

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight is a CSS font weight.
type Weight int

// Weights used by the two supported variants.
const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// String returns the weight as a CSS numeric value ("400", "700").
func (w Weight) String() string {
	return strconv.Itoa(int(w))
}

// Descriptor style and display values.
const (
	StyleNormal = "normal"
	DisplaySwap = "swap"
)

// Variant identifies one weight of a family.
type Variant int

// Supported variants.
const (
	VariantNormal Variant = iota
	VariantBold
)

// variants lists every variant in load order.
var variants = [...]Variant{VariantNormal, VariantBold}

// String returns "normal" or "bold".
func (v Variant) String() string {
	switch v {
	case VariantNormal:
		return "normal"
	case VariantBold:
		return "bold"
	default:
		return "variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// Weight returns the CSS weight the variant is registered with.
func (v Variant) Weight() Weight {
	if v == VariantBold {
		return WeightBold
	}
	return WeightNormal
}

// Entry is one family of the font table.
// Normal and Bold hold base64 payloads; an empty string means the variant is absent.
type Entry struct {
	Family string
	Normal string
	Bold   string
}

// Payload returns the stored payload for v and whether the variant is present.
func (e Entry) Payload(v Variant) (string, bool) {
	var p string
	switch v {
	case VariantNormal:
		p = e.Normal
	case VariantBold:
		p = e.Bold
	}
	return p, p != ""
}

// Variants returns the present variants in load order (normal before bold).
func (e Entry) Variants() []Variant {
	out := make([]Variant, 0, len(variants))
	for _, v := range variants {
		if _, ok := e.Payload(v); ok {
			out = append(out, v)
		}
	}
	return out
}

// Table is the ordered, read-only collection of font entries.
type Table []Entry

// Validate checks that every entry names a family, has at least one variant,
// and that no family appears twice (case-insensitive).
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t))
	for i, e := range t {
		if strings.TrimSpace(e.Family) == "" {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidTable, i, ErrEmptyFamily)
		}
		if len(e.Variants()) == 0 {
			return fmt.Errorf("%w: %q: %w", ErrInvalidTable, e.Family, ErrNoVariants)
		}
		key := strings.ToLower(e.Family)
		if seen[key] {
			return fmt.Errorf("%w: %w: %q", ErrInvalidTable, ErrDuplicate, e.Family)
		}
		seen[key] = true
	}
	return nil
}

// Families returns the family names in table order.
func (t Table) Families() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Family
	}
	return out
}

// VariantCount returns the number of present variants across the table.
func (t Table) VariantCount() int {
	n := 0
	for _, e := range t {
		n += len(e.Variants())
	}
	return n
}

// Result is the outcome of loading one variant.
// Err is nil on success and wraps ErrVariantLoad otherwise.
type Result struct {
	Family  string
	Variant Variant
	Weight  Weight
	Err     error
}

// OK reports whether the variant was loaded and registered.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary counts loaded and failed variants.
type Summary struct {
	Loaded int
	Failed int
}

// Summarize counts the outcomes in results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.OK() {
			s.Loaded++
		} else {
			s.Failed++
		}
	}
	return s
}
