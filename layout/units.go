package layout

import (
	"strconv"
	"strings"

	"github.com/ByLCY/chartbox/errors"
)

// This file defines unit-safe measures and the typographic unit conversion.

// Unit represents the original unit of a measure as specified in the chart description.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers, taken as device units
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
	UnitPX               // device units
	UnitEM               // multiples of the active font size
	UnitREM              // multiples of the root font size
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// rootFontSizePT is the font size em/rem resolve against when the font size itself is relative.
const rootFontSizePT = 12.0

var unitSuffixes = []struct {
	s string
	u Unit
}{{"rem", UnitREM}, {"em", UnitEM}, {"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}, {"px", UnitPX}}

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	case UnitPX:
		return "px"
	case UnitEM:
		return "em"
	case UnitREM:
		return "rem"
	default:
		return ""
	}
}

// Measure preserves a numeric value with its unit until draw time.
type Measure struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (m Measure) IsZero() bool { return m.Value == 0 }

func (m Measure) String() string {
	return strconv.FormatFloat(m.Value, 'g', -1, 64) + UnitToString(m.Unit)
}

// Em returns a measure of v times the active font size.
func Em(v float64) Measure { return Measure{Value: v, Unit: UnitEM} }

// Pt returns a measure in points.
func Pt(v float64) Measure { return Measure{Value: v, Unit: UnitPT} }

// Px returns a measure in device units.
func Px(v float64) Measure { return Measure{Value: v, Unit: UnitPX} }

// ParseMeasure parses "1.5em", "12pt", "3mm", "20" and so on.
// Percentages are rejected: margins and borders have no reference length.
func ParseMeasure(value string) (Measure, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Measure{}, errors.New(errors.CodeInvalidArgument, "长度为空")
	}
	if strings.HasSuffix(v, "%") {
		return Measure{}, errors.New(errors.CodeInvalidArgument, "不支持百分比长度 %q", value)
	}
	unit := UnitNone
	num := v
	for _, suf := range unitSuffixes {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Measure{}, errors.Wrap(errors.CodeInvalidArgument, err, "无法解析长度 %q", value)
	}
	return Measure{Value: f, Unit: unit}, nil
}

// ConvertTypographic resolves m to absolute device units for a surface of the given dpi.
// em/rem are resolved against fontSize; a relative fontSize falls back to a 12pt root.
func ConvertTypographic(dpi float64, fontSize Measure, m Measure) float64 {
	switch m.Unit {
	case UnitPT:
		return m.Value * dpi / 72
	case UnitMM:
		return m.Value * dpi / 25.4
	case UnitCM:
		return m.Value * 10 * dpi / 25.4
	case UnitIN:
		return m.Value * dpi
	case UnitEM:
		return m.Value * fontSizeDevice(dpi, fontSize)
	case UnitREM:
		return m.Value * rootFontSizePT * dpi / 72
	default:
		return m.Value
	}
}

func fontSizeDevice(dpi float64, fontSize Measure) float64 {
	if fontSize.Unit == UnitEM || fontSize.Unit == UnitREM {
		return fontSize.Value * rootFontSizePT * dpi / 72
	}
	return ConvertTypographic(dpi, fontSize, fontSize)
}

// LineHeightKind distinguishes factor-based vs absolute line-height specification.
type LineHeightKind int

const (
	LineHeightFactor LineHeightKind = iota
	LineHeightAbsolute
)

// LineHeightSpec preserves original author intent: either a factor (e.g., 1.2x) or an absolute measure (e.g., 18pt).
type LineHeightSpec struct {
	Kind   LineHeightKind `json:"kind"`
	Factor float64        `json:"factor,omitempty"`
	Len    Measure        `json:"len,omitempty"`
}

// ParseLineHeight accepts "1.2x" (factor) or any measure.
func ParseLineHeight(value string) (LineHeightSpec, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if strings.HasSuffix(v, "x") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "x"), 64)
		if err != nil {
			return LineHeightSpec{}, errors.Wrap(errors.CodeInvalidArgument, err, "无法解析行高 %q", value)
		}
		return LineHeightSpec{Kind: LineHeightFactor, Factor: f}, nil
	}
	m, err := ParseMeasure(v)
	if err != nil {
		return LineHeightSpec{}, err
	}
	return LineHeightSpec{Kind: LineHeightAbsolute, Len: m}, nil
}

// Resolve computes the absolute line height in device units for a font of fontSize.
func (s LineHeightSpec) Resolve(dpi float64, fontSize Measure) float64 {
	switch s.Kind {
	case LineHeightFactor:
		return fontSizeDevice(dpi, fontSize) * s.Factor
	case LineHeightAbsolute:
		return ConvertTypographic(dpi, fontSize, s.Len)
	default:
		// fallback to 1.2x if unspecified
		return fontSizeDevice(dpi, fontSize) * 1.2
	}
}
