package layout

import (
	"math"
	"testing"

	"github.com/ByLCY/chartbox/errors"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		mm := pt * PtToMm
		back := mm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt mm=%g back=%g diff=%g", pt, mm, back, diff)
		}
	}
}

// TestConvertTypographic 覆盖各单位在 72/96 dpi 下换算到设备单位的结果。
func TestConvertTypographic(t *testing.T) {
	fontSize := Pt(12)
	cases := []struct {
		dpi  float64
		in   Measure
		want float64
	}{
		{72, Pt(10), 10},
		{96, Pt(72), 96},
		{96, Measure{Value: 1, Unit: UnitIN}, 96},
		{25.4, Measure{Value: 7, Unit: UnitMM}, 7},
		{25.4, Measure{Value: 2.54, Unit: UnitCM}, 25.4},
		{72, Em(1), 12},
		{96, Em(2), 32},
		{72, Measure{Value: 1, Unit: UnitREM}, 12},
		{300, Px(5), 5},
		{300, Measure{Value: 5}, 5},
	}
	for _, tc := range cases {
		got := ConvertTypographic(tc.dpi, fontSize, tc.in)
		if diff := math.Abs(got - tc.want); diff > 1e-9 {
			t.Fatalf("%s @%gdpi: got=%g want=%g", tc.in, tc.dpi, got, tc.want)
		}
	}
	// 字号本身为 em 时按 12pt 根字号解析
	if got := ConvertTypographic(72, Em(2), Em(1)); math.Abs(got-24) > 1e-9 {
		t.Fatalf("relative font size: got=%g want=24", got)
	}
}

func TestParseMeasure(t *testing.T) {
	cases := map[string]Measure{
		"1em":    Em(1),
		"1.5rem": {Value: 1.5, Unit: UnitREM},
		"12pt":   Pt(12),
		" 3MM ":  {Value: 3, Unit: UnitMM},
		"-2px":   Px(-2),
		"20":     {Value: 20, Unit: UnitNone},
		"0.5in":  {Value: 0.5, Unit: UnitIN},
	}
	for in, want := range cases {
		got, err := ParseMeasure(in)
		if err != nil {
			t.Fatalf("ParseMeasure(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMeasure(%q) = %+v, want %+v", in, got, want)
		}
	}
	for _, bad := range []string{"", "50%", "em", "1furlong"} {
		if _, err := ParseMeasure(bad); !errors.Is(err, errors.CodeInvalidArgument) {
			t.Fatalf("ParseMeasure(%q): expected INVALID_ARGUMENT, got %v", bad, err)
		}
	}
}

// TestLineHeightResolve 验证行高解析：倍数与绝对值两种语义。
func TestLineHeightResolve(t *testing.T) {
	lh, err := ParseLineHeight("1.2x")
	if err != nil {
		t.Fatalf("parse factor: %v", err)
	}
	if got := lh.Resolve(72, Pt(10)); math.Abs(got-12) > 1e-9 {
		t.Fatalf("1.2x @10pt: got=%g want=12", got)
	}
	lh, err = ParseLineHeight("18pt")
	if err != nil {
		t.Fatalf("parse absolute: %v", err)
	}
	if got := lh.Resolve(96, Pt(10)); math.Abs(got-24) > 1e-9 {
		t.Fatalf("18pt @96dpi: got=%g want=24", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#fff":      RGB(255, 255, 255),
		"#0F62FE":   RGB(15, 98, 254),
		"#11223344": {R: 0x11, G: 0x22, B: 0x33, A: 0x44},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", in, got, want)
		}
	}
	for _, bad := range []string{"#12", "#ggg", "red"} {
		if _, err := ParseColor(bad); !errors.Is(err, errors.CodeInvalidArgument) {
			t.Fatalf("ParseColor(%q): expected INVALID_ARGUMENT, got %v", bad, err)
		}
	}
}
