package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/chartbox/dsl"
	"github.com/ByLCY/chartbox/errors"
)

const eps = 1e-9

func linear(min, max float64) Config {
	return Config{Kind: KindLinear, Min: ptr(min), Max: ptr(max)}
}

// TestLinearRoundTrip 验证预设边界下 translate→untranslate 还原原值。
func TestLinearRoundTrip(t *testing.T) {
	c := linear(-20, 80)
	values := []float64{-20, -3.5, 0, 12.25, 79.999, 80}
	mapped, err := Translate(c, SeriesFromFloats(values))
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	for i, v := range values {
		back, err := Untranslate(c, mapped[i])
		if err != nil {
			t.Fatalf("untranslate: %v", err)
		}
		if diff := math.Abs(back - v); diff > eps {
			t.Fatalf("往返误差过大: in=%g t=%g back=%g", v, mapped[i], back)
		}
	}
}

func TestLinearInvertedIsComplement(t *testing.T) {
	normal := linear(0, 200)
	inverted := normal
	inverted.Inverted = true
	series := SeriesFromFloats([]float64{-50, 0, 37, 200, 260})

	a, err := Translate(normal, series)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	b, err := Translate(inverted, series)
	if err != nil {
		t.Fatalf("translate inverted: %v", err)
	}
	for i := range a {
		if diff := math.Abs(b[i] - (1 - a[i])); diff > eps {
			t.Fatalf("value %s: inverted=%g normal=%g", series[i], b[i], a[i])
		}
	}

	back, err := Untranslate(inverted, b[2])
	if err != nil {
		t.Fatalf("untranslate inverted: %v", err)
	}
	if math.Abs(back-37) > eps {
		t.Fatalf("inverted untranslate = %g, want 37", back)
	}
}

func TestLinearNoClamping(t *testing.T) {
	got, err := Translate(linear(0, 10), Series{"-5", "15"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if diff := cmp.Diff([]float64{-0.5, 1.5}, got); diff != "" {
		t.Fatalf("out of range values must not be clamped (-want +got):\n%s", diff)
	}
}

func TestFitSnapZero(t *testing.T) {
	c := NewConfig()
	c.Padding = 0.1
	if err := Fit(Series{"3", "7", "12"}, c, true); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if *c.Min != 0 {
		t.Fatalf("snap zero: min = %g, want 0", *c.Min)
	}
	if want := 12 + 0.1*(12-3); math.Abs(*c.Max-want) > eps {
		t.Fatalf("max = %g, want %g", *c.Max, want)
	}
	if c.State() != Fitted {
		t.Fatalf("state not updated")
	}
}

func TestFitPaddingWithoutSnap(t *testing.T) {
	c := NewConfig()
	c.Padding = 0.25
	if err := Fit(Series{"4", "-2", "10", "-2"}, c, false); err != nil {
		t.Fatalf("fit: %v", err)
	}
	span := 10.0 - (-2.0)
	if want := -2 - 0.25*span; math.Abs(*c.Min-want) > eps {
		t.Fatalf("min = %g, want %g", *c.Min, want)
	}
	if want := 10 + 0.25*span; math.Abs(*c.Max-want) > eps {
		t.Fatalf("max = %g, want %g", *c.Max, want)
	}
}

func TestFitSnapZeroIgnoresNegativeMinimum(t *testing.T) {
	c := NewConfig()
	if err := Fit(Series{"-4", "6"}, c, true); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if *c.Min != -4 || *c.Max != 6 {
		t.Fatalf("bounds = [%g,%g], want [-4,6]", *c.Min, *c.Max)
	}
}

func TestFitOnlyUnsetBounds(t *testing.T) {
	c := NewConfig()
	c.Max = ptr(100)
	c.Padding = 0.5
	if err := Fit(Series{"20", "40", "250"}, c, false); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if *c.Max != 100 {
		t.Fatalf("preset max changed to %g", *c.Max)
	}
	// range 使用预设的 max：100 - 20 = 80
	if want := 20 - 0.5*80.0; math.Abs(*c.Min-want) > eps {
		t.Fatalf("min = %g, want %g", *c.Min, want)
	}
}

func TestFitEmptySeriesLeavesZeroRange(t *testing.T) {
	c := NewConfig()
	if err := Fit(nil, c, false); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if *c.Min != 0 || *c.Max != 0 {
		t.Fatalf("bounds = [%g,%g], want [0,0]", *c.Min, *c.Max)
	}
	_, err := Translate(*c, Series{"1"})
	if !errors.Is(err, errors.CodeDomainDegenerate) {
		t.Fatalf("expected DOMAIN_DEGENERATE, got %v", err)
	}
}

func TestFitRejectsNonNumeric(t *testing.T) {
	c := NewConfig()
	err := Fit(Series{"1", "abc"}, c, false)
	if !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	if c.Min != nil || c.Max != nil || c.State() != Unfit {
		t.Fatalf("config mutated after failed fit: %+v", c)
	}
}

func TestTranslateUnfitLinear(t *testing.T) {
	_, err := Translate(*NewConfig(), Series{"1"})
	if !errors.Is(err, errors.CodeDomainUnfit) {
		t.Fatalf("expected DOMAIN_UNFIT, got %v", err)
	}
	if _, err := Untranslate(*NewConfig(), 0.5); !errors.Is(err, errors.CodeDomainUnfit) {
		t.Fatalf("expected DOMAIN_UNFIT from untranslate, got %v", err)
	}
}

func TestCategoricalFitIdempotent(t *testing.T) {
	c := &Config{Kind: KindCategorical, Categories: []string{"z"}}
	data := Series{"b", "a", "b", "z", "c"}
	if err := Fit(data, c, false); err != nil {
		t.Fatalf("fit: %v", err)
	}
	first := append([]string(nil), c.Categories...)
	if err := Fit(data, c, false); err != nil {
		t.Fatalf("refit: %v", err)
	}
	if diff := cmp.Diff([]string{"z", "b", "a", "c"}, c.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, c.Categories); diff != "" {
		t.Fatalf("second fit changed categories:\n%s", diff)
	}
}

func TestCategoricalTranslateSlots(t *testing.T) {
	c := Config{Kind: KindCategorical, Categories: []string{"a", "b"}}
	got, err := Translate(c, Series{"a", "b", "a"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if diff := cmp.Diff([]float64{0.25, 0.75, 0.25}, got); diff != "" {
		t.Fatalf("slot centers mismatch (-want +got):\n%s", diff)
	}

	c.Inverted = true
	got, err = Translate(c, Series{"a"})
	if err != nil {
		t.Fatalf("translate inverted: %v", err)
	}
	if got[0] != 0.75 {
		t.Fatalf("inverted a = %g, want 0.75", got[0])
	}
}

func TestCategoricalErrors(t *testing.T) {
	empty := Config{Kind: KindCategorical}
	if _, err := Translate(empty, Series{"a"}); !errors.Is(err, errors.CodeDomainDegenerate) {
		t.Fatalf("expected DOMAIN_DEGENERATE, got %v", err)
	}
	c := Config{Kind: KindCategorical, Categories: []string{"a"}}
	if _, err := Translate(c, Series{"missing"}); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	if _, err := Untranslate(c, 0.5); !errors.Is(err, errors.CodeUnsupported) {
		t.Fatalf("expected UNSUPPORTED, got %v", err)
	}
}

func TestUntranslateCategory(t *testing.T) {
	c := Config{Kind: KindCategorical, Categories: []string{"a", "b", "c", "d"}}
	cases := []struct {
		t    float64
		want string
	}{
		{0, "a"}, {0.125, "a"}, {0.3, "b"}, {0.5, "c"}, {0.99, "d"}, {1, "d"}, {-0.2, "a"}, {1.7, "d"},
	}
	for _, tc := range cases {
		got, err := UntranslateCategory(c, tc.t)
		if err != nil {
			t.Fatalf("untranslate %g: %v", tc.t, err)
		}
		if got != tc.want {
			t.Fatalf("t=%g: got %q want %q", tc.t, got, tc.want)
		}
	}

	c.Inverted = true
	if got, _ := UntranslateCategory(c, 0.1); got != "d" {
		t.Fatalf("inverted t=0.1: got %q want d", got)
	}
	// 每个槽位中心反向映射回自身
	pos, _ := Translate(c, Series{"b"})
	if got, _ := UntranslateCategory(c, pos[0]); got != "b" {
		t.Fatalf("center round trip: got %q want b", got)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("linear"); err != nil || k != KindLinear {
		t.Fatalf("linear: %v %v", k, err)
	}
	if k, err := ParseKind("categorical"); err != nil || k != KindCategorical {
		t.Fatalf("categorical: %v %v", k, err)
	}
	if _, err := ParseKind("logarithmic"); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestConfigureFromExpression(t *testing.T) {
	expr, err := dsl.ParseExpr(`(domain scale categorical inverted on categories (x y x z))`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := NewConfig()
	if err := Configure(expr.Args(), c); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if c.Kind != KindCategorical || !c.Inverted {
		t.Fatalf("unexpected config %+v", c)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, c.Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}

	expr, _ = dsl.ParseExpr(`(domain min 1 max 9 padding 0.05)`)
	c = NewConfig()
	if err := Configure(expr.Args(), c); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if !c.Resolved() || *c.Min != 1 || *c.Max != 9 || c.Padding != 0.05 {
		t.Fatalf("unexpected linear config %+v", c)
	}

	expr, _ = dsl.ParseExpr(`(domain scale log)`)
	if err := Configure(expr.Args(), NewConfig()); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestTicks(t *testing.T) {
	c := linear(0, 100)
	ticks, err := Ticks(c, 8)
	if err != nil {
		t.Fatalf("ticks: %v", err)
	}
	if len(ticks) == 0 || len(ticks) > 8 {
		t.Fatalf("tick count %d out of range", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Value < 0 || tk.Value > 100 {
			t.Fatalf("tick %g outside domain", tk.Value)
		}
		if i > 0 && tk.Value <= ticks[i-1].Value {
			t.Fatalf("ticks not increasing: %+v", ticks)
		}
		if math.Abs(tk.Position-tk.Value/100) > eps {
			t.Fatalf("tick %g at position %g", tk.Value, tk.Position)
		}
	}

	cat := Config{Kind: KindCategorical, Categories: []string{"a", "b"}}
	got, err := Ticks(cat, 4)
	if err != nil {
		t.Fatalf("categorical ticks: %v", err)
	}
	want := []Tick{{Value: 0, Label: "a", Position: 0.25}, {Value: 1, Label: "b", Position: 0.75}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("categorical ticks (-want +got):\n%s", diff)
	}

	if _, err := Ticks(c, 0); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for max=0, got %v", err)
	}
}

func TestStateFollowsConfig(t *testing.T) {
	c := NewConfig()
	c.Max = ptr(10)
	if c.State() != Unfit {
		t.Fatalf("half-set linear domain must be unfit")
	}
	if _, err := Translate(*c, Series{"5"}); !errors.Is(err, errors.CodeDomainUnfit) {
		t.Fatalf("expected DOMAIN_UNFIT, got %v", err)
	}

	// 两端边界都由配置给出时无需 Fit 即可映射
	expr, err := dsl.ParseExpr(`(domain min 1e-3 max 2e3)`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c = NewConfig()
	if err := Configure(expr.Args(), c); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if c.State() != Fitted || *c.Min != 0.001 || *c.Max != 2000 {
		t.Fatalf("unexpected config %+v (state %v)", c, c.State())
	}
	if _, err := Translate(*c, Series{"5"}); err != nil {
		t.Fatalf("translate: %v", err)
	}

	cat := Config{Kind: KindCategorical}
	if cat.State() != Unfit {
		t.Fatalf("categorical domain without categories must be unfit")
	}
	if err := Fit(Series{"a"}, &cat, false); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if cat.State() != Fitted {
		t.Fatalf("categorical domain with categories must be fitted")
	}
}

func TestCategoricalTicksThinned(t *testing.T) {
	var cats []string
	for i := 0; i < 11; i++ {
		cats = append(cats, fmt.Sprintf("c%d", i))
	}
	c := Config{Kind: KindCategorical, Categories: cats}
	ticks, err := Ticks(c, 10)
	if err != nil {
		t.Fatalf("ticks: %v", err)
	}
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	want := []string{"c0", "c2", "c4", "c6", "c8", "c10"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("thinned labels (-want +got):\n%s", diff)
	}
	if math.Abs(ticks[1].Position-2.5/11) > eps {
		t.Fatalf("thinned tick must stay at its slot center, got %g", ticks[1].Position)
	}
}
