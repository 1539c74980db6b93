package style_test

import (
	"errors"
	"image/color"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"oss/style"
)

func observedParser() (*style.Parser, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return style.NewParser(zap.New(core)), logs
}

func TestKey_RoundTrip(t *testing.T) {
	p, logs := observedParser()

	for _, name := range style.KeyNames() {
		k := p.Key(name)
		if k == style.KeyInvalid {
			t.Errorf("Key(%q) is invalid", name)
			continue
		}
		if got := p.KeyName(k); got != name {
			t.Errorf("KeyName(Key(%q)) = %q", name, got)
		}
		if !style.ValidKey(name) {
			t.Errorf("ValidKey(%q) = false", name)
		}
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", logs.All())
	}
	if len(style.KeyNames()) != 23 {
		t.Errorf("expected 23 properties, got %d", len(style.KeyNames()))
	}
}

func TestValue_RoundTrip(t *testing.T) {
	p, logs := observedParser()

	for _, name := range style.ValueNames() {
		v := p.Value(name)
		if v == style.ValueInvalid {
			t.Errorf("Value(%q) is invalid", name)
			continue
		}
		if got := p.ValueName(v); got != name {
			t.Errorf("ValueName(Value(%q)) = %q", name, got)
		}
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", logs.All())
	}
}

func TestParser_UnknownNames(t *testing.T) {
	p, logs := observedParser()

	if got := p.Key("border"); got != style.KeyInvalid {
		t.Errorf("Key(border) = %v, want KeyInvalid", got)
	}
	if got := p.KeyName(style.KeyInvalid); got != "" {
		t.Errorf("KeyName(KeyInvalid) = %q, want empty", got)
	}
	if got := p.Value("flex"); got != style.ValueInvalid {
		t.Errorf("Value(flex) = %v, want ValueInvalid", got)
	}
	if got := p.ValueName(style.Value(1000)); got != "" {
		t.Errorf("ValueName(1000) = %q, want empty", got)
	}
	if style.ValidKey("border") || style.ValidValue("flex") {
		t.Error("unknown names should not be valid")
	}

	if logs.Len() != 4 {
		t.Errorf("expected 4 diagnostics, got %d", logs.Len())
	}
	if logs.FilterMessage("Unknown style key").Len() != 2 {
		t.Error("expected unknown key diagnostics")
	}
}

func TestParser_CaseInsensitive(t *testing.T) {
	p, _ := observedParser()

	if got := p.Key("Background-Color"); got != style.KeyBackgroundColor {
		t.Errorf("Key(Background-Color) = %v", got)
	}
	if got := p.Value("CENTER"); got != style.ValueCenter {
		t.Errorf("Value(CENTER) = %v", got)
	}
}

func TestKey_Kind(t *testing.T) {
	tests := []struct {
		key  style.Key
		kind style.Kind
	}{
		{style.KeyOpacity, style.KindNumber},
		{style.KeyFontSize, style.KindNumber},
		{style.KeyLineHeight, style.KindNumber},
		{style.KeyTextPadding, style.KindNumber},
		{style.KeyBackgroundColor, style.KindColor},
		{style.KeyColor, style.KindColor},
		{style.KeyTextBackgroundColor, style.KindColor},
		{style.KeyWidth, style.KindString},
		{style.KeyBackgroundGradient, style.KindString},
		{style.KeyFontFamily, style.KindString},
		{style.KeyInvalid, style.KindUnset},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
		err   bool
	}{
		{"#FF8000", color.NRGBA{255, 128, 0, 255}, false},
		{"#00ff7f", color.NRGBA{0, 255, 127, 255}, false},
		{"rgba(1,2,3,4)", color.NRGBA{1, 2, 3, 4}, false},
		{"RGBA( 1, 2, 3, 4 )", color.NRGBA{1, 2, 3, 4}, false},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}, false},
		{"10,20,30", color.NRGBA{10, 20, 30, 255}, false},
		{" 10, 20, 30, 40 ", color.NRGBA{10, 20, 30, 40}, false},
		{"#fff", style.Black, true},
		{"#gggggg", style.Black, true},
		{"rgba(1,2,3)", style.Black, true},
		{"rgb(1,2,3,4)", style.Black, true},
		{"300,0,0", style.Black, true},
		{"-1,0,0", style.Black, true},
		{"red", style.Black, true},
		{"", style.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := style.ParseColor(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseColor(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if err != nil && !errors.Is(err, style.ErrMalformed) {
				t.Errorf("error should wrap ErrMalformed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatColor_RoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{{}, {1, 2, 3, 4}, {255, 255, 255, 255}, {0, 0, 0, 255}} {
		s := style.FormatColor(c)
		got, err := style.ParseColor(s)
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", s, err)
		}
		if got != c {
			t.Errorf("round trip of %v via %q = %v", c, s, got)
		}
	}
	if got := style.FormatColor(color.NRGBA{255, 0, 0, 128}); got != "rgba(255,0,0,128)" {
		t.Errorf("FormatColor() = %q", got)
	}
}

func TestParser_ColorFallback(t *testing.T) {
	p, logs := observedParser()

	if got := p.Color("not a color"); got != style.Black {
		t.Errorf("Color() = %v, want black", got)
	}
	if logs.FilterMessage("Unable to parse color, using black").Len() != 1 {
		t.Errorf("expected diagnostic, got %v", logs.All())
	}
}

func TestLerpColor(t *testing.T) {
	from := color.NRGBA{0, 0, 0, 0}
	to := color.NRGBA{255, 255, 255, 255}

	tests := []struct {
		t    float64
		want color.NRGBA
	}{
		{0, from},
		{1, to},
		{0.5, color.NRGBA{128, 128, 128, 128}},
		{-1, from},
		{2, to},
	}
	for _, tt := range tests {
		if got := style.LerpColor(from, to, tt.t); got != tt.want {
			t.Errorf("LerpColor(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestParseGradient(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	def := style.Gradient{From: color.NRGBA{1, 1, 1, 1}, To: color.NRGBA{2, 2, 2, 2}}

	tests := []struct {
		input string
		want  style.Gradient
		err   bool
	}{
		{"#000000 #ffffff", style.Gradient{From: black, To: white}, false},
		{"#000000 #ffffff vertical", style.Gradient{From: black, To: white, Vertical: true}, false},
		{"Vertical #000000 #ffffff", style.Gradient{From: black, To: white, Vertical: true}, false},
		{"rgba(0, 0, 0, 255)  horizontal rgb(255, 255, 255)", style.Gradient{From: black, To: white}, false},
		{"#000000", def, true},
		{"#000000 #ffffff #000000", def, true},
		{"#000000 #ffffff vertical horizontal", def, true},
		{"#000000 nope", def, true},
		{"", def, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := style.ParseGradient(tt.input, def)
			if (err != nil) != tt.err {
				t.Fatalf("ParseGradient(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ParseGradient(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input  string
		parent float64
		want   float64
		err    bool
	}{
		{"50%", 200, 100, false},
		{"30px", 200, 30, false},
		{"30", 200, 30, false},
		{" 12.5PX ", 0, 12.5, false},
		{"0", 100, 0, false},
		{"auto", 200, style.AutoDimension, false},
		{"", 200, style.AutoDimension, false},
		{"-5", 200, 0, true},
		{"-10%", 200, 0, true},
		{"abc", 200, 0, true},
		{"%", 200, 0, true},
		{"NaN", 200, 0, true},
		{"Inf", 200, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := style.ParseDimension(tt.input, tt.parent)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDimension(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ParseDimension(%q, %v) = %v, want %v", tt.input, tt.parent, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		err   bool
	}{
		{"0.5", 0.5, false},
		{"12px", 12, false},
		{"-3", -3, false},
		{"1e2", 100, false},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := style.ParseNumber(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseNumber(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParser_Diagnostics(t *testing.T) {
	p, logs := observedParser()

	if got := p.Dimension("wide", 100); got != 0 {
		t.Errorf("Dimension(wide) = %v, want 0", got)
	}
	if _, ok := p.Number("many"); ok {
		t.Error("Number(many) should fail")
	}
	def := style.Gradient{Vertical: true}
	if got := p.Gradient("#000000", def); got != def {
		t.Errorf("Gradient() = %+v, want default", got)
	}

	for _, msg := range []string{"Unable to parse dimension", "Unable to parse number", "Unable to parse background gradient"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Errorf("expected diagnostic %q, got %v", msg, logs.All())
		}
	}
	for _, e := range logs.All() {
		if e.Level != zapcore.WarnLevel || e.LoggerName != "style-parser" {
			t.Errorf("unexpected entry %+v", e.Entry)
		}
	}
}

func TestTransformText(t *testing.T) {
	tests := []struct {
		transform string
		input     string
		want      string
	}{
		{"uppercase", "hello world", "HELLO WORLD"},
		{"lowercase", "Hello World", "hello world"},
		{"capitalize", "hello wORLD", "Hello WORLD"},
		{"none", "Hello", "Hello"},
		{"", "Hello", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.transform, func(t *testing.T) {
			root := style.New(nil, style.WithDefaults(false))
			if tt.transform != "" {
				root.Set(style.KeyTextTransform, tt.transform)
			}
			if got := root.TransformText(tt.input); got != tt.want {
				t.Errorf("TransformText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
