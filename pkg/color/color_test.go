package color

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestParseNone(t *testing.T) {
	for _, tok := range []string{"none", "NONE", " None "} {
		c, err := Parse(tok)
		if err != nil {
			t.Errorf("Parse(%q) error = %v, want nil", tok, err)
		}
		if c != nil {
			t.Errorf("Parse(%q) = %v, want nil color", tok, c)
		}
	}
}

func TestParseNamed(t *testing.T) {
	cases := []struct {
		token string
		want  termenv.ANSIColor
	}{
		{"black", termenv.ANSIBlack},
		{"red", termenv.ANSIRed},
		{"dark_red", termenv.ANSIRed},
		{"yellow", termenv.ANSIYellow},
		{"grey", termenv.ANSIWhite},
		{"gray", termenv.ANSIWhite},
		{"dark_grey", termenv.ANSIBrightBlack},
		{"bright_yellow", termenv.ANSIBrightYellow},
		{"bright_cyan", termenv.ANSIBrightCyan},
		{"white", termenv.ANSIBrightWhite},
		{"bright_white", termenv.ANSIBrightWhite},
		{"Bright_Blue", termenv.ANSIBrightBlue},
	}
	for _, tc := range cases {
		c, err := Parse(tc.token)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tc.token, err)
			continue
		}
		got, ok := c.(termenv.ANSIColor)
		if !ok || got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.token, c, tc.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := Parse("#1A2b3C")
	if err != nil {
		t.Fatalf("Parse(#1A2b3C) error = %v", err)
	}
	if _, ok := c.(termenv.RGBColor); !ok {
		t.Fatalf("Parse(#1A2b3C) = %T, want RGBColor", c)
	}
}

func TestParseHexMalformed(t *testing.T) {
	for _, tok := range []string{"#fff", "#12345", "#1234567", "#gg0000", "#"} {
		c, err := Parse(tok)
		if err == nil {
			t.Errorf("Parse(%q) error = nil, want non-nil", tok)
		}
		if c != nil {
			t.Errorf("Parse(%q) = %v, want nil color", tok, c)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	c, err := Parse("chartreuse")
	if err == nil {
		t.Error("Parse(chartreuse) error = nil, want non-nil")
	}
	if c != nil {
		t.Errorf("Parse(chartreuse) = %v, want nil color", c)
	}
}

func TestForegroundNilIdentity(t *testing.T) {
	// Explicit none must never strip styling already in the text.
	s := "\x1b[32malready green\x1b[0m"
	if r := Foreground(s, nil); r != s {
		t.Errorf("Foreground(styled, nil) = %q, want unchanged", r)
	}
}

func TestForegroundANSI(t *testing.T) {
	c, _ := Parse("yellow")
	r := Foreground("hi", c)
	if !strings.HasPrefix(r, "\x1b[") || !strings.HasSuffix(r, "\x1b[0m") {
		t.Errorf("Foreground(hi, yellow) = %q, want escaped and reset", r)
	}
	if !strings.Contains(r, "hi") {
		t.Errorf("Foreground lost text: %q", r)
	}
}

func TestBackgroundSequenceDiffers(t *testing.T) {
	c, _ := Parse("blue")
	fg := Foreground("x", c)
	bg := Background("x", c)
	if fg == bg {
		t.Error("foreground and background sequences should differ")
	}
}

func TestBold(t *testing.T) {
	if r := Bold("hi"); r != "\x1b[1mhi\x1b[22m" {
		t.Errorf("Bold(hi) = %q", r)
	}
}
