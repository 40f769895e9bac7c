package card

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 advances 7px per glyph, which makes expected widths easy
// to reason about in these tests.
var testFace = basicfont.Face7x13

func TestWrap_EveryLineFitsMaxWidth(t *testing.T) {
	text := "May the festival of lights brighten your life with endless joy and happiness"
	maxWidth := 140 // 20 characters

	lines := Wrap(text, testFace, maxWidth)
	if len(lines) == 0 {
		t.Fatalf("expected at least one line")
	}

	for _, line := range lines {
		width := font.MeasureString(testFace, line).Ceil()
		if width > maxWidth && len(strings.Fields(line)) > 1 {
			t.Errorf("line %q is %dpx wide, exceeds %dpx", line, width, maxWidth)
		}
	}
}

func TestWrap_PreservesWordSequence(t *testing.T) {
	text := "wishing you a very happy and colorful holi full of sweets"

	lines := Wrap(text, testFace, 100)

	var got []string
	for _, line := range lines {
		got = append(got, strings.Fields(line)...)
	}

	want := strings.Fields(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("word sequence changed:\n got %v\nwant %v", got, want)
	}
}

func TestWrap_OverwideSingleWordKeptWhole(t *testing.T) {
	// 30 characters at 7px each = 210px, far beyond the 70px budget.
	word := strings.Repeat("x", 30)
	text := "short " + word + " tail"

	lines := Wrap(text, testFace, 70)

	found := false
	for _, line := range lines {
		if line == word {
			found = true
		}
	}
	if !found {
		t.Errorf("expected over-wide word to appear unmodified as its own line, got %v", lines)
	}
}

func TestWrap_Deterministic(t *testing.T) {
	text := "gratitude turns what we have into enough and more"

	first := Wrap(text, testFace, 120)
	for i := 0; i < 10; i++ {
		if got := Wrap(text, testFace, 120); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestWrap_EmptyText(t *testing.T) {
	if lines := Wrap("", testFace, 100); len(lines) != 0 {
		t.Errorf("expected no lines for empty text, got %v", lines)
	}
	if lines := Wrap("   \n\t ", testFace, 100); len(lines) != 0 {
		t.Errorf("expected no lines for whitespace text, got %v", lines)
	}
}

func TestWrap_SingleShortWord(t *testing.T) {
	lines := Wrap("hello", testFace, 200)
	if len(lines) != 1 || lines[0] != "hello" {
		t.Errorf("expected [hello], got %v", lines)
	}
}
