package gofigure

import (
	"strings"
	"testing"
)

func TestRenderMathMarkup_NoMathUnchanged(t *testing.T) {
	inputs := []string{
		"",
		"Calculer le périmètre du rectangle.",
		"Prix: 100 dollars et rien d'autre",
		"accolades {a} et crochets [b]",
	}
	for _, in := range inputs {
		if got := RenderMathMarkup(in); got != in {
			t.Errorf("RenderMathMarkup(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestRenderMathMarkup_Fraction(t *testing.T) {
	got := RenderMathMarkup(`$\frac{1}{2}$`)
	want := `<span class="math-inline"><span class="math-fraction"><span class="math-numerator">1</span><span class="math-denominator">2</span></span></span>`
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestRenderMathMarkup_NestedFractionInSqrt(t *testing.T) {
	got := RenderMathMarkup(`$\sqrt{\frac{a}{b}}$`)
	if !strings.Contains(got, `math-sqrt-content`) {
		t.Fatalf("missing sqrt content: %q", got)
	}
	if !strings.Contains(got, `math-numerator">a<`) || !strings.Contains(got, `math-denominator">b<`) {
		t.Errorf("fraction did not render inside sqrt: %q", got)
	}
}

func TestRenderMathMarkup_Scripts(t *testing.T) {
	got := RenderMathMarkup(`$x^2 + a_{ij}$`)
	if !strings.Contains(got, `<sup class="math-superscript">2</sup>`) {
		t.Errorf("missing superscript: %q", got)
	}
	if !strings.Contains(got, `<sub class="math-subscript">ij</sub>`) {
		t.Errorf("missing subscript: %q", got)
	}
}

func TestRenderMathMarkup_Symbols(t *testing.T) {
	got := RenderMathMarkup(`$3 \times 4 \div 2 \leq \pi$`)
	for _, sym := range []string{"×", "÷", "≤", "π"} {
		if !strings.Contains(got, sym) {
			t.Errorf("missing %s in %q", sym, got)
		}
	}
}

func TestRenderMathMarkup_UnknownCommandVerbatim(t *testing.T) {
	got := RenderMathMarkup(`$\overrightarrow{AB}$`)
	if !strings.Contains(got, `\overrightarrow`) {
		t.Errorf("unknown command should pass through: %q", got)
	}
}

func TestRenderMathMarkup_LeftRight(t *testing.T) {
	got := RenderMathMarkup(`$\left( a \right)$`)
	if !strings.Contains(got, "( a )") {
		t.Errorf("sizing commands should leave plain delimiters: %q", got)
	}
}

func TestRenderMathMarkup_Delimiters(t *testing.T) {
	got := RenderMathMarkup(`avant $$E=mc^2$$ milieu \( a+b \) fin $c$.`)
	if !strings.Contains(got, `<div class="math-display">`) {
		t.Errorf("missing display block: %q", got)
	}
	if strings.Count(got, `<span class="math-inline">`) != 2 {
		t.Errorf("expected 2 inline spans: %q", got)
	}
	if !strings.Contains(got, "avant ") || !strings.Contains(got, " milieu ") || !strings.Contains(got, " fin ") {
		t.Errorf("surrounding text mangled: %q", got)
	}
}

func TestRenderMathMarkup_InlineTrimsSpaces(t *testing.T) {
	got := RenderMathMarkup(`\(  x+1  \)`)
	want := `<span class="math-inline">x+1</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderMathMarkup_UnclosedDollar(t *testing.T) {
	in := "le prix est $5 sans fermeture\nsur une autre ligne"
	if got := RenderMathMarkup(in); got != in {
		t.Errorf("unclosed delimiter must stay verbatim: %q", got)
	}
}

func TestRenderMathMarkup_MalformedFracVerbatim(t *testing.T) {
	got := RenderMathMarkup(`$\frac{1}$`)
	if !strings.Contains(got, `\frac`) {
		t.Errorf("malformed frac should stay verbatim: %q", got)
	}
}

func TestMathCSS(t *testing.T) {
	css := MathCSS()
	for _, class := range []string{".math-inline", ".math-display", ".math-fraction", ".math-numerator", ".math-denominator", ".math-superscript", ".math-subscript", ".math-sqrt"} {
		if !strings.Contains(css, class) {
			t.Errorf("css missing %s", class)
		}
	}
}
