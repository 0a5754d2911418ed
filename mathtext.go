package gofigure

import "strings"

// RenderMathMarkup converts LaTeX-style math in a text to HTML markup.
// Display math $$...$$, inline math \(...\) and single-dollar math $...$ are
// recognized left to right without overlap; text outside math segments is
// returned unchanged. Unclosed delimiters are left as-is.
func RenderMathMarkup(text string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], "$$") {
			if end := strings.Index(text[i+2:], "$$"); end >= 0 {
				inner := text[i+2 : i+2+end]
				if !strings.Contains(inner, "$") {
					b.WriteString(`<div class="math-display">`)
					b.WriteString(renderMathContent(inner))
					b.WriteString(`</div>`)
					i += end + 4
					continue
				}
			}
		}
		if strings.HasPrefix(text[i:], `\(`) {
			if end := strings.Index(text[i+2:], `\)`); end >= 0 {
				inner := strings.TrimSpace(text[i+2 : i+2+end])
				b.WriteString(`<span class="math-inline">`)
				b.WriteString(renderMathContent(inner))
				b.WriteString(`</span>`)
				i += end + 4
				continue
			}
		}
		if text[i] == '$' {
			if end := dollarEnd(text, i); end >= 0 {
				b.WriteString(`<span class="math-inline">`)
				b.WriteString(renderMathContent(text[i+1 : end]))
				b.WriteString(`</span>`)
				i = end + 1
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// dollarEnd finds the closing $ of a single-dollar segment starting at i, or
// -1 when the segment does not close on the same line.
func dollarEnd(text string, i int) int {
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '$':
			if j == i+1 {
				return -1
			}
			return j
		case '\n':
			return -1
		}
	}
	return -1
}

// renderMathContent transforms the inside of a math segment. Commands nest:
// a fraction inside a square root inside a superscript renders correctly.
// Unknown commands pass through verbatim.
func renderMathContent(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\\':
			i = renderCommand(&b, s, i)
		case '^':
			i = renderScript(&b, s, i, "sup", "math-superscript")
		case '_':
			i = renderScript(&b, s, i, "sub", "math-subscript")
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

var mathSymbols = map[string]string{
	"times":  "×",
	"div":    "÷",
	"pm":     "±",
	"mp":     "∓",
	"leq":    "≤",
	"geq":    "≥",
	"neq":    "≠",
	"approx": "≈",
	"infty":  "∞",
	"pi":     "π",
	"alpha":  "α",
	"beta":   "β",
	"gamma":  "γ",
	"delta":  "δ",
	"theta":  "θ",
	"lambda": "λ",
	"mu":     "μ",
	"sigma":  "σ",
}

// renderCommand handles a backslash command at position i and returns the
// next position.
func renderCommand(b *strings.Builder, s string, i int) int {
	name, after := commandName(s, i)
	if name == "" {
		b.WriteByte(s[i])
		return i + 1
	}

	switch name {
	case "frac":
		num, afterNum, ok1 := braceGroup(s, after)
		den, afterDen, ok2 := braceGroup(s, afterNum)
		if !ok1 || !ok2 {
			break
		}
		b.WriteString(`<span class="math-fraction"><span class="math-numerator">`)
		b.WriteString(renderMathContent(num))
		b.WriteString(`</span><span class="math-denominator">`)
		b.WriteString(renderMathContent(den))
		b.WriteString(`</span></span>`)
		return afterDen
	case "sqrt":
		content, afterContent, ok := braceGroup(s, after)
		if !ok {
			break
		}
		b.WriteString(`<span class="math-sqrt">√<span class="math-sqrt-content">`)
		b.WriteString(renderMathContent(content))
		b.WriteString(`</span></span>`)
		return afterContent
	case "left", "right":
		// Drop the sizing command, keep the delimiter.
		return after
	}

	if sym, ok := mathSymbols[name]; ok {
		b.WriteString(sym)
		return after
	}

	// Unknown command stays verbatim.
	b.WriteString(s[i:after])
	return after
}

// commandName reads the letters after a backslash at i.
func commandName(s string, i int) (string, int) {
	j := i + 1
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	return s[i+1 : j], j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// braceGroup reads a balanced {...} group starting at i.
func braceGroup(s string, i int) (string, int, bool) {
	if i >= len(s) || s[i] != '{' {
		return "", i, false
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", i, false
}

// renderScript handles ^ and _ with either a braced group or a bare run of
// characters as the argument.
func renderScript(b *strings.Builder, s string, i int, tag, class string) int {
	arg, after, ok := braceGroup(s, i+1)
	if !ok {
		arg, after = bareScriptArg(s, i+1)
		if arg == "" {
			b.WriteByte(s[i])
			return i + 1
		}
	}
	b.WriteString(`<` + tag + ` class="` + class + `">`)
	b.WriteString(renderMathContent(arg))
	b.WriteString(`</` + tag + `>`)
	return after
}

// bareScriptArg reads an unbraced script argument: the run of characters up
// to whitespace, brackets, braces, a backslash or a script marker.
func bareScriptArg(s string, i int) (string, int) {
	j := i
	for j < len(s) {
		c := s[j]
		if c == ' ' || c == '\t' || c == '\n' || c == '(' || c == ')' ||
			c == '[' || c == ']' || c == '{' || c == '}' ||
			c == '\\' || c == '^' || c == '_' || c == '$' {
			break
		}
		j++
	}
	return s[i:j], j
}

// MathCSS returns the stylesheet that lays out the markup emitted by
// RenderMathMarkup.
func MathCSS() string {
	return `.math-inline {
	display: inline-block;
	vertical-align: middle;
	font-family: "Times New Roman", serif;
	font-style: normal;
}

.math-display {
	display: block;
	text-align: center;
	margin: 12px 0;
	font-family: "Times New Roman", serif;
	font-style: normal;
}

.math-fraction {
	display: inline-block;
	vertical-align: middle;
	text-align: center;
	margin: 0 2px;
}

.math-numerator {
	display: block;
	border-bottom: 1px solid #000;
	padding: 0 4px 1px 4px;
	font-size: 0.9em;
	line-height: 1.1;
}

.math-denominator {
	display: block;
	padding: 1px 4px 0 4px;
	font-size: 0.9em;
	line-height: 1.1;
}

.math-superscript {
	font-size: 0.75em;
	vertical-align: super;
	line-height: 0;
}

.math-subscript {
	font-size: 0.75em;
	vertical-align: sub;
	line-height: 0;
}

.math-sqrt {
	display: inline-block;
	vertical-align: middle;
	font-size: 1.1em;
}

.math-sqrt .math-sqrt-content {
	border-top: 1px solid #000;
	padding-top: 1px;
	margin-left: 2px;
}
`
}
