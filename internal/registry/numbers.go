package registry

import "github.com/plucky/plucky/internal/pattern"

// Numeric shapes. All carry a digit boundary so a match never sits inside a
// longer digit run.
var (
	// number: optional sign, digits, optional fractional part.
	catNumber = pattern.Guard(pattern.Seq("number",
		pattern.Opt(pattern.Class("", "+-")),
		digits,
		pattern.Opt(pattern.Seq("", pattern.Lit("", "."), digits)),
	), pattern.DigitBoundary)

	// hex-number: 0x/0X prefix and at least one hex digit.
	catHexNumber = pattern.Guard(pattern.Seq("hex-number",
		pattern.Lit("", "0"),
		pattern.Class("", "xX"),
		pattern.Repeat("", hexDigit, 1, -1),
	), pattern.WordBoundary)

	// version-number: two or more dot-separated numeric groups.
	catVersionNumber = pattern.Guard(pattern.Seq("version-number",
		digits,
		pattern.Repeat("", pattern.Seq("", pattern.Lit("", "."), digits), 1, -1),
	), pattern.DigitBoundary)
)
