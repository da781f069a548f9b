package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	d2 = pattern.Repeat("", digit, 2, 2)
	d3 = pattern.Repeat("", digit, 3, 3)
	d4 = pattern.Repeat("", digit, 4, 4)

	phoneSep = pattern.Class("", "-. ")

	// phone-number: North-American digit-group templates with separators.
	catPhoneNumber = pattern.Guard(pattern.Union("phone-number",
		pattern.Seq("", pattern.Lit("", "+1"), phoneSep, d3, phoneSep, d3, phoneSep, d4),
		pattern.Seq("", pattern.Lit("", "("), d3, pattern.Lit("", ")"), pattern.Opt(pattern.Lit("", " ")), d3, phoneSep, d4),
		pattern.Seq("", d3, phoneSep, d3, phoneSep, d4),
	), pattern.DigitBoundary)

	// ssn: 3-2-4 digit groups separated by dashes.
	catSSN = pattern.Guard(pattern.Seq("ssn",
		d3, pattern.Lit("", "-"), d2, pattern.Lit("", "-"), d4,
	), pattern.DigitBoundary)

	// Credit cards are matched by shape only; no Luhn validation. Issuers
	// differ in leading-digit prefix and grouping template.
	ccSep = pattern.Opt(pattern.Class("", "- "))

	ccTail3x4 = pattern.Repeat("", pattern.Seq("", ccSep, d4), 3, 3)

	catCreditCardAmex = pattern.Guard(pattern.Seq("credit-card-amex",
		pattern.Lit("", "3"), pattern.Class("", "47"), d2,
		ccSep, pattern.Repeat("", digit, 6, 6),
		ccSep, pattern.Repeat("", digit, 5, 5),
	), pattern.DigitBoundary)

	catCreditCardDiscover = pattern.Guard(pattern.Seq("credit-card-discover",
		pattern.Union("", pattern.Lit("", "6011"), pattern.Seq("", pattern.Lit("", "65"), d2)),
		ccTail3x4,
	), pattern.DigitBoundary)

	catCreditCardMasterCard = pattern.Guard(pattern.Seq("credit-card-mastercard",
		pattern.Lit("", "5"), pattern.Class("", "1-5"), d2,
		ccTail3x4,
	), pattern.DigitBoundary)

	catCreditCardVisa = pattern.Guard(pattern.Seq("credit-card-visa",
		pattern.Lit("", "4"), d3,
		ccTail3x4,
	), pattern.DigitBoundary)

	catCreditCardNumber = pattern.Union("credit-card-number",
		catCreditCardAmex, catCreditCardDiscover, catCreditCardMasterCard, catCreditCardVisa)
)
