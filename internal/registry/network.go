package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	hexPair = pattern.Repeat("", hexDigit, 2, 2)

	// mac-address: six groups of two hex digits joined by ':' or '-'.
	catMACAddress = pattern.Guard(pattern.Seq("mac-address",
		hexPair,
		pattern.Repeat("", pattern.Seq("", pattern.Class("", ":-"), hexPair), 5, 5),
	), pattern.HexBoundary)

	// octet covers 0-255 without accepting 256-999; the scan engine's
	// longest-match rule picks the widest valid reading.
	octet = pattern.Union("",
		pattern.Seq("", pattern.Lit("", "25"), pattern.Class("", "0-5")),
		pattern.Seq("", pattern.Lit("", "2"), pattern.Class("", "0-4"), digit),
		pattern.Seq("", pattern.Lit("", "1"), digit, digit),
		pattern.Seq("", pattern.Class("", "1-9"), digit),
		digit,
	)

	catIPv4Address = pattern.Guard(pattern.Seq("ipv4-address",
		octet,
		pattern.Repeat("", pattern.Seq("", pattern.Lit("", "."), octet), 3, 3),
	), pattern.DigitBoundary)

	h16   = pattern.Repeat("", hexDigit, 1, 4)
	h16c  = pattern.Seq("", h16, pattern.Lit("", ":"))
	colon = pattern.Lit("", ":")

	// ipv6-address: full eight-group form plus the single-"::" compressed
	// forms. The alternatives overlap; longest-match disambiguates.
	catIPv6Address = pattern.Guard(pattern.Union("ipv6-address",
		pattern.Seq("", pattern.Repeat("", h16c, 7, 7), h16),
		pattern.Seq("", pattern.Repeat("", h16c, 1, 6), colon, pattern.Repeat("", h16c, 0, 5), h16),
		pattern.Seq("", pattern.Repeat("", h16c, 1, 7), colon),
		pattern.Seq("", pattern.Lit("", "::"), pattern.Opt(pattern.Seq("", pattern.Repeat("", h16c, 0, 6), h16))),
	), pattern.HexBoundary)

	// label: alnum, optional interior hyphens, ends alnum.
	label = pattern.Seq("", alnum,
		pattern.Opt(pattern.Seq("", pattern.Repeat("", pattern.Class("", "A-Za-z0-9-"), 0, -1), alnum)))

	// domain-name: two or more dot-separated labels, last label alphabetic.
	catDomainName = pattern.Guard(pattern.Seq("domain-name",
		pattern.Repeat("", pattern.Seq("", label, pattern.Lit("", ".")), 1, -1),
		pattern.Repeat("", alpha, 2, -1),
	), pattern.WordBoundary)

	catHostName = pattern.Union("host-name", catWord, catDomainName)
)
