package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	scheme = pattern.Seq("", alpha, pattern.Repeat("", pattern.Class("", "A-Za-z0-9+.-"), 0, -1))

	// opaque: anything up to whitespace or a quote/angle delimiter.
	opaqueChar = pattern.Class("", `^\s"'<>`)

	// uri: scheme, colon, opaque-or-hierarchical part.
	catURI = pattern.Seq("uri", scheme, pattern.Lit("", ":"), pattern.Repeat("", opaqueChar, 1, -1))

	// url: uri restricted to network schemes with an authority and optional
	// path/query/fragment.
	netScheme = pattern.Union("",
		pattern.Lit("", "https"),
		pattern.Lit("", "http"),
		pattern.Lit("", "ftp"),
		pattern.Lit("", "wss"),
		pattern.Lit("", "ws"),
	)
	authority = pattern.Repeat("", pattern.Class("", "A-Za-z0-9._~%:@-"), 1, -1)

	catURL = pattern.Seq("url",
		netScheme,
		pattern.Lit("", "://"),
		authority,
		pattern.Opt(pattern.Seq("", pattern.Class("", "/?#"), pattern.Repeat("", opaqueChar, 0, -1))),
	)

	localPart = pattern.Repeat("", pattern.Class("", "A-Za-z0-9._%+-"), 1, -1)

	catEmailAddress = pattern.Seq("email-address", localPart, pattern.Lit("", "@"), catDomainName)

	// obfuscated-email-address: a bracketed or spaced "at" stands in for @.
	atToken = pattern.Union("",
		pattern.Lit("", "[at]"), pattern.Lit("", "(at)"),
		pattern.Lit("", "[AT]"), pattern.Lit("", "(AT)"),
	)
	atDelim = pattern.Union("",
		pattern.Seq("", pattern.Opt(pattern.Lit("", " ")), atToken, pattern.Opt(pattern.Lit("", " "))),
		pattern.Lit("", " at "),
		pattern.Lit("", " AT "),
	)

	catObfuscatedEmail = pattern.Seq("obfuscated-email-address", localPart, atDelim, catDomainName)
)
