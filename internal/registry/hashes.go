package registry

import "github.com/plucky/plucky/internal/pattern"

// Fixed-length hex digests. The hex boundary keeps a digest from matching
// inside a longer hex run, so a 64-character run is one sha256, never two
// overlapping md5s.
var (
	catMD5    = pattern.Guard(pattern.Repeat("md5", hexDigit, 32, 32), pattern.HexBoundary)
	catSHA1   = pattern.Guard(pattern.Repeat("sha1", hexDigit, 40, 40), pattern.HexBoundary)
	catSHA256 = pattern.Guard(pattern.Repeat("sha256", hexDigit, 64, 64), pattern.HexBoundary)
	catSHA512 = pattern.Guard(pattern.Repeat("sha512", hexDigit, 128, 128), pattern.HexBoundary)

	// hash: constituents ordered longest shape first.
	catHash = pattern.Union("hash", catSHA512, catSHA256, catSHA1, catMD5)
)
