package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	// aws-access-key-id: known four-letter prefix and 16 uppercase
	// alphanumerics (20 characters total).
	awsKeyPrefix = pattern.Union("",
		pattern.Lit("", "AKIA"),
		pattern.Lit("", "ASIA"),
		pattern.Lit("", "ABIA"),
		pattern.Lit("", "ACCA"),
	)

	catAWSAccessKeyID = pattern.Guard(pattern.Seq("aws-access-key-id",
		awsKeyPrefix,
		pattern.Repeat("", pattern.Class("", "0-9A-Z"), 16, 16),
	), pattern.WordBoundary)

	// aws-secret-access-key: 40 characters from the base64 alphabet.
	catAWSSecretAccessKey = pattern.Guard(
		pattern.Repeat("aws-secret-access-key", pattern.Class("", "A-Za-z0-9/+"), 40, 40),
		pattern.Base64Boundary)

	catAPIKey = pattern.Union("api-key", catHash, catAWSAccessKeyID, catAWSSecretAccessKey)
)
