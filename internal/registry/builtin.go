package registry

import "github.com/plucky/plucky/internal/pattern"

// Shared atoms for the built-in category definitions.
var (
	digit    = pattern.Class("", "0-9")
	hexDigit = pattern.Class("", "0-9A-Fa-f")
	alpha    = pattern.Class("", "A-Za-z")
	alnum    = pattern.Class("", "A-Za-z0-9")
	wordChar = pattern.Class("", "A-Za-z0-9_")

	digits = pattern.Repeat("", digit, 1, -1)
)

// builtins lists every category in registration order. The order is stable
// and user-visible: Categories() follows it, and it breaks ties between
// equal-length matches of different categories.
var builtins = []*pattern.Pattern{
	catNumber,
	catHexNumber,
	catVersionNumber,
	catWord,
	catMACAddress,
	catIPv4Address,
	catIPv6Address,
	catDomainName,
	catHostName,
	catURI,
	catURL,
	catEmailAddress,
	catObfuscatedEmail,
	catPhoneNumber,
	catSSN,
	catCreditCardAmex,
	catCreditCardDiscover,
	catCreditCardMasterCard,
	catCreditCardVisa,
	catCreditCardNumber,
	catMD5,
	catSHA1,
	catSHA256,
	catSHA512,
	catHash,
	catAWSAccessKeyID,
	catAWSSecretAccessKey,
	catAPIKey,
	catRSAPrivateKey,
	catRSAPublicKey,
	catDSAPrivateKey,
	catDSAPublicKey,
	catECPrivateKey,
	catECPublicKey,
	catSSHPrivateKey,
	catSSHPublicKey,
	catPrivateKey,
	catPublicKey,
	catFileName,
	catDirName,
	catRelativeUnixPath,
	catAbsoluteUnixPath,
	catWindowsPath,
	catPath,
	catVariableName,
	catFunctionName,
	catSingleQuotedString,
	catDoubleQuotedString,
	catString,
	catBase64,
}
