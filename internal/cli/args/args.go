// --- START OF NEW FILE internal/cli/args/args.go ---
// Package args turns the raw process argument vector into UTF-8 strings,
// independent of the host's console encoding.
package args

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// EnvArgEncoding names the environment variable holding the fallback charset.
const EnvArgEncoding = "FBXGLTFCONV_ARG_ENCODING"

// ErrNormalization indicates the argument vector could not be recovered or re-encoded.
var ErrNormalization = errors.New("argument normalization failed")

// Normalizer re-derives the argument vector as UTF-8.
type Normalizer struct {
	// Fallback is an optional charset name (IANA or WHATWG label, e.g. "shift_jis")
	// used to decode tokens that are not valid UTF-8. Empty leaves such tokens untouched.
	Fallback string
}

// Normalize returns the argument vector as UTF-8 strings. Element 0 is the program
// invocation token and is kept. On Windows the vector is rebuilt from the wide
// command line and raw is ignored.
func (n Normalizer) Normalize(raw []string) ([]string, error) {
	var fallback encoding.Encoding
	if n.Fallback != "" {
		enc, _ := charset.Lookup(n.Fallback)
		if enc == nil {
			return nil, fmt.Errorf("%w: unknown argument encoding '%s'", ErrNormalization, n.Fallback)
		}
		fallback = enc
	}

	tokens, err := platformArgs(raw)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(tokens))
	for i, tok := range tokens {
		decoded, err := decodeToken(tok, fallback)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrNormalization, i, err)
		}
		out[i] = decoded
	}
	return out, nil
}

// decodeToken passes valid UTF-8 through and decodes anything else with fallback.
func decodeToken(tok string, fallback encoding.Encoding) (string, error) {
	if fallback == nil || utf8.ValidString(tok) {
		return tok, nil
	}
	decoded, _, err := transform.String(fallback.NewDecoder(), tok)
	if err != nil {
		return "", err
	}
	return decoded, nil
}

// --- END OF NEW FILE internal/cli/args/args.go ---
