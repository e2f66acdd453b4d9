/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package version

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"dirpx.dev/dxver/dxcore/errors"
	"dirpx.dev/dxver/dxcore/model"
	"gopkg.in/yaml.v3"
)

// identifierTokens splits metadata text of the form "rc.1" or "dev2" into
// its alphabetic prefix (with an optional trailing dot) and numeric part.
// Text that does not match is kept as a single opaque token.
var identifierTokens = regexp.MustCompile(`^([A-Za-z]+\.?)(\d+)$`)

// Identifiers is an ordered sequence of metadata tokens attached to a
// version, naming either the source branch ("featurebranch") or the build
// qualifier ("rc.1", "dev2") of a prerelease.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// A nil or empty Identifiers IS the absent value: a released version has
// no branch and no build metadata, and that absence is meaningful for
// ordering (absent metadata ranks ABOVE present metadata, so "1.0.0" is
// greater than "1.0.0-rc.1"). No sentinel value is needed; the zero slice
// says it.
//
// Tokens concatenate WITHOUT a separator when rendered, so the token pair
// ["rc.", "1"] renders as "rc.1". Keeping the dot inside the first token
// preserves the original text exactly while still exposing the trailing
// number as its own token for counters and numeric comparison.
//
// Example values:
//
//	Identifiers(nil)                  // absent
//	Identifiers{"featurebranch"}      // branch metadata
//	Identifiers{"rc.", "1"}           // build metadata "rc.1"
//	Identifiers{"dev", "2"}           // build metadata "dev2"
type Identifiers []string

// Compile-time check that Identifiers implements model.Model
var _ model.Model = (*Identifiers)(nil)

// ParseIdentifiers parses a metadata fragment into its token sequence.
//
// The empty string parses to the absent value (nil, nil). Text of the
// form "letters[.]number" splits into two tokens with the numeric part
// normalized through integer parsing, so "rc.007" becomes ["rc.", "7"].
// Any other text is kept whole as a single opaque token.
//
// A numeric part too large for an int fails with a *errors.ParseError.
//
// Examples:
//
//	ParseIdentifiers("")              -> nil (absent)
//	ParseIdentifiers("rc.1")          -> ["rc.", "1"]
//	ParseIdentifiers("dev2")          -> ["dev", "2"]
//	ParseIdentifiers("featurebranch") -> ["featurebranch"]
func ParseIdentifiers(s string) (Identifiers, error) {
	if s == "" {
		return nil, nil
	}

	m := identifierTokens.FindStringSubmatch(s)
	if m == nil {
		return Identifiers{s}, nil
	}

	n, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, &errors.ParseError{
			Type:   "Identifiers",
			Value:  m[2],
			Input:  s,
			Reason: "numeric part does not fit in an integer",
		}
	}

	return Identifiers{m[1], strconv.Itoa(n)}, nil
}

// String returns the rendered metadata fragment: all tokens concatenated
// without a separator.
//
// The absent value renders as the empty string.
//
// Examples:
//
//	Identifiers{"rc.", "1"}.String()
//	// Output: "rc.1"
//
//	Identifiers{"featurebranch"}.String()
//	// Output: "featurebranch"
func (i Identifiers) String() string {
	return strings.Join(i, "")
}

// Redacted returns the string representation of the Identifiers for
// logging.
//
// Version metadata contains no sensitive information, so Redacted returns
// the same value as String. This method implements the model.Loggable
// contract.
func (i Identifiers) Redacted() string {
	return i.String()
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract.
func (i Identifiers) TypeName() string {
	return "Identifiers"
}

// IsZero reports whether the metadata is absent (no tokens).
//
// Both nil and an empty non-nil slice are absent. Absence is a legal,
// meaningful state: released versions carry no metadata.
func (i Identifiers) IsZero() bool {
	return len(i) == 0
}

// Clone returns an independent copy of the token sequence.
//
// The absent value clones to nil. Mutating the clone never affects the
// original. This method implements the model.Cloneable contract.
func (i Identifiers) Clone() Identifiers {
	if i == nil {
		return nil
	}
	out := make(Identifiers, len(i))
	copy(out, i)
	return out
}

// Increment returns a copy of the sequence with its trailing counter
// advanced by one.
//
// If the LAST token consists only of digits it is replaced by its numeric
// value plus one, so ["rc.", "1"] becomes ["rc.", "2"]. A sequence whose
// last token is not numeric is returned as an unchanged copy. Incrementing
// the absent value fails with a *errors.AbsentError.
//
// The receiver is never mutated.
func (i Identifiers) Increment() (Identifiers, error) {
	if i.IsZero() {
		return nil, &errors.AbsentError{
			Type:      i.TypeName(),
			Operation: "increment",
		}
	}

	next := i.Clone()
	last := next[len(next)-1]
	if !isDigits(last) {
		return next, nil
	}

	n, err := strconv.Atoi(last)
	if err != nil {
		return nil, &errors.ParseError{
			Type:   i.TypeName(),
			Value:  last,
			Input:  i.String(),
			Reason: "numeric token does not fit in an integer",
		}
	}

	next[len(next)-1] = strconv.Itoa(n + 1)
	return next, nil
}

// Compare compares i with other and reports their ordering.
//
// It returns:
//   - -1 if i <  other
//   - 0 if i == other
//   - +1 if i >  other
//
// The absent value ranks ABOVE any present value: a released version
// outranks every prerelease of the same core. Two absent values compare
// equal.
//
// Present sequences compare token by token. When both tokens are pure
// digit strings they compare numerically (by digit string, so arbitrarily
// large counters never overflow); otherwise they compare lexically. If all
// shared tokens are equal, the shorter sequence ranks LOWER.
//
// Examples:
//
//	nil > ["rc.", "1"]            (released beats prerelease)
//	["rc.", "1"] < ["rc.", "2"]   (numeric counter)
//	["rc.", "2"] < ["rc.", "10"]  (numeric, not lexical)
//	["alpha"] < ["beta"]          (lexical)
func (i Identifiers) Compare(other Identifiers) int {
	if i.IsZero() || other.IsZero() {
		switch {
		case i.IsZero() && other.IsZero():
			return 0
		case i.IsZero():
			return 1
		default:
			return -1
		}
	}

	n := len(i)
	if len(other) < n {
		n = len(other)
	}
	for idx := 0; idx < n; idx++ {
		if r := compareToken(i[idx], other[idx]); r != 0 {
			return r
		}
	}

	return compareInt(len(i), len(other))
}

// Equal reports whether this Identifiers and other compare equal.
//
// Equality is defined by Compare returning zero, so numerically equal
// counters with different spellings ("1" and "01") are equal.
func (i Identifiers) Equal(other Identifiers) bool {
	return i.Compare(other) == 0
}

// compareToken orders a single token pair: numerically when both sides
// are digit strings, lexically otherwise.
func compareToken(a, b string) int {
	if isDigits(a) && isDigits(b) {
		return compareDigits(a, b)
	}
	return strings.Compare(a, b)
}

// compareDigits orders two digit strings by numeric value without
// converting them to integers, so counters of any length are safe.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return compareInt(len(a), len(b))
	}
	return strings.Compare(a, b)
}

// isDigits reports whether s is non-empty and consists only of ASCII
// digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validate checks whether this Identifiers satisfies all model contracts
// and invariants. This method implements the model.Validatable interface.
//
// The absent value (nil or empty) is valid. A present sequence MUST NOT
// contain empty tokens.
func (i Identifiers) Validate() error {
	for idx, tok := range i {
		if tok == "" {
			return &errors.ValidationError{
				Type:   i.TypeName(),
				Reason: "token " + strconv.Itoa(idx) + " must not be empty",
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Identifiers.
//
// A valid sequence is serialized as a JSON string in rendered form
// (for example, "rc.1"); the absent value serializes as "". Before
// encoding, MarshalJSON calls Validate; if the sequence is not
// well-formed, it returns the validation error and produces no output.
//
// Deserializing runs the rendered text back through the metadata grammar,
// so hand-assembled token splits may re-tokenize (a single "rc1" token
// comes back as ["rc", "1"]). Sequences produced by ParseIdentifiers
// round-trip exactly.
func (i Identifiers) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(i.String())
}

// UnmarshalJSON implements json.Unmarshaler for Identifiers.
//
// The method expects the JSON value to be a string and parses it via
// ParseIdentifiers; "" restores the absent value. Any parse error is
// returned directly to the caller.
func (i *Identifiers) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{
			Type:   "Identifiers",
			Data:   data,
			Reason: err.Error(),
		}
	}

	parsed, err := ParseIdentifiers(s)
	if err != nil {
		return err
	}

	*i = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Identifiers.
//
// A valid sequence is serialized as a scalar string in rendered form.
// Validation is performed before encoding; if the sequence is not
// well-formed, the validation error is returned and no YAML value is
// produced.
func (i Identifiers) MarshalYAML() (interface{}, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Identifiers.
//
// The YAML value is expected to be a scalar string and is parsed via
// ParseIdentifiers. Any parse error is returned to the caller, and in
// that case the Identifiers MUST NOT be used.
func (i *Identifiers) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &errors.UnmarshalError{
			Type:   "Identifiers",
			Data:   nil,
			Reason: err.Error(),
		}
	}

	parsed, err := ParseIdentifiers(s)
	if err != nil {
		return err
	}

	*i = parsed
	return nil
}
