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

	"dirpx.dev/dxver/dxcore/errors"
	"dirpx.dev/dxver/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Arity says how many numeric components a version core carries.
//
// The three-component scheme (major.minor.patch) is the default used by most
// release lines. The four-component scheme (major.minor.patch.hotfix) adds a
// trailing hotfix counter for product lines that ship fixes on top of frozen
// patch releases. The two schemes never mix inside a single core: a core is
// parsed, rendered, and compared entirely under one Arity.
//
// Arity is a property of the core, not of the whole version string; branch
// and build metadata are unaffected by it.
type Arity int

const (
	// ArityThree selects the three-component scheme major.minor.patch.
	//
	// This is the zero value and the default for parsing, so callers that
	// never deal in hotfix releases can ignore Arity entirely.
	ArityThree Arity = iota

	// ArityFour selects the four-component scheme major.minor.patch.hotfix.
	//
	// Parsing promotes a core to ArityFour automatically when the input
	// carries four explicit numeric groups.
	ArityFour
)

// String constants for Arity values used in serialization, parsing, and
// human-facing output.
const (
	ArityThreeStr = "three-digits"
	ArityFourStr  = "four-digits"
)

// ParseArity converts a textual representation into an Arity value.
//
// The function accepts the canonical kebab-case names plus the camel-case
// and shorthand spellings that appear in existing pipeline configurations:
//
//	"three-digits", "threeDigits", "THREE-DIGITS", "three" -> ArityThree
//	"four-digits",  "fourDigits",  "FOUR-DIGITS",  "four"  -> ArityFour
//
// Any other input is treated as invalid, and ParseArity returns a
// *ParseError carrying the original string.
func ParseArity(s string) (Arity, error) {
	switch s {
	case ArityThreeStr, "threeDigits", "THREE-DIGITS", "three":
		return ArityThree, nil
	case ArityFourStr, "fourDigits", "FOUR-DIGITS", "four":
		return ArityFour, nil
	default:
		return ArityThree, &errors.ParseError{Type: "Arity", Value: s}
	}
}

// Components returns the number of numeric components the Arity selects:
// 3 for ArityThree and 4 for ArityFour. Invalid values report 3 so that
// downstream rendering never indexes past a component slice; callers SHOULD
// validate before relying on the result.
func (a Arity) Components() int {
	if a == ArityFour {
		return 4
	}
	return 3
}

// String returns the canonical string representation of the Arity value:
//
//	ArityThree -> "three-digits"
//	ArityFour  -> "four-digits"
//
// If the Arity value is not one of the defined constants, String returns
// "unknown".
func (a Arity) String() string {
	switch a {
	case ArityThree:
		return ArityThreeStr
	case ArityFour:
		return ArityFourStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Arity value is one of the defined constants.
func (a Arity) Valid() bool {
	return a == ArityThree || a == ArityFour
}

// TypeName returns "Arity", the name of the type for logging and debugging.
func (a Arity) TypeName() string {
	return "Arity"
}

// Redacted returns the same string representation as String(). Arity values
// contain no sensitive information.
func (a Arity) Redacted() string {
	return a.String()
}

// IsZero reports whether the Arity has its zero value, ArityThree.
//
// Note: The zero value is a valid Arity (the default scheme), so IsZero
// returning true does not indicate an error condition.
func (a Arity) IsZero() bool {
	return a == ArityThree
}

// Equal reports whether this Arity is equal to another value. The method
// accepts any type for other and uses type assertion to check if it is an
// Arity or *Arity.
func (a Arity) Equal(other any) bool {
	switch v := other.(type) {
	case Arity:
		return a == v
	case *Arity:
		if v == nil {
			return false
		}
		return a == *v
	default:
		return false
	}
}

// Validate checks whether the Arity value is one of the defined constants
// and returns a *ValidationError otherwise.
func (a Arity) Validate() error {
	if !a.Valid() {
		return &errors.ValidationError{
			Type:   "Arity",
			Field:  "",
			Reason: "invalid Arity value",
			Value:  int(a),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Arity. A valid Arity is
// serialized as its kebab-case string representation; an invalid value
// yields a *MarshalError.
func (a Arity) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Arity", Value: int(a)}
	}
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Arity.
//
// The method accepts both string and numeric JSON representations: strings
// resolve through ParseArity, numbers map 0 to ArityThree and 1 to
// ArityFour. String input is the preferred, stable representation.
func (a *Arity) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Arity", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Arity", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseArity(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Arity", Data: data, Reason: err.Error()}
	}
	*a = Arity(i)
	if !a.Valid() {
		return &errors.UnmarshalError{Type: "Arity", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Arity.
func (a Arity) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Arity", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Arity, resolving string
// values via ParseArity.
func (a *Arity) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Arity", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseArity(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Arity.
func (a Arity) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "Arity", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Arity, accepting
// the same vocabulary as ParseArity.
func (a *Arity) UnmarshalText(text []byte) error {
	parsed, err := ParseArity(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Compile-time check that Arity implements model.Model interface.
var _ model.Model = (*Arity)(nil)
