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

// Position identifies a single numeric component of a version core.
//
// Increment operations take a Position to say which component to bump:
// incrementing at PositionMinor turns 1.2.3 into 1.3.0, incrementing at
// PositionMajor turns it into 2.0.0. Every component of lower significance
// than the target is reset to zero, which is why the type is ordered from
// most significant (PositionMajor) to least significant (PositionHotfix).
//
// PositionHotfix is only meaningful for four-component cores; operations
// asked to bump the hotfix of a three-component core reject the request
// rather than widening the core silently.
type Position int

const (
	// PositionMajor addresses the first core component.
	//
	// Incrementing here resets minor, patch, and (when present) hotfix to
	// zero: 1.2.3 becomes 2.0.0 and 1.2.3.4 becomes 2.0.0.0.
	PositionMajor Position = iota

	// PositionMinor addresses the second core component.
	//
	// Incrementing here resets patch and (when present) hotfix to zero:
	// 1.2.3 becomes 1.3.0.
	PositionMinor

	// PositionPatch addresses the third core component.
	//
	// This is the least significant component of a three-component core.
	// Incrementing here resets the hotfix to zero on four-component cores:
	// 1.2.3.4 becomes 1.2.4.0.
	PositionPatch

	// PositionHotfix addresses the fourth core component.
	//
	// The hotfix component only exists on four-component cores. Operations
	// targeting it on a three-component core fail with an
	// *errors.UnsupportedError.
	PositionHotfix
)

// String constants for Position values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable, external representation of Position and MAY
// be persisted in configuration files, CLI flags, and JSON/YAML documents.
// Changing them is a breaking change for any consumer that relies on textual
// configuration.
const (
	PositionMajorStr  = "major"
	PositionMinorStr  = "minor"
	PositionPatchStr  = "patch"
	PositionHotfixStr = "hotfix"
)

// ParsePosition converts a textual representation into a Position value.
//
// The function accepts a small, case-insensitive vocabulary of strings and
// maps them to the corresponding constants:
//
//	"major",  "Major",  "MAJOR"  -> PositionMajor
//	"minor",  "Minor",  "MINOR"  -> PositionMinor
//	"patch",  "Patch",  "PATCH"  -> PositionPatch
//	"hotfix", "Hotfix", "HOTFIX" -> PositionHotfix
//
// Any other input is treated as invalid, and ParsePosition returns a
// *ParseError. The returned error includes the original string value, which
// can be used in diagnostics or surfaced back to the user.
func ParsePosition(s string) (Position, error) {
	switch s {
	case PositionMajorStr, "Major", "MAJOR":
		return PositionMajor, nil
	case PositionMinorStr, "Minor", "MINOR":
		return PositionMinor, nil
	case PositionPatchStr, "Patch", "PATCH":
		return PositionPatch, nil
	case PositionHotfixStr, "Hotfix", "HOTFIX":
		return PositionHotfix, nil
	default:
		return PositionMajor, &errors.ParseError{Type: "Position", Value: s}
	}
}

// String returns the canonical string representation of the Position value.
//
// The returned value is always lowercase and suitable for use in
// configuration files, command-line flags, logs, and API responses.
// The mapping is:
//
//	PositionMajor  -> "major"
//	PositionMinor  -> "minor"
//	PositionPatch  -> "patch"
//	PositionHotfix -> "hotfix"
//
// If the Position value is not one of the defined constants, String returns
// "unknown". Callers that need to ensure only valid values are emitted
// SHOULD call Valid before invoking String.
func (p Position) String() string {
	switch p {
	case PositionMajor:
		return PositionMajorStr
	case PositionMinor:
		return PositionMinorStr
	case PositionPatch:
		return PositionPatchStr
	case PositionHotfix:
		return PositionHotfixStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Position value is one of the defined constants.
//
// This method is primarily useful when Position values may have been created
// via deserialization, numeric casts, or untrusted input. Code that relies
// on Position being well-formed SHOULD call Valid before using the value to
// address core components.
func (p Position) Valid() bool {
	return p == PositionMajor || p == PositionMinor || p == PositionPatch || p == PositionHotfix
}

// TypeName returns "Position", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface, allowing
// Position values to be used consistently with other model types in error
// messages, logs, and reflection-based code.
func (p Position) TypeName() string {
	return "Position"
}

// Redacted returns the same string representation as String().
//
// Position values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string form.
// This method implements part of the model.Model interface.
func (p Position) Redacted() string {
	return p.String()
}

// IsZero reports whether the Position has its zero value.
//
// For Position (an enum type), the zero value is PositionMajor (constant 0).
// This method implements part of the model.Model interface.
//
// Note: The zero value (PositionMajor) is a valid Position, so IsZero
// returning true does not indicate an error condition.
func (p Position) IsZero() bool {
	return p == PositionMajor
}

// Equal reports whether this Position is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Position or *Position. Two Position values are equal if they
// represent the same enum constant.
//
// This method implements part of the model.Model interface and is useful
// for comparisons in tests and validation logic.
func (p Position) Equal(other any) bool {
	switch v := other.(type) {
	case Position:
		return p == v
	case *Position:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate checks whether the Position value is one of the defined
// constants.
//
// This method returns nil if the Position is valid (PositionMajor,
// PositionMinor, PositionPatch, or PositionHotfix), and returns a
// *ValidationError if the value is outside the valid range.
//
// This method implements part of the model.Model interface and is typically
// called after deserialization or numeric casts to ensure the value is
// well-formed before using it in increment logic.
func (p Position) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{
			Type:   "Position",
			Field:  "",
			Reason: "invalid Position value",
			Value:  int(p),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Position.
//
// A valid Position is serialized as its lowercase string representation
// (for example, "patch" or "hotfix"). If the value is not valid, MarshalJSON
// returns a *MarshalError and does not produce any JSON output.
func (p Position) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Position", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Position.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "major", "minor", "patch", "hotfix" (case-insensitive variants
//     accepted via ParsePosition).
//
//   - Number: 0 (PositionMajor), 1 (PositionMinor), 2 (PositionPatch),
//     3 (PositionHotfix).
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with configurations that store enum values as
// integers. If the input cannot be parsed as either string or number, or if
// it resolves to an invalid Position, UnmarshalJSON returns an
// *UnmarshalError describing the failure.
func (p *Position) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Position", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Position", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePosition(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Position", Data: data, Reason: err.Error()}
	}
	*p = Position(i)
	if !p.Valid() {
		return &errors.UnmarshalError{Type: "Position", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Position.
//
// A valid Position is serialized as its canonical string representation
// (for example, "patch"). If the value is not valid, MarshalYAML returns a
// *MarshalError.
func (p Position) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Position", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Position.
//
// The method accepts string representations of Position values
// (for example, "patch", "hotfix") and resolves them via ParsePosition.
// On failure, it returns the underlying *ParseError.
func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Position", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePosition(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Position.
//
// Textual form is the same lowercase string representation as used by
// String() (for example, "patch", "hotfix"). If the Position value is
// invalid, MarshalText returns a *MarshalError.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Position", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Position.
//
// The method accepts the same textual vocabulary as ParsePosition, using it
// as the single source of truth for mapping strings to Position values. On
// failure, UnmarshalText returns the underlying *ParseError.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time check that Position implements model.Model interface.
var _ model.Model = (*Position)(nil)
