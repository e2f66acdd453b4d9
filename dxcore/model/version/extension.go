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

// Extension marks the release state of a version.
//
// A version without an extension (ExtensionNone) is a released artifact.
// ExtensionSnapshot marks a continuously republished development build and
// ExtensionLocal marks a build produced on a developer machine that MUST
// never be published. The extension is rendered as the final dash-separated
// suffix of a version string ("1.2.0-SNAPSHOT") and is omitted entirely for
// released versions.
//
// Extensions participate in version ordering with the precedence
//
//	ExtensionLocal < ExtensionSnapshot < ExtensionNone
//
// so that, at identical coordinates, a released version always outranks its
// snapshot, and a snapshot outranks a local build. The precedence is fixed
// by the extensionRank table, not by the numeric constant values.
type Extension int

const (
	// ExtensionNone marks a released version. It is the zero value, renders
	// as no suffix at all, and ranks above every other extension.
	ExtensionNone Extension = iota

	// ExtensionSnapshot marks a development build that is republished under
	// the same coordinates as work progresses.
	ExtensionSnapshot

	// ExtensionLocal marks a build from a developer machine. It ranks below
	// every other extension and MUST NOT be published to shared registries.
	ExtensionLocal
)

// String constants for Extension values. The uppercase forms are the literal
// tokens used in version strings ("1.0.0-SNAPSHOT") and are therefore part
// of the persisted format.
const (
	ExtensionNoneStr     = "NONE"
	ExtensionSnapshotStr = "SNAPSHOT"
	ExtensionLocalStr    = "LOCAL"
)

// extensionRank fixes the ordering of extensions independently of their
// constant values: LOCAL < SNAPSHOT < NONE. Compare consults this table so
// that reordering the constants can never silently change version
// precedence.
var extensionRank = map[Extension]int{
	ExtensionLocal:    0,
	ExtensionSnapshot: 1,
	ExtensionNone:     2,
}

// ParseExtension converts a textual representation into an Extension value.
//
// Unlike the other enum parsers in this package, ParseExtension is
// case-sensitive: only the exact uppercase literals are accepted, because
// they are the persisted wire form of the extension token.
//
//	"SNAPSHOT" -> ExtensionSnapshot
//	"LOCAL"    -> ExtensionLocal
//	"NONE", "" -> ExtensionNone
//
// The empty string maps to ExtensionNone because an absent suffix is how a
// released version is written. Lowercase spellings such as "snapshot" are
// rejected here; the version grammar recognizes them case-insensitively
// before this parser is involved, and accepting them here too would make
// the wire form ambiguous. Invalid input yields a *ParseError.
func ParseExtension(s string) (Extension, error) {
	switch s {
	case ExtensionSnapshotStr:
		return ExtensionSnapshot, nil
	case ExtensionLocalStr:
		return ExtensionLocal, nil
	case ExtensionNoneStr, "":
		return ExtensionNone, nil
	default:
		return ExtensionNone, &errors.ParseError{Type: "Extension", Value: s}
	}
}

// Compare orders two extensions by release precedence and returns -1, 0, or
// +1 as e sorts before, equal to, or after other.
//
// The ordering is LOCAL < SNAPSHOT < NONE, taken from the extensionRank
// table. Values outside the defined constants rank as NONE; callers that
// care SHOULD validate first.
func (e Extension) Compare(other Extension) int {
	ra, ok := extensionRank[e]
	if !ok {
		ra = extensionRank[ExtensionNone]
	}
	rb, ok := extensionRank[other]
	if !ok {
		rb = extensionRank[ExtensionNone]
	}
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// String returns the canonical string representation of the Extension value:
//
//	ExtensionNone     -> "NONE"
//	ExtensionSnapshot -> "SNAPSHOT"
//	ExtensionLocal    -> "LOCAL"
//
// Note that String renders ExtensionNone as the word "NONE" for logs and
// diagnostics; version strings omit the extension token entirely in that
// case. If the Extension value is not one of the defined constants, String
// returns "unknown".
func (e Extension) String() string {
	switch e {
	case ExtensionNone:
		return ExtensionNoneStr
	case ExtensionSnapshot:
		return ExtensionSnapshotStr
	case ExtensionLocal:
		return ExtensionLocalStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Extension value is one of the defined constants.
func (e Extension) Valid() bool {
	return e == ExtensionNone || e == ExtensionSnapshot || e == ExtensionLocal
}

// TypeName returns "Extension", the name of the type for logging and
// debugging.
func (e Extension) TypeName() string {
	return "Extension"
}

// Redacted returns the same string representation as String(). Extension
// values contain no sensitive information.
func (e Extension) Redacted() string {
	return e.String()
}

// IsZero reports whether the Extension has its zero value, ExtensionNone.
//
// Note: The zero value (ExtensionNone) is the valid released state, so
// IsZero returning true does not indicate an error condition.
func (e Extension) IsZero() bool {
	return e == ExtensionNone
}

// Equal reports whether this Extension is equal to another value. The
// method accepts any type for other and uses type assertion to check if it
// is an Extension or *Extension.
func (e Extension) Equal(other any) bool {
	switch v := other.(type) {
	case Extension:
		return e == v
	case *Extension:
		if v == nil {
			return false
		}
		return e == *v
	default:
		return false
	}
}

// Validate checks whether the Extension value is one of the defined
// constants and returns a *ValidationError otherwise.
func (e Extension) Validate() error {
	if !e.Valid() {
		return &errors.ValidationError{
			Type:   "Extension",
			Field:  "",
			Reason: "invalid Extension value",
			Value:  int(e),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Extension.
//
// A valid Extension is serialized as its uppercase string representation
// (for example, "SNAPSHOT"). If the value is not valid, MarshalJSON returns
// a *MarshalError and does not produce any JSON output.
func (e Extension) MarshalJSON() ([]byte, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "Extension", Value: int(e)}
	}
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Extension.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "NONE", "SNAPSHOT", "LOCAL" or "" (resolved via the
//     case-sensitive ParseExtension).
//
//   - Number: 0 (ExtensionNone), 1 (ExtensionSnapshot), 2 (ExtensionLocal).
//
// If the input cannot be parsed as either string or number, or if it
// resolves to an invalid Extension, UnmarshalJSON returns an
// *UnmarshalError describing the failure.
func (e *Extension) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Extension", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Extension", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseExtension(s)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Extension", Data: data, Reason: err.Error()}
	}
	*e = Extension(i)
	if !e.Valid() {
		return &errors.UnmarshalError{Type: "Extension", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Extension.
func (e Extension) MarshalYAML() (any, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "Extension", Value: int(e)}
	}
	return e.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Extension, resolving string
// values via the case-sensitive ParseExtension.
func (e *Extension) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Extension", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseExtension(str)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Extension.
func (e Extension) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "Extension", Value: int(e)}
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Extension, accepting
// the same vocabulary as ParseExtension.
func (e *Extension) UnmarshalText(text []byte) error {
	parsed, err := ParseExtension(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Compile-time check that Extension implements model.Model interface.
var _ model.Model = (*Extension)(nil)
