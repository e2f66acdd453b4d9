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
	"fmt"
	"sort"

	"dirpx.dev/dxver/dxcore/errors"
	"dirpx.dev/dxver/dxcore/model"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Version represents a complete release version identifier: a numeric Core
// plus optional branch metadata, build metadata, and a release extension.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// The textual form is
//
//	core[-branch][-build][-EXTENSION]
//
// for example "1.2.3", "2.0.0-rc.1", "1.4.0-featurebranch-dev2" or
// "10.10.10-branch-SNAPSHOT". Each suffix segment is omitted when its
// component is absent (or ExtensionNone).
//
// Ordering is total and compares components in order of significance:
// Core first, then Branch, then Build, then Extension. Absent metadata
// ranks ABOVE present metadata, so "1.0.2" is greater than "1.0.2-rc.9":
// a release outranks every prerelease of the same core. Compare is the
// single source of truth for ordering; Less, Greater, and Equal derive
// from it.
//
// All operations return new values and never mutate the receiver, so a
// Version can be shared freely across goroutines. Versions carrying
// metadata contain a slice and are therefore not comparable with ==; use
// Equal, and use the canonical String as a map key.
//
// The zero value of Version is the valid released version 0.0.0.
type Version struct {
	// Core is the numeric dotted core, three or four components by its
	// arity.
	Core Core

	// Branch names the source branch of a prerelease, for example
	// "featurebranch". Nil means absent: the version was not built from
	// a feature branch.
	Branch Identifiers

	// Build qualifies a prerelease build, for example the token pair
	// ["rc.", "1"] rendering "rc.1". Nil means absent.
	//
	// When present, the trailing numeric token acts as the build counter
	// advanced by IncrementBuild and IncrementLatest.
	Build Identifiers

	// Extension marks the release state: ExtensionNone for a released
	// version, ExtensionSnapshot for a continuously rebuilt prerelease,
	// ExtensionLocal for a developer-machine build.
	Extension Extension

	// original retains the exact parsed input, when this Version came
	// from Parse, for OriginalString. It is dropped by every mutating
	// operation and ignored by Compare.
	original string
}

// Compile-time check that Version implements model.Model
var _ model.Model = (*Version)(nil)

// New creates a Version from its four components, validating the result
// before returning.
//
// Branch and build may be nil for absence; ExtensionNone marks a released
// version. If any component is invalid, New returns a zero Version and
// the aggregated validation error.
//
// Example usage:
//
//	core, _ := version.NewCore(1, 2, 3)
//	build, _ := version.ParseIdentifiers("rc.1")
//	v, err := version.New(core, nil, build, version.ExtensionNone)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // Output: 1.2.3-rc.1
func New(core Core, branch, build Identifiers, ext Extension) (Version, error) {
	v := Version{
		Core:      core,
		Branch:    branch,
		Build:     build,
		Extension: ext,
	}

	if err := v.Validate(); err != nil {
		return Version{}, err
	}

	return v, nil
}

// FromIntegers creates a released Version directly from one to four
// numeric components.
//
// Missing trailing components default to zero, and passing exactly four
// components selects the four-digit scheme. The result carries no branch,
// build, or extension metadata.
//
// Examples:
//
//	FromIntegers(1)          -> "1.0.0"
//	FromIntegers(1, 2)       -> "1.2.0"
//	FromIntegers(1, 2, 3)    -> "1.2.3"
//	FromIntegers(1, 2, 3, 4) -> "1.2.3.4"
func FromIntegers(parts ...int) (Version, error) {
	if len(parts) < 1 || len(parts) > 4 {
		return Version{}, &errors.ValidationError{
			Type:   "Version",
			Field:  "Core",
			Reason: fmt.Sprintf("needs 1 to 4 integer components (got %d)", len(parts)),
		}
	}

	c := Core{Arity: ArityThree}
	if len(parts) == 4 {
		c.Arity = ArityFour
	}
	c.Major = parts[0]
	if len(parts) > 1 {
		c.Minor = parts[1]
	}
	if len(parts) > 2 {
		c.Patch = parts[2]
	}
	if len(parts) > 3 {
		c.Hotfix = parts[3]
	}

	return New(c, nil, nil, ExtensionNone)
}

// String returns the canonical textual representation of the Version.
//
// The format is "core[-branch][-build][-EXTENSION]" with each suffix
// segment omitted when its component is absent or ExtensionNone. The
// canonical form is stable and parseable, which also makes it the
// recommended map key for version-keyed lookups.
//
// Examples:
//
//	"1.2.3"
//	"1.2.3.4"
//	"2.0.0-rc.1"
//	"1.4.0-featurebranch-dev2-SNAPSHOT"
func (v Version) String() string {
	s := v.Core.String()
	if !v.Branch.IsZero() {
		s += "-" + v.Branch.String()
	}
	if !v.Build.IsZero() {
		s += "-" + v.Build.String()
	}
	if v.Extension != ExtensionNone {
		s += "-" + v.Extension.String()
	}
	return s
}

// OriginalString returns the exact input this Version was parsed from.
//
// Only Parse retains the input; for constructed or incremented Versions
// the canonical String is returned instead. This preserves shortened
// spellings such as "10.0", which parses to (and compares as) "10.0.0"
// but remembers how it was written.
func (v Version) OriginalString() string {
	if v.original != "" {
		return v.original
	}
	return v.String()
}

// Redacted returns the string representation of the Version for logging.
//
// Version identifiers contain no sensitive information, so Redacted
// returns the same value as String. This method implements the
// model.Loggable contract.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract.
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether this Version is the zero value: core 0.0.0 with
// no branch, build, or extension metadata.
//
// The zero Version is the valid released version "0.0.0". IsZero is a
// structural check for "no version was ever set", useful when a Version
// field is optional. The retained original spelling is ignored.
func (v Version) IsZero() bool {
	return v.Core.IsZero() && v.Branch.IsZero() && v.Build.IsZero() && v.Extension == ExtensionNone
}

// Compare compares v with other and reports their ordering.
//
// It returns:
//   - -1 if v <  other
//   - 0 if v == other
//   - +1 if v >  other
//
// Components are compared in order of significance:
//  1. Core, numerically per component (hotfix when both sides carry four)
//  2. Branch metadata, absent ranking above present
//  3. Build metadata, absent ranking above present
//  4. Extension, by release rank: LOCAL < SNAPSHOT < NONE
//
// The retained original spelling never participates, so "10.0" and
// "10.0.0" compare equal.
//
// Example ordering:
//
//	1.0.0 < 1.0.1 < 1.0.2-rc.1 < 1.0.2-rc.2 < 1.0.2
func (v Version) Compare(other Version) int {
	if r := v.Core.Compare(other.Core); r != 0 {
		return r
	}
	if r := v.Branch.Compare(other.Branch); r != 0 {
		return r
	}
	if r := v.Build.Compare(other.Build); r != 0 {
		return r
	}
	return v.Extension.Compare(other.Extension)
}

// Less reports whether v is strictly less than other in version order.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Greater reports whether v is strictly greater than other in version
// order.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// Equal reports whether v and other represent the same version.
//
// Equality is defined by Compare returning zero. The retained original
// spelling is ignored, so Parse("10.0") equals Parse("10.0.0").
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// IncrementMajor returns a new Version with the core's Major component
// advanced and all lower components reset, carrying the metadata
// unchanged.
//
// The receiver is not mutated and the retained original is dropped.
//
// Example:
//
//	1.2.3-rc.1 -> 2.0.0-rc.1
func (v Version) IncrementMajor() Version {
	return Version{
		Core:      v.Core.IncrementMajor(),
		Branch:    v.Branch.Clone(),
		Build:     v.Build.Clone(),
		Extension: v.Extension,
	}
}

// IncrementMinor returns a new Version with the core's Minor component
// advanced and all lower components reset, carrying the metadata
// unchanged.
//
// The receiver is not mutated and the retained original is dropped.
//
// Example:
//
//	1.2.3 -> 1.3.0
func (v Version) IncrementMinor() Version {
	return Version{
		Core:      v.Core.IncrementMinor(),
		Branch:    v.Branch.Clone(),
		Build:     v.Build.Clone(),
		Extension: v.Extension,
	}
}

// IncrementPatch returns a new Version with the core's Patch component
// advanced, carrying the metadata unchanged.
//
// The receiver is not mutated and the retained original is dropped.
//
// Example:
//
//	1.2.3 -> 1.2.4
func (v Version) IncrementPatch() Version {
	return Version{
		Core:      v.Core.IncrementPatch(),
		Branch:    v.Branch.Clone(),
		Build:     v.Build.Clone(),
		Extension: v.Extension,
	}
}

// IncrementHotfix returns a new Version with the core's Hotfix component
// advanced, carrying the metadata unchanged.
//
// On a three-component core the operation fails with a
// *errors.UnsupportedError. The receiver is not mutated.
//
// Example:
//
//	1.2.3.4 -> 1.2.3.5
func (v Version) IncrementHotfix() (Version, error) {
	core, err := v.Core.IncrementHotfix()
	if err != nil {
		return Version{}, err
	}
	return Version{
		Core:      core,
		Branch:    v.Branch.Clone(),
		Build:     v.Build.Clone(),
		Extension: v.Extension,
	}, nil
}

// Overrides carries optional replacement metadata for the increment
// operations.
//
// Each non-empty field is re-parsed through the corresponding grammar
// fragment before the increment is applied: Branch and Build through
// ParseIdentifiers, Extension through the case-sensitive ParseExtension
// (so "SNAPSHOT", "LOCAL", or "NONE"). An empty field carries the
// existing value of the receiver unchanged; to clear metadata instead,
// use the Set operations, or pass "NONE" to reset the extension.
type Overrides struct {
	// Branch replaces the branch metadata when non-empty.
	Branch string

	// Build replaces the build metadata when non-empty.
	Build string

	// Extension replaces the extension when non-empty. It MUST be one of
	// the uppercase literals "SNAPSHOT", "LOCAL", or "NONE".
	Extension string
}

// applyOverrides returns a copy of v with the non-empty override fields
// parsed and applied, independent metadata slices, and the retained
// original dropped.
func (v Version) applyOverrides(ov Overrides) (Version, error) {
	next := Version{
		Core:      v.Core,
		Branch:    v.Branch.Clone(),
		Build:     v.Build.Clone(),
		Extension: v.Extension,
	}

	if ov.Branch != "" {
		branch, err := ParseIdentifiers(ov.Branch)
		if err != nil {
			return Version{}, err
		}
		next.Branch = branch
	}
	if ov.Build != "" {
		build, err := ParseIdentifiers(ov.Build)
		if err != nil {
			return Version{}, err
		}
		next.Build = build
	}
	if ov.Extension != "" {
		ext, err := ParseExtension(ov.Extension)
		if err != nil {
			return Version{}, err
		}
		next.Extension = ext
	}

	return next, nil
}

// Increment returns a new Version advanced at the given core position
// after applying the overrides.
//
// Unlike IncrementLatest, the core is ALWAYS advanced at pos, even when
// build metadata is present. PositionHotfix on a three-component core
// fails with a *errors.UnsupportedError, and an invalid override fails
// with its parse error. The receiver is never mutated.
func (v Version) Increment(pos Position, ov Overrides) (Version, error) {
	next, err := v.applyOverrides(ov)
	if err != nil {
		return Version{}, err
	}

	core, err := next.Core.Increment(pos)
	if err != nil {
		return Version{}, err
	}
	next.Core = core

	return next, nil
}

// IncrementLatest returns the next version after v, advancing the least
// significant core component by default.
//
// This is the canonical "advance" used by release pipelines. After the
// overrides are applied, build metadata takes precedence over the core:
// if build metadata is present, the core stays UNCHANGED and only the
// build counter advances, so "1.2.3-rc.1" becomes "1.2.3-rc.2" rather
// than "1.2.4-rc.1". Without build metadata the core advances at its
// least significant position (Patch, or Hotfix under the four-digit
// scheme).
//
// The receiver is never mutated.
//
// Examples:
//
//	1.2.3       -> 1.2.4
//	1.2.3.4     -> 1.2.3.5
//	1.2.3-rc.1  -> 1.2.3-rc.2
func (v Version) IncrementLatest(ov Overrides) (Version, error) {
	pos := PositionPatch
	if v.Core.Arity == ArityFour {
		pos = PositionHotfix
	}
	return v.IncrementLatestAt(pos, ov)
}

// IncrementLatestAt behaves like IncrementLatest with an explicit core
// position for the no-build-metadata case.
//
// After the overrides are applied, present build metadata still takes
// precedence: the build counter advances and pos is ignored. Only when
// no build metadata remains does the core advance at pos.
//
// The receiver is never mutated.
func (v Version) IncrementLatestAt(pos Position, ov Overrides) (Version, error) {
	next, err := v.applyOverrides(ov)
	if err != nil {
		return Version{}, err
	}

	if !next.Build.IsZero() {
		build, err := next.Build.Increment()
		if err != nil {
			return Version{}, err
		}
		next.Build = build
		return next, nil
	}

	core, err := next.Core.Increment(pos)
	if err != nil {
		return Version{}, err
	}
	next.Core = core

	return next, nil
}

// IncrementBuild returns a new Version with only the build counter
// advanced, leaving the core and all other metadata unchanged.
//
// When the version carries no build metadata the operation fails with a
// *errors.AbsentError. The receiver is not mutated and the retained
// original is dropped.
//
// Example:
//
//	1.2.3-rc.1 -> 1.2.3-rc.2
func (v Version) IncrementBuild() (Version, error) {
	if v.Build.IsZero() {
		return Version{}, &errors.AbsentError{
			Type:      "build metadata",
			Operation: "increment",
		}
	}

	build, err := v.Build.Increment()
	if err != nil {
		return Version{}, err
	}

	return Version{
		Core:      v.Core,
		Branch:    v.Branch.Clone(),
		Build:     build,
		Extension: v.Extension,
	}, nil
}

// SetBranch returns a new Version whose branch metadata is parsed from s,
// preserving every other component including the extension.
//
// The empty string clears the branch. The result is validated before
// returning. The receiver is not mutated and the retained original is
// dropped.
func (v Version) SetBranch(s string) (Version, error) {
	branch, err := ParseIdentifiers(s)
	if err != nil {
		return Version{}, err
	}

	next := Version{
		Core:      v.Core,
		Branch:    branch,
		Build:     v.Build.Clone(),
		Extension: v.Extension,
	}

	if err := next.Validate(); err != nil {
		return Version{}, err
	}

	return next, nil
}

// SetBuild returns a new Version whose build metadata is parsed from s,
// preserving every other component including the extension.
//
// The empty string clears the build metadata. The result is validated
// before returning. The receiver is not mutated and the retained original
// is dropped.
func (v Version) SetBuild(s string) (Version, error) {
	build, err := ParseIdentifiers(s)
	if err != nil {
		return Version{}, err
	}

	next := Version{
		Core:      v.Core,
		Branch:    v.Branch.Clone(),
		Build:     build,
		Extension: v.Extension,
	}

	if err := next.Validate(); err != nil {
		return Version{}, err
	}

	return next, nil
}

// SetExtension returns a new Version whose extension is parsed from s,
// preserving every other component.
//
// s MUST be one of the uppercase literals "SNAPSHOT", "LOCAL", "NONE", or
// the empty string, which clears the extension like "NONE". The receiver
// is not mutated and the retained original is dropped.
func (v Version) SetExtension(s string) (Version, error) {
	ext, err := ParseExtension(s)
	if err != nil {
		return Version{}, err
	}

	next := Version{
		Core:      v.Core,
		Branch:    v.Branch.Clone(),
		Build:     v.Build.Clone(),
		Extension: ext,
	}

	if err := next.Validate(); err != nil {
		return Version{}, err
	}

	return next, nil
}

// HotfixVersion returns the Hotfix component of a four-component version.
//
// On a three-component version the call fails with a
// *errors.UnsupportedError.
func (v Version) HotfixVersion() (int, error) {
	return v.Core.HotfixComponent()
}

// Validate checks whether this Version satisfies all model contracts and
// invariants. This method implements the model.Validatable interface.
//
// All four components are validated independently and the failures are
// aggregated into a single error, so a structurally broken value reports
// every defect at once rather than only the first.
//
// The zero value passes validation: 0.0.0 is a legitimate released
// version.
func (v Version) Validate() error {
	var err error
	err = multierr.Append(err, v.Core.Validate())
	err = multierr.Append(err, v.Branch.Validate())
	err = multierr.Append(err, v.Build.Validate())
	err = multierr.Append(err, v.Extension.Validate())
	return err
}

// MarshalJSON implements json.Marshaler for Version.
//
// A valid Version is serialized as a JSON string in canonical form (for
// example, "1.2.3-rc.1"). Before encoding, MarshalJSON calls Validate; if
// the Version is not well-formed, it returns the validation error and
// produces no JSON output.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler for Version.
//
// The method expects the JSON value to be a string and parses it via
// Parse, so the deserialized Version retains the serialized text as its
// original spelling. Any parse error is returned directly to the caller.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{
			Type:   "Version",
			Data:   data,
			Reason: err.Error(),
		}
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Version.
//
// A valid Version is serialized as a scalar string in canonical form.
// Validation is performed before encoding; if the Version is not
// well-formed, the validation error is returned and no YAML value is
// produced.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Version.
//
// The YAML value is expected to be a scalar string and is parsed via
// Parse. Any parse error is returned to the caller, and in that case the
// Version MUST NOT be used.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &errors.UnmarshalError{
			Type:   "Version",
			Data:   nil,
			Reason: err.Error(),
		}
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// Sort orders the given versions ascending in place, using Compare.
//
// The order is total, so equal versions keep a deterministic relative
// order only up to their equality class.
func Sort(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})
}
