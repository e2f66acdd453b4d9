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
	"strconv"
	"strings"

	"dirpx.dev/dxver/dxcore/errors"
	"dirpx.dev/dxver/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Core represents the numeric dotted core of a version identifier: the
// "1.2.3" in "1.2.3-rc.1" or the "1.2.3.4" in "1.2.3.4-hotfixbranch".
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// A Core carries three or four numeric components depending on its Arity:
//   - ArityThree: Major.Minor.Patch (the default scheme)
//   - ArityFour: Major.Minor.Patch.Hotfix (release lines that ship hotfixes)
//
// The Hotfix component only exists under ArityFour. Reading or incrementing
// it on a three-component Core fails with an *errors.UnsupportedError, and
// Validate rejects a three-component Core whose Hotfix field is non-zero.
//
// All increment operations return a new Core and never mutate the receiver,
// so a Core value can be shared freely across goroutines.
//
// The zero value of Core is the valid version core 0.0.0.
//
// Example values:
//
//	Core{Major: 1, Minor: 2, Patch: 3}                                  // "1.2.3"
//	Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: ArityFour}    // "1.2.3.4"
type Core struct {
	// Major is the first numeric component.
	//
	// Incrementing Major signals a new release generation; all
	// lower-significance components reset to zero.
	//
	// Major MUST NOT be negative.
	Major int

	// Minor is the second numeric component.
	//
	// Incrementing Minor resets Patch (and Hotfix under ArityFour) to zero.
	//
	// Minor MUST NOT be negative.
	Minor int

	// Patch is the third numeric component.
	//
	// Incrementing Patch resets Hotfix to zero under ArityFour.
	//
	// Patch MUST NOT be negative.
	Patch int

	// Hotfix is the fourth numeric component.
	//
	// It participates in rendering and comparison only when Arity is
	// ArityFour. Under ArityThree it MUST be zero.
	Hotfix int

	// Arity selects the numbering scheme: three components or four.
	//
	// The zero value ArityThree is the default scheme, so constructing
	// a Core literal without naming Arity yields a Major.Minor.Patch core.
	Arity Arity
}

// Compile-time check that Core implements model.Model
var _ model.Model = (*Core)(nil)

// NewCore creates a three-component Core from the given Major, Minor, and
// Patch values, validating the result before returning.
//
// If any component is negative, NewCore returns a zero Core and a
// *errors.ValidationError naming the offending field.
//
// This function is pure and has no side effects. It is safe to call
// concurrently from multiple goroutines.
//
// Example usage:
//
//	core, err := version.NewCore(1, 2, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(core) // Output: 1.2.3
func NewCore(major, minor, patch int) (Core, error) {
	c := Core{
		Major: major,
		Minor: minor,
		Patch: patch,
		Arity: ArityThree,
	}

	if err := c.Validate(); err != nil {
		return Core{}, err
	}

	return c, nil
}

// NewCoreWithHotfix creates a four-component Core from the given Major,
// Minor, Patch, and Hotfix values, validating the result before returning.
//
// If any component is negative, NewCoreWithHotfix returns a zero Core and a
// *errors.ValidationError naming the offending field.
//
// Example usage:
//
//	core, err := version.NewCoreWithHotfix(1, 2, 3, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(core) // Output: 1.2.3.4
func NewCoreWithHotfix(major, minor, patch, hotfix int) (Core, error) {
	c := Core{
		Major:  major,
		Minor:  minor,
		Patch:  patch,
		Hotfix: hotfix,
		Arity:  ArityFour,
	}

	if err := c.Validate(); err != nil {
		return Core{}, err
	}

	return c, nil
}

// ParseCore parses the dotted numeric core of a version string.
//
// The input is one to four dot-separated decimal components. Missing
// trailing components default to zero, so "10", "10.0", and "10.0.0" all
// parse to the same three-component core. The arity defaults to ArityThree
// and is promoted to ArityFour when the input spells out four full
// components ("1.2.3.4").
//
// Each component MUST be a non-empty digit string without leading zeroes
// (a bare "0" is allowed). Violations return a *errors.ParseError naming
// both the offending component and the complete input.
//
// Examples:
//
//	ParseCore("10")       -> Core{Major: 10}, rendered "10.0.0"
//	ParseCore("1.2.3")    -> Core{Major: 1, Minor: 2, Patch: 3}
//	ParseCore("1.2.3.4")  -> four components, Arity: ArityFour
//	ParseCore("01.0.0")   -> error (leading zero in "01")
//	ParseCore("10.")      -> error (empty component)
func ParseCore(s string) (Core, error) {
	return parseCoreText(s, s, ArityThree)
}

// String returns the canonical dotted rendering of the Core.
//
// Three components are rendered under ArityThree and four under ArityFour,
// each as a decimal integer without padding.
//
// Examples:
//
//	Core{Major: 1, Minor: 2, Patch: 3}.String()
//	// Output: "1.2.3"
//
//	Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: ArityFour}.String()
//	// Output: "1.2.3.4"
func (c Core) String() string {
	if c.Arity == ArityFour {
		return fmt.Sprintf("%d.%d.%d.%d", c.Major, c.Minor, c.Patch, c.Hotfix)
	}
	return fmt.Sprintf("%d.%d.%d", c.Major, c.Minor, c.Patch)
}

// Redacted returns the string representation of the Core for logging.
//
// Version cores contain no sensitive information, so Redacted returns
// the same value as String. This method implements the model.Loggable
// contract.
func (c Core) Redacted() string {
	return c.String()
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract.
func (c Core) TypeName() string {
	return "Core"
}

// IsZero reports whether this Core is the zero value: 0.0.0 under the
// default three-component scheme.
//
// Unlike many model types, the zero Core is a perfectly valid value (the
// version core "0.0.0"). IsZero is a structural check for "no core was
// ever set", useful when a Core field is optional.
//
// Note that a four-component 0.0.0.0 is NOT zero because its Arity departs
// from the default scheme.
func (c Core) IsZero() bool {
	return c.Major == 0 && c.Minor == 0 && c.Patch == 0 && c.Hotfix == 0 && c.Arity == ArityThree
}

// Equal reports whether this Core and other compare equal.
//
// Equality is defined by Compare returning zero, so a three-component
// 1.2.3 equals a four-component 1.2.3.4: the Hotfix component only
// participates when both sides carry four components.
func (c Core) Equal(other Core) bool {
	return c.Compare(other) == 0
}

// Compare compares c with other and reports their ordering.
//
// It returns:
//   - -1 if c <  other
//   - 0 if c == other
//   - +1 if c >  other
//
// Components are compared numerically in order of significance: Major,
// then Minor, then Patch. The Hotfix component participates only when
// BOTH cores carry four components; a three-component core neither wins
// nor loses against a hotfix number it cannot express.
//
// Examples:
//
//	1.2.3 < 1.2.4 < 1.3.0 < 2.0.0
//	1.2.3.1 < 1.2.3.2 (both four components)
//	1.2.3 == 1.2.3.9 (mixed arity, hotfix ignored)
func (c Core) Compare(other Core) int {
	if r := compareInt(c.Major, other.Major); r != 0 {
		return r
	}
	if r := compareInt(c.Minor, other.Minor); r != 0 {
		return r
	}
	if r := compareInt(c.Patch, other.Patch); r != 0 {
		return r
	}
	if c.Arity == ArityFour && other.Arity == ArityFour {
		return compareInt(c.Hotfix, other.Hotfix)
	}
	return 0
}

// compareInt reports the ordering of two integers as -1, 0, or +1.
func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// HotfixComponent returns the Hotfix component of a four-component Core.
//
// On a three-component Core the hotfix slot does not exist, and the call
// fails with a *errors.UnsupportedError rather than returning a misleading
// zero.
func (c Core) HotfixComponent() (int, error) {
	if c.Arity != ArityFour {
		return 0, &errors.UnsupportedError{
			Type:      c.TypeName(),
			Operation: "HotfixComponent",
			Reason:    "core has no hotfix component (arity is " + c.Arity.String() + ")",
		}
	}
	return c.Hotfix, nil
}

// IncrementMajor returns a new Core with Major incremented by one and all
// lower-significance components reset to zero.
//
// The receiver is not mutated.
//
// Example:
//
//	1.2.3 -> 2.0.0
//	1.2.3.4 -> 2.0.0.0
func (c Core) IncrementMajor() Core {
	next := c
	next.Major++
	next.Minor = 0
	next.Patch = 0
	next.Hotfix = 0
	return next
}

// IncrementMinor returns a new Core with Minor incremented by one and all
// lower-significance components reset to zero.
//
// The receiver is not mutated.
//
// Example:
//
//	1.2.3 -> 1.3.0
//	1.2.3.4 -> 1.3.0.0
func (c Core) IncrementMinor() Core {
	next := c
	next.Minor++
	next.Patch = 0
	next.Hotfix = 0
	return next
}

// IncrementPatch returns a new Core with Patch incremented by one. Under
// ArityFour the Hotfix component resets to zero.
//
// The receiver is not mutated.
//
// Example:
//
//	1.2.3 -> 1.2.4
//	1.2.3.4 -> 1.2.4.0
func (c Core) IncrementPatch() Core {
	next := c
	next.Patch++
	next.Hotfix = 0
	return next
}

// IncrementHotfix returns a new Core with Hotfix incremented by one.
//
// On a three-component Core the operation fails with a
// *errors.UnsupportedError. The receiver is not mutated.
//
// Example:
//
//	1.2.3.4 -> 1.2.3.5
func (c Core) IncrementHotfix() (Core, error) {
	if c.Arity != ArityFour {
		return Core{}, &errors.UnsupportedError{
			Type:      c.TypeName(),
			Operation: "IncrementHotfix",
			Reason:    "core has no hotfix component (arity is " + c.Arity.String() + ")",
		}
	}
	next := c
	next.Hotfix++
	return next, nil
}

// Increment returns a new Core advanced at the given position, resetting
// all lower-significance components to zero.
//
// PositionHotfix on a three-component Core fails with a
// *errors.UnsupportedError. An unknown position fails with a
// *errors.ValidationError. The receiver is never mutated.
func (c Core) Increment(pos Position) (Core, error) {
	switch pos {
	case PositionMajor:
		return c.IncrementMajor(), nil
	case PositionMinor:
		return c.IncrementMinor(), nil
	case PositionPatch:
		return c.IncrementPatch(), nil
	case PositionHotfix:
		return c.IncrementHotfix()
	default:
		return Core{}, &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Position",
			Reason: "unknown increment position",
			Value:  int(pos),
		}
	}
}

// IncrementLeastSignificant returns a new Core advanced at its least
// significant component: Patch under ArityThree, Hotfix under ArityFour.
//
// This is the default advance used when no explicit position is requested.
// The receiver is not mutated.
//
// Example:
//
//	1.2.3 -> 1.2.4
//	1.2.3.4 -> 1.2.3.5
func (c Core) IncrementLeastSignificant() Core {
	if c.Arity == ArityFour {
		next := c
		next.Hotfix++
		return next
	}
	return c.IncrementPatch()
}

// RenderPrefix returns the first n components of the Core joined with
// dots.
//
// n MUST be between 1 and the component count of the Core's arity;
// anything else fails with a *errors.UnsupportedError. This is useful for
// branch naming schemes that track a release line by a shortened version
// prefix.
//
// Examples:
//
//	Core{Major: 10, Minor: 2, Patch: 3}.RenderPrefix(1)
//	// Output: "10"
//
//	Core{Major: 10, Minor: 2, Patch: 3}.RenderPrefix(2)
//	// Output: "10.2"
func (c Core) RenderPrefix(n int) (string, error) {
	count := c.Arity.Components()
	if n < 1 || n > count {
		return "", &errors.UnsupportedError{
			Type:      c.TypeName(),
			Operation: "RenderPrefix",
			Reason:    fmt.Sprintf("prefix length %d is outside 1..%d", n, count),
		}
	}

	parts := [4]int{c.Major, c.Minor, c.Patch, c.Hotfix}
	rendered := make([]string, n)
	for i := 0; i < n; i++ {
		rendered[i] = strconv.Itoa(parts[i])
	}
	return strings.Join(rendered, "."), nil
}

// Validate checks whether this Core satisfies all model contracts and
// invariants. This method implements the model.Validatable interface.
//
// Validate returns nil if the Core conforms to all of the following
// requirements:
//   - Major, Minor, Patch, and Hotfix MUST NOT be negative
//   - Arity MUST be a known arity constant
//   - Hotfix MUST be zero when the arity is three-digits
//
// The zero value passes validation: 0.0.0 is a legitimate version core.
//
// This method is fast, deterministic, and idempotent. It does not mutate
// the receiver and is safe to call concurrently.
func (c Core) Validate() error {
	if c.Major < 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Major",
			Reason: "must not be negative",
			Value:  c.Major,
		}
	}
	if c.Minor < 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Minor",
			Reason: "must not be negative",
			Value:  c.Minor,
		}
	}
	if c.Patch < 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Patch",
			Reason: "must not be negative",
			Value:  c.Patch,
		}
	}
	if c.Hotfix < 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Hotfix",
			Reason: "must not be negative",
			Value:  c.Hotfix,
		}
	}

	if !c.Arity.Valid() {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Arity",
			Reason: "must be a known arity",
			Value:  int(c.Arity),
		}
	}

	if c.Arity != ArityFour && c.Hotfix != 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Hotfix",
			Reason: "must be zero when the arity is " + c.Arity.String(),
			Value:  c.Hotfix,
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler for Core.
//
// A valid Core is serialized as a JSON string in canonical dotted form
// (for example, "1.2.3" or "1.2.3.4"). Before encoding, MarshalJSON calls
// Validate; if the Core is not well-formed, it returns the validation
// error and produces no JSON output.
func (c Core) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler for Core.
//
// The method expects the JSON value to be a string in dotted numeric form
// and parses it via ParseCore, so "1.2.3.4" restores a four-component
// core and shortened forms like "10" are padded to "10.0.0". Any parse
// error is returned directly to the caller.
func (c *Core) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{
			Type:   "Core",
			Data:   data,
			Reason: err.Error(),
		}
	}

	parsed, err := ParseCore(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Core.
//
// A valid Core is serialized as a scalar string in canonical dotted form.
// Validation is performed before encoding; if the Core is not well-formed,
// the validation error is returned and no YAML value is produced.
func (c Core) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Core.
//
// The YAML value is expected to be a scalar string in dotted numeric form
// and is parsed via ParseCore. Any parse error is returned to the caller,
// and in that case the Core MUST NOT be used.
func (c *Core) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &errors.UnmarshalError{
			Type:   "Core",
			Data:   nil,
			Reason: err.Error(),
		}
	}

	parsed, err := ParseCore(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
