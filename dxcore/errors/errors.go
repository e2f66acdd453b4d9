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

// Package errors provides reusable error types for dxver model types.
//
// This package defines common error types used across the dxver packages
// (such as version cores, identifier sequences, extensions and positions)
// when parsing, marshaling, unmarshaling and validating strongly typed
// values. By centralizing these types, the package eliminates code
// duplication and provides a consistent error handling story across the
// entire dxver surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing text into a typed value fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, version strings from tags, configuration or CLI).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//     Use this in UnmarshalJSON / UnmarshalText implementations to provide
//     precise diagnostics to callers.
//
//   - ValidationError
//     Returned when validation of a model type fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid field values.
//
//   - UnsupportedError
//     Returned when an operation is not available for the current shape of
//     a value, such as hotfix operations on a three-component core.
//
//   - AbsentError
//     Returned when an operation requires metadata that a value does not
//     carry, such as incrementing a build counter that was never set.
//
// # Usage
//
// Each package that defines typed values can use these error types directly
// or create type aliases for better API clarity:
//
//	import "dirpx.dev/dxver/dxcore/errors"
//
//	// Direct usage:
//	func ParseExtension(s string) (Extension, error) {
//	    switch s {
//	    case "SNAPSHOT":
//	        return ExtensionSnapshot, nil
//	    case "LOCAL":
//	        return ExtensionLocal, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Extension", Value: s}
//	    }
//	}
//
//	// Or with a type alias for API consistency in the local package:
//	type ParseError = errors.ParseError
package errors

import "strconv"

// ParseError is returned when parsing text into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "Version",
// "Core", "Extension"), and Value contains the exact token that could not
// be interpreted. When the token is only a fragment of a larger input, the
// optional Input field carries the complete text so that diagnostics can
// name both. The optional Reason field explains what rule the token broke.
// Callers MAY pattern-match on Type to provide type-specific guidance to
// users or to translate errors into friendlier messages.
//
// # Example
//
//	func parseComponent(token, input string) (int, error) {
//	    if len(token) > 1 && token[0] == '0' {
//	        // Returned error will format as:
//	        // "dxver: invalid Core value: 01 in 01.0.0: numeric component must not contain leading zeroes"
//	        return 0, &errors.ParseError{
//	            Type:   "Core",
//	            Value:  token,
//	            Input:  input,
//	            Reason: "numeric component must not contain leading zeroes",
//	        }
//	    }
//	    // ...
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Version").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Input is the complete text the value was taken from.
	// May be empty, or equal to Value, when the value is the whole input;
	// it is then omitted from the formatted message.
	Input string

	// Reason is a short, human-readable explanation of the failure.
	// May be empty when the value alone is self-explanatory.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxver: invalid {Type} value: {Value}"
//	"dxver: invalid {Type} value: {Value} in {Input}"         (when Input differs)
//	"dxver: invalid {Type} value: {Value} in {Input}: {Reason}" (when Reason is set)
//
// For example:
//
//	"dxver: invalid Extension value: snapshot"
//	"dxver: invalid Core value: 01 in 01.0.0: numeric component must not contain leading zeroes"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	msg := "dxver: invalid " + e.Type + " value: " + e.Value
	if e.Input != "" && e.Input != e.Value {
		msg += " in " + e.Input
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Extension"),
// and Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid enum-like
// values from being silently emitted into JSON, YAML or other serialized
// forms. In most cases a MarshalError indicates a programming error (for
// example, a value constructed from a raw integer that was never validated).
//
// # Example
//
//	func (e Extension) MarshalJSON() ([]byte, error) {
//	    if !e.Valid() {
//	        // Returned error will format as:
//	        // "dxver: cannot marshal invalid Extension value: <int>"
//	        return nil, &errors.MarshalError{
//	            Type:  "Extension",
//	            Value: int(e),
//	        }
//	    }
//	    return []byte(`"` + e.String() + `"`), nil
//	}
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Extension").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxver: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
//
// For example:
//
//	"dxver: cannot marshal invalid Extension value: 99"
//
// This ensures that invalid numeric values are clearly displayed in error
// messages, making it easy to identify and debug marshaling failures.
func (e *MarshalError) Error() string {
	return "dxver: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Version"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong (for
// example, parse errors, invalid numeric value or empty input).
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their configuration or payload could not be
// interpreted. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack.
//
// # Example
//
//	func (e *Extension) UnmarshalJSON(data []byte) error {
//	    if len(data) == 0 {
//	        return &errors.UnmarshalError{
//	            Type:   "Extension",
//	            Data:   data,
//	            Reason: "empty data",
//	        }
//	    }
//
//	    // ... parsing logic ...
//
//	    // On invalid value:
//	    // return &errors.UnmarshalError{
//	    //     Type:   "Extension",
//	    //     Data:   data,
//	    //     Reason: "unknown value 'foo'",
//	    // }
//	}
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxver: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"dxver: cannot unmarshal Extension: empty data"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it separately
// when appropriate.
func (e *UnmarshalError) Error() string {
	return "dxver: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Core", "Version"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation of the validation
// failure, and Value optionally contains the problematic value that failed
// validation.
//
// This error is used by Validate() methods in model types to report
// constraint violations, missing required fields, or invalid field values.
//
// # Example
//
//	func (c Core) Validate() error {
//	    if c.Major < 0 {
//	        return &errors.ValidationError{
//	            Type:   "Core",
//	            Field:  "Major",
//	            Reason: "must not be negative",
//	            Value:  c.Major,
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxver: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxver: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"dxver: invalid Core.Major: must not be negative"
//	"dxver: invalid Position: invalid value"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxver: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxver: invalid " + e.Type + ": " + e.Reason
}

// UnsupportedError is returned when an operation exists on a type but is not
// available for the current shape of the value.
//
// Type identifies the logical type the operation was invoked on (for
// example, "Core"), Operation names the operation (typically the method
// name), and Reason explains which precondition the value does not meet.
//
// The canonical case is a three-component version core asked to do
// four-component work: the core is perfectly valid, but the operation makes
// no sense for it.
//
// # Example
//
//	func (c Core) IncrementHotfix() (Core, error) {
//	    if c.Arity != ArityFour {
//	        // Returned error will format as:
//	        // "dxver: unsupported operation Core.IncrementHotfix: core has three components"
//	        return Core{}, &errors.UnsupportedError{
//	            Type:      "Core",
//	            Operation: "IncrementHotfix",
//	            Reason:    "core has three components",
//	        }
//	    }
//	    // ...
//	}
type UnsupportedError struct {
	// Type is the logical name of the type the operation belongs to.
	Type string

	// Operation is the name of the operation that was rejected.
	Operation string

	// Reason is a short, human-readable explanation of the precondition
	// the value does not satisfy. May be empty.
	Reason string
}

// Error implements the error interface for UnsupportedError.
//
// The error message format is:
//
//	"dxver: unsupported operation {Type}.{Operation}: {Reason}"
//	"dxver: unsupported operation {Type}.{Operation}" (when Reason is empty)
//
// For example:
//
//	"dxver: unsupported operation Core.IncrementHotfix: core has three components"
func (e *UnsupportedError) Error() string {
	msg := "dxver: unsupported operation " + e.Type + "." + e.Operation
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// AbsentError is returned when an operation requires metadata that the value
// does not carry.
//
// Type identifies the logical type of the missing metadata (for example,
// "Identifiers") and Operation names the action that required it, as a
// lowercase verb phrase (for example, "increment").
//
// Unlike ValidationError, an AbsentError does not mean the value is broken:
// absent metadata is a legal state. It means the caller asked for something
// that only makes sense when the metadata is present.
//
// # Example
//
//	func (i Identifiers) Increment() (Identifiers, error) {
//	    if i.IsZero() {
//	        // Returned error will format as:
//	        // "dxver: cannot increment absent Identifiers"
//	        return nil, &errors.AbsentError{
//	            Type:      "Identifiers",
//	            Operation: "increment",
//	        }
//	    }
//	    // ...
//	}
type AbsentError struct {
	// Type is the logical name of the absent metadata.
	Type string

	// Operation is the action that required the metadata, as a lowercase
	// verb phrase.
	Operation string
}

// Error implements the error interface for AbsentError.
//
// The error message format is:
//
//	"dxver: cannot {Operation} absent {Type}"
//
// For example:
//
//	"dxver: cannot increment absent Identifiers"
func (e *AbsentError) Error() string {
	return "dxver: cannot " + e.Operation + " absent " + e.Type
}
