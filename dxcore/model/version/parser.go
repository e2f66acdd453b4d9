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
	"regexp"
	"strconv"
	"strings"

	"dirpx.dev/dxver/dxcore/errors"
)

var (
	// fourComponentCore recognizes a fully spelled out four-component
	// core, which promotes the arity to ArityFour regardless of what the
	// caller requested.
	fourComponentCore = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

	// threeComponentShape is the accepted overall shape of a core under
	// the three-digit scheme: one to three dot-separated digit groups.
	// Component-level rules (no empty group, no leading zero) are
	// enforced separately so their errors can name the offending token.
	threeComponentShape = regexp.MustCompile(`^\d+\.?\d*\.?\d*$`)

	// fourComponentShape is the accepted overall shape of a core under
	// the four-digit scheme: one to four dot-separated digit groups.
	fourComponentShape = regexp.MustCompile(`^\d+\.?\d*\.?\d*\.?\d*$`)

	// buildTail recognizes build metadata at the END of the metadata
	// text: an alphabetic qualifier, an optional dot, and a trailing
	// counter, as in "rc.1" or "dev2". Everything before it is branch
	// metadata.
	buildTail = regexp.MustCompile(`[A-Za-z]+\.?\d+$`)
)

// Parse parses a version string under the default three-digit scheme.
//
// The accepted form is
//
//	core[-branch][-build][-extension]
//
// where core is one to three dot-separated numeric components (missing
// trailing components default to zero), branch and build are metadata
// fragments, and extension is a trailing "SNAPSHOT" or "LOCAL" suffix
// recognized case-insensitively. A core spelling out four full
// components, as in "1.2.3.4-rc.1", promotes the version to the
// four-digit scheme.
//
// The exact input is retained and available via OriginalString, so
// "10.0" parses to a Version that compares equal to "10.0.0" but still
// remembers its shortened spelling.
//
// On error (empty input, malformed core, component with leading zeroes,
// or a counter too large for an integer), Parse returns a zero Version
// and a *errors.ParseError naming both the offending token and the
// complete input.
//
// Examples:
//
//	Parse("10")                        -> "10.0.0"
//	Parse("1.2.3-rc.1")                -> core 1.2.3, build "rc.1"
//	Parse("1.2.3.4-featurebranch-rc1") -> four components, branch
//	                                      "featurebranch", build "rc1"
//	Parse("10.10.10-branch-SNAPSHOT")  -> extension SNAPSHOT
//	Parse("01.0.0")                    -> error (leading zero in "01")
func Parse(s string) (Version, error) {
	return ParseWithArity(s, ArityThree)
}

// ParseWithArity parses a version string under the given scheme.
//
// The requested arity decides how many core components are accepted and
// how short cores are padded: under ArityFour, "1.2" parses to
// "1.2.0.0". A core spelling out four full components promotes a
// requested ArityThree to ArityFour, so round-tripping a four-component
// rendering never loses the hotfix slot.
//
// See Parse for the accepted form and error behavior.
func ParseWithArity(s string, arity Arity) (Version, error) {
	if s == "" {
		return Version{}, &errors.ParseError{
			Type:   "Version",
			Value:  s,
			Reason: "input is empty",
		}
	}

	// The core ends at the first dash. A dash at index zero can only
	// start a negative number, which the core shape rejects later with
	// a better message, so it never counts as a separator.
	coreText := s
	metaText := ""
	if idx := strings.Index(s, "-"); idx > 0 {
		coreText = s[:idx]
		metaText = s[idx+1:]
	}

	core, err := parseCoreText(coreText, s, arity)
	if err != nil {
		return Version{}, err
	}

	metaText, ext := splitExtension(metaText)
	branchText, buildText := splitBuildTail(metaText)

	branch, err := ParseIdentifiers(branchText)
	if err != nil {
		return Version{}, err
	}

	build, err := ParseIdentifiers(buildText)
	if err != nil {
		return Version{}, err
	}

	return Version{
		Core:      core,
		Branch:    branch,
		Build:     build,
		Extension: ext,
		original:  s,
	}, nil
}

// parseCoreText parses the dotted numeric core text under the given
// arity, promoting to ArityFour on a fully spelled out four-component
// core. input is the complete text being parsed and is carried into
// errors so they can name both the offending token and the whole input.
func parseCoreText(text, input string, arity Arity) (Core, error) {
	if fourComponentCore.MatchString(text) {
		arity = ArityFour
	}

	shape := threeComponentShape
	if arity == ArityFour {
		shape = fourComponentShape
	}
	if !shape.MatchString(text) {
		return Core{}, &errors.ParseError{
			Type:   "Core",
			Value:  text,
			Input:  input,
			Reason: "no valid version found",
		}
	}

	count := arity.Components()
	parts := strings.Split(text, ".")
	for len(parts) < count {
		parts = append(parts, "0")
	}

	components := make([]int, count)
	for i, part := range parts {
		if part == "" {
			return Core{}, &errors.ParseError{
				Type:   "Core",
				Value:  text,
				Input:  input,
				Reason: "empty version component",
			}
		}
		if len(part) > 1 && part[0] == '0' {
			return Core{}, &errors.ParseError{
				Type:   "Core",
				Value:  part,
				Input:  input,
				Reason: "component must not have leading zeroes",
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Core{}, &errors.ParseError{
				Type:   "Core",
				Value:  part,
				Input:  input,
				Reason: "component does not fit in an integer",
			}
		}
		components[i] = n
	}

	c := Core{
		Major: components[0],
		Minor: components[1],
		Patch: components[2],
		Arity: arity,
	}
	if count == 4 {
		c.Hotfix = components[3]
	}

	return c, nil
}

// splitExtension strips a trailing extension suffix from the metadata
// text and returns the remainder together with the recognized Extension.
//
// The suffix is recognized case-insensitively, checked once, snapshot
// before local, and stripped case-preservingly by length. Text without
// a recognized suffix is returned unchanged with ExtensionNone.
func splitExtension(meta string) (string, Extension) {
	lower := strings.ToLower(meta)
	switch {
	case lower == "snapshot":
		return "", ExtensionSnapshot
	case strings.HasSuffix(lower, "-snapshot"):
		return meta[:len(meta)-len("-snapshot")], ExtensionSnapshot
	case lower == "local":
		return "", ExtensionLocal
	case strings.HasSuffix(lower, "-local"):
		return meta[:len(meta)-len("-local")], ExtensionLocal
	default:
		return meta, ExtensionNone
	}
}

// splitBuildTail splits the metadata text into its branch and build
// parts.
//
// Build metadata is the buildTail match at the end of the text; the
// remainder before it, less one separating dash, is the branch. Text
// without a build tail is entirely branch metadata.
func splitBuildTail(meta string) (branchText, buildText string) {
	if meta == "" {
		return "", ""
	}

	loc := buildTail.FindStringIndex(meta)
	if loc == nil {
		return meta, ""
	}

	buildText = meta[loc[0]:loc[1]]
	branchText = strings.TrimSuffix(meta[:loc[0]], "-")
	return branchText, buildText
}
