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
	"fmt"
	"strings"

	"dirpx.dev/dxver/dxcore/errors"
	bsemver "github.com/blang/semver/v4"
	xsemver "golang.org/x/mod/semver"
)

// SemVer converts the Version to a Semantic Versioning 2.0.0 value for
// interop with strict SemVer tooling.
//
// The canonical rendering is parsed with github.com/blang/semver/v4, so
// branch metadata, build metadata, and the extension all land in the
// SemVer prerelease. That mapping preserves this library's ordering rule
// for the common cases: metadata lowers precedence on both sides, and
// "1.0.0-rc.1" converts to the SemVer prerelease "rc.1".
//
// Four-component versions fail with a *errors.UnsupportedError because
// the hotfix component has no SemVer slot. Metadata tokens outside the
// SemVer alphabet (anything beyond ASCII alphanumerics and hyphens)
// surface the underlying parse error.
//
// Examples:
//
//	"1.2.3"             -> 1.2.3
//	"1.2.3-rc.1"        -> 1.2.3-rc.1
//	"1.0.0-SNAPSHOT"    -> 1.0.0-SNAPSHOT
//	"1.2.3.4"           -> error (four components)
func (v Version) SemVer() (bsemver.Version, error) {
	if v.Core.Arity == ArityFour {
		return bsemver.Version{}, &errors.UnsupportedError{
			Type:      v.TypeName(),
			Operation: "SemVer",
			Reason:    "the hotfix component has no semantic versioning slot",
		}
	}

	sv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("cannot express %q as a semantic version: %w", v.String(), err)
	}

	return sv, nil
}

// FromSemVer converts a Semantic Versioning 2.0.0 value into a Version.
//
// The numeric core maps directly and the SemVer prerelease is
// re-classified through the metadata grammar: a trailing "SNAPSHOT" or
// "LOCAL" becomes the extension, a trailing qualifier-and-counter such
// as "rc.1" becomes build metadata, and anything before it becomes
// branch metadata.
//
// SemVer build metadata ("+..." after the prerelease) has no equivalent
// in this scheme and is rejected with a *errors.UnsupportedError rather
// than silently dropped.
//
// Examples:
//
//	1.2.3          -> "1.2.3"
//	1.2.3-rc.1     -> "1.2.3-rc.1" (build metadata)
//	1.0.0-SNAPSHOT -> "1.0.0-SNAPSHOT" (extension)
//	1.2.3+build.5  -> error (SemVer build metadata)
func FromSemVer(sv bsemver.Version) (Version, error) {
	if len(sv.Build) > 0 {
		return Version{}, &errors.UnsupportedError{
			Type:      "Version",
			Operation: "FromSemVer",
			Reason:    "semantic versioning build metadata (+...) has no equivalent",
		}
	}

	pre := make([]string, len(sv.Pre))
	for i, p := range sv.Pre {
		pre[i] = p.String()
	}

	metaText, ext := splitExtension(strings.Join(pre, "."))
	branchText, buildText := splitBuildTail(metaText)

	branch, err := ParseIdentifiers(branchText)
	if err != nil {
		return Version{}, err
	}

	build, err := ParseIdentifiers(buildText)
	if err != nil {
		return Version{}, err
	}

	core, err := NewCore(int(sv.Major), int(sv.Minor), int(sv.Patch))
	if err != nil {
		return Version{}, err
	}

	return New(core, branch, build, ext)
}

// GoModVersion renders the Version in the "v"-prefixed form used by Go
// module tooling, validated with golang.org/x/mod/semver.
//
// Four-component versions fail with a *errors.UnsupportedError, as does
// any version whose canonical rendering is not a valid module version
// (for example, metadata tokens outside the SemVer alphabet).
//
// Examples:
//
//	"1.2.3"      -> "v1.2.3"
//	"1.2.3-rc.1" -> "v1.2.3-rc.1"
func (v Version) GoModVersion() (string, error) {
	if v.Core.Arity == ArityFour {
		return "", &errors.UnsupportedError{
			Type:      v.TypeName(),
			Operation: "GoModVersion",
			Reason:    "the hotfix component has no module version slot",
		}
	}

	s := "v" + v.String()
	if !xsemver.IsValid(s) {
		return "", &errors.UnsupportedError{
			Type:      v.TypeName(),
			Operation: "GoModVersion",
			Reason:    fmt.Sprintf("%q is not a valid module version", s),
		}
	}

	return s, nil
}
