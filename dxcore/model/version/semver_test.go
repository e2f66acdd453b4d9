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

package version_test

import (
	"testing"

	"dirpx.dev/dxver/dxcore/model/version"
	bsemver "github.com/blang/semver/v4"
)

func TestVersion_SemVer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain_core",
			input: "1.2.3",
			want:  "1.2.3",
		},
		{
			name:  "build_metadata_as_prerelease",
			input: "1.2.3-rc.1",
			want:  "1.2.3-rc.1",
		},
		{
			name:  "snapshot_as_prerelease",
			input: "1.0.0-SNAPSHOT",
			want:  "1.0.0-SNAPSHOT",
		},
		{
			name:  "branch_and_build",
			input: "1.4.0-featurebranch-dev2",
			want:  "1.4.0-featurebranch-dev2",
		},
		{
			name:    "four_components",
			input:   "1.2.3.4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.input)
			got, err := v.SemVer()
			if (err != nil) != tt.wantErr {
				t.Errorf("SemVer() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("SemVer() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestVersion_SemVer_InvalidMetadata(t *testing.T) {
	v, err := mustParse(t, "1.0.0").SetBranch("feature_x")
	if err != nil {
		t.Fatalf("SetBranch() failed: %v", err)
	}

	if _, err := v.SemVer(); err == nil {
		t.Error("SemVer() = nil error for metadata outside the SemVer alphabet, want error")
	}
}

func TestFromSemVer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain_core",
			input: "1.2.3",
			want:  "1.2.3",
		},
		{
			name:  "prerelease_as_build",
			input: "1.2.3-rc.1",
			want:  "1.2.3-rc.1",
		},
		{
			name:  "prerelease_as_extension",
			input: "1.0.0-SNAPSHOT",
			want:  "1.0.0-SNAPSHOT",
		},
		{
			name:  "prerelease_as_branch_and_build",
			input: "1.2.3-featurebranch-rc.1",
			want:  "1.2.3-featurebranch-rc.1",
		},
		{
			name:    "semver_build_metadata",
			input:   "1.2.3+build.5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv := bsemver.MustParse(tt.input)
			got, err := version.FromSemVer(sv)
			if (err != nil) != tt.wantErr {
				t.Errorf("FromSemVer() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("FromSemVer() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestFromSemVer_Reclassifies(t *testing.T) {
	got, err := version.FromSemVer(bsemver.MustParse("1.2.3-featurebranch-rc.1"))
	if err != nil {
		t.Fatalf("FromSemVer() failed: %v", err)
	}

	if got.Branch.String() != "featurebranch" {
		t.Errorf("Branch = %q, want %q", got.Branch.String(), "featurebranch")
	}
	if got.Build.String() != "rc.1" {
		t.Errorf("Build = %q, want %q", got.Build.String(), "rc.1")
	}
	if got.Extension != version.ExtensionNone {
		t.Errorf("Extension = %v, want ExtensionNone", got.Extension)
	}

	snapshot, err := version.FromSemVer(bsemver.MustParse("1.0.0-SNAPSHOT"))
	if err != nil {
		t.Fatalf("FromSemVer() failed: %v", err)
	}
	if snapshot.Extension != version.ExtensionSnapshot {
		t.Errorf("Extension = %v, want ExtensionSnapshot", snapshot.Extension)
	}
}

func TestFromSemVer_RoundTrip(t *testing.T) {
	inputs := []string{
		"1.2.3",
		"2.0.0-rc.1",
		"1.0.0-SNAPSHOT",
		"1.4.0-featurebranch-dev2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v := mustParse(t, input)

			sv, err := v.SemVer()
			if err != nil {
				t.Fatalf("SemVer() failed: %v", err)
			}

			back, err := version.FromSemVer(sv)
			if err != nil {
				t.Fatalf("FromSemVer() failed: %v", err)
			}

			if !back.Equal(v) {
				t.Errorf("round-trip = %q, want %q", back.String(), v.String())
			}
		})
	}
}

func TestVersion_GoModVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain_core",
			input: "1.2.3",
			want:  "v1.2.3",
		},
		{
			name:  "prerelease",
			input: "1.2.3-rc.1",
			want:  "v1.2.3-rc.1",
		},
		{
			name:  "snapshot",
			input: "1.0.0-SNAPSHOT",
			want:  "v1.0.0-SNAPSHOT",
		},
		{
			name:    "four_components",
			input:   "1.2.3.4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.input)
			got, err := v.GoModVersion()
			if (err != nil) != tt.wantErr {
				t.Errorf("GoModVersion() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("GoModVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersion_GoModVersion_InvalidMetadata(t *testing.T) {
	v, err := mustParse(t, "1.0.0").SetBranch("feature_x")
	if err != nil {
		t.Fatalf("SetBranch() failed: %v", err)
	}

	if _, err := v.GoModVersion(); err == nil {
		t.Error("GoModVersion() = nil error for metadata outside the SemVer alphabet, want error")
	}
}
