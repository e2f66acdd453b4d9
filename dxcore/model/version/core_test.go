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
	"encoding/json"
	"strings"
	"testing"

	"dirpx.dev/dxver/dxcore/model/version"
	"gopkg.in/yaml.v3"
)

func TestCore_String(t *testing.T) {
	tests := []struct {
		name string
		core version.Core
		want string
	}{
		{
			name: "three_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			want: "1.2.3",
		},
		{
			name: "four_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			want: "1.2.3.4",
		},
		{
			name: "zero_value",
			core: version.Core{},
			want: "0.0.0",
		},
		{
			name: "four_with_zero_hotfix",
			core: version.Core{Major: 10, Minor: 0, Patch: 0, Arity: version.ArityFour},
			want: "10.0.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.core.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCore(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    version.Core
		wantErr bool
	}{
		{
			name:  "full_three",
			input: "1.2.3",
			want:  version.Core{Major: 1, Minor: 2, Patch: 3, Arity: version.ArityThree},
		},
		{
			name:  "single_component_padded",
			input: "10",
			want:  version.Core{Major: 10, Arity: version.ArityThree},
		},
		{
			name:  "two_components_padded",
			input: "10.1",
			want:  version.Core{Major: 10, Minor: 1, Arity: version.ArityThree},
		},
		{
			name:  "four_components_promote",
			input: "1.2.3.4",
			want:  version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
		},
		{
			name:  "zero_core",
			input: "0.0.0",
			want:  version.Core{Arity: version.ArityThree},
		},
		{
			name:  "bare_zero",
			input: "0",
			want:  version.Core{Arity: version.ArityThree},
		},
		{
			name:    "empty_input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "leading_zero",
			input:   "01.0.0",
			wantErr: true,
		},
		{
			name:    "leading_zero_minor",
			input:   "1.02.3",
			wantErr: true,
		},
		{
			name:    "trailing_dot",
			input:   "10.",
			wantErr: true,
		},
		{
			name:    "double_dot",
			input:   "1..2",
			wantErr: true,
		},
		{
			name:    "non_numeric",
			input:   "1.2.x",
			wantErr: true,
		},
		{
			name:    "negative_component",
			input:   "-1.0.0",
			wantErr: true,
		},
		{
			name:    "five_components",
			input:   "1.2.3.4.5",
			wantErr: true,
		},
		{
			name:    "component_overflow",
			input:   "99999999999999999999.0.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := version.ParseCore(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCore() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if got.Major != tt.want.Major || got.Minor != tt.want.Minor || got.Patch != tt.want.Patch || got.Hotfix != tt.want.Hotfix {
					t.Errorf("ParseCore() = %+v, want %+v", got, tt.want)
				}
				if got.Arity != tt.want.Arity {
					t.Errorf("ParseCore() Arity = %v, want %v", got.Arity, tt.want.Arity)
				}
			}
		})
	}
}

func TestParseCore_ErrorNamesTokenAndInput(t *testing.T) {
	_, err := version.ParseCore("01.0.0")
	if err == nil {
		t.Fatal("ParseCore(\"01.0.0\") expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "01.0.0") {
		t.Errorf("error %q does not name the complete input \"01.0.0\"", msg)
	}
	if !strings.Contains(msg, "01") {
		t.Errorf("error %q does not name the offending component \"01\"", msg)
	}
}

func TestCore_Compare(t *testing.T) {
	tests := []struct {
		name string
		c1   version.Core
		c2   version.Core
		want int
		desc string
	}{
		{
			name: "equal_three",
			c1:   version.Core{Major: 1, Minor: 2, Patch: 3},
			c2:   version.Core{Major: 1, Minor: 2, Patch: 3},
			want: 0,
			desc: "1.2.3 == 1.2.3",
		},
		{
			name: "major_differs",
			c1:   version.Core{Major: 1, Minor: 9, Patch: 9},
			c2:   version.Core{Major: 2},
			want: -1,
			desc: "1.9.9 < 2.0.0",
		},
		{
			name: "minor_differs",
			c1:   version.Core{Major: 1, Minor: 1},
			c2:   version.Core{Major: 1, Minor: 2},
			want: -1,
			desc: "1.1.0 < 1.2.0",
		},
		{
			name: "patch_differs",
			c1:   version.Core{Major: 1, Minor: 0, Patch: 1},
			c2:   version.Core{Major: 1, Minor: 0, Patch: 2},
			want: -1,
			desc: "1.0.1 < 1.0.2",
		},
		{
			name: "hotfix_differs_both_four",
			c1:   version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 1, Arity: version.ArityFour},
			c2:   version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 2, Arity: version.ArityFour},
			want: -1,
			desc: "1.2.3.1 < 1.2.3.2",
		},
		{
			name: "hotfix_ignored_mixed_arity",
			c1:   version.Core{Major: 1, Minor: 2, Patch: 3},
			c2:   version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 9, Arity: version.ArityFour},
			want: 0,
			desc: "1.2.3 == 1.2.3.9 (hotfix only counts when both sides carry four)",
		},
		{
			name: "numeric_not_lexical",
			c1:   version.Core{Major: 2},
			c2:   version.Core{Major: 10},
			want: -1,
			desc: "2.0.0 < 10.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c1.Compare(tt.c2)
			if got != tt.want {
				t.Errorf("Compare() = %d, want %d (%s)", got, tt.want, tt.desc)
			}

			// Test symmetry: if c1 < c2, then c2 > c1
			if tt.want != 0 {
				reversed := tt.c2.Compare(tt.c1)
				if reversed != -tt.want {
					t.Errorf("Compare() symmetry failed: c1.Compare(c2)=%d, c2.Compare(c1)=%d", got, reversed)
				}
			}
		})
	}
}

func TestCore_Equal(t *testing.T) {
	c1 := version.Core{Major: 1, Minor: 2, Patch: 3}
	c2 := version.Core{Major: 1, Minor: 2, Patch: 3}
	c3 := version.Core{Major: 1, Minor: 2, Patch: 4}
	c4 := version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 7, Arity: version.ArityFour}

	if !c1.Equal(c2) {
		t.Errorf("Equal() failed: %v should equal %v", c1, c2)
	}
	if c1.Equal(c3) {
		t.Errorf("Equal() failed: %v should not equal %v", c1, c3)
	}
	if !c1.Equal(c4) {
		t.Errorf("Equal() failed: %v should equal %v across arities", c1, c4)
	}
}

func TestNewCore(t *testing.T) {
	core, err := version.NewCore(1, 2, 3)
	if err != nil {
		t.Fatalf("NewCore() error = %v", err)
	}
	if core.String() != "1.2.3" {
		t.Errorf("NewCore() = %q, want %q", core.String(), "1.2.3")
	}
	if core.Arity != version.ArityThree {
		t.Errorf("NewCore() Arity = %v, want ArityThree", core.Arity)
	}

	if _, err := version.NewCore(1, -2, 3); err == nil {
		t.Error("NewCore() with negative component expected error, got nil")
	}
}

func TestNewCoreWithHotfix(t *testing.T) {
	core, err := version.NewCoreWithHotfix(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("NewCoreWithHotfix() error = %v", err)
	}
	if core.String() != "1.2.3.4" {
		t.Errorf("NewCoreWithHotfix() = %q, want %q", core.String(), "1.2.3.4")
	}
	if core.Arity != version.ArityFour {
		t.Errorf("NewCoreWithHotfix() Arity = %v, want ArityFour", core.Arity)
	}

	if _, err := version.NewCoreWithHotfix(1, 2, 3, -4); err == nil {
		t.Error("NewCoreWithHotfix() with negative hotfix expected error, got nil")
	}
}

func TestCore_HotfixComponent(t *testing.T) {
	four := version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour}
	got, err := four.HotfixComponent()
	if err != nil {
		t.Fatalf("HotfixComponent() error = %v", err)
	}
	if got != 4 {
		t.Errorf("HotfixComponent() = %d, want 4", got)
	}

	three := version.Core{Major: 1, Minor: 2, Patch: 3}
	if _, err := three.HotfixComponent(); err == nil {
		t.Error("HotfixComponent() on three components expected error, got nil")
	}
}

func TestCore_IncrementMajor(t *testing.T) {
	tests := []struct {
		name string
		core version.Core
		want string
	}{
		{
			name: "three_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			want: "2.0.0",
		},
		{
			name: "four_components_reset_hotfix",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			want: "2.0.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.core.String()
			got := tt.core.IncrementMajor()
			if got.String() != tt.want {
				t.Errorf("IncrementMajor() = %q, want %q", got.String(), tt.want)
			}
			if tt.core.String() != before {
				t.Errorf("IncrementMajor() mutated the receiver: %q", tt.core.String())
			}
		})
	}
}

func TestCore_IncrementMinor(t *testing.T) {
	tests := []struct {
		name string
		core version.Core
		want string
	}{
		{
			name: "three_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			want: "1.3.0",
		},
		{
			name: "four_components_reset_hotfix",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			want: "1.3.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.core.IncrementMinor()
			if got.String() != tt.want {
				t.Errorf("IncrementMinor() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestCore_IncrementPatch(t *testing.T) {
	tests := []struct {
		name string
		core version.Core
		want string
	}{
		{
			name: "three_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			want: "1.2.4",
		},
		{
			name: "four_components_reset_hotfix",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			want: "1.2.4.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.core.IncrementPatch()
			if got.String() != tt.want {
				t.Errorf("IncrementPatch() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestCore_IncrementHotfix(t *testing.T) {
	four := version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour}
	got, err := four.IncrementHotfix()
	if err != nil {
		t.Fatalf("IncrementHotfix() error = %v", err)
	}
	if got.String() != "1.2.3.5" {
		t.Errorf("IncrementHotfix() = %q, want %q", got.String(), "1.2.3.5")
	}

	three := version.Core{Major: 1, Minor: 2, Patch: 3}
	if _, err := three.IncrementHotfix(); err == nil {
		t.Error("IncrementHotfix() on three components expected error, got nil")
	}
}

func TestCore_Increment(t *testing.T) {
	tests := []struct {
		name    string
		core    version.Core
		pos     version.Position
		want    string
		wantErr bool
	}{
		{
			name: "major",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			pos:  version.PositionMajor,
			want: "2.0.0",
		},
		{
			name: "minor",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			pos:  version.PositionMinor,
			want: "1.3.0",
		},
		{
			name: "patch",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			pos:  version.PositionPatch,
			want: "1.2.4",
		},
		{
			name: "hotfix_on_four",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			pos:  version.PositionHotfix,
			want: "1.2.3.5",
		},
		{
			name:    "hotfix_on_three",
			core:    version.Core{Major: 1, Minor: 2, Patch: 3},
			pos:     version.PositionHotfix,
			wantErr: true,
		},
		{
			name:    "invalid_position",
			core:    version.Core{Major: 1, Minor: 2, Patch: 3},
			pos:     version.Position(99),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.core.Increment(tt.pos)
			if (err != nil) != tt.wantErr {
				t.Errorf("Increment() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("Increment() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestCore_IncrementLeastSignificant(t *testing.T) {
	three := version.Core{Major: 1, Minor: 2, Patch: 3}
	if got := three.IncrementLeastSignificant(); got.String() != "1.2.4" {
		t.Errorf("IncrementLeastSignificant() = %q, want %q", got.String(), "1.2.4")
	}

	four := version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour}
	if got := four.IncrementLeastSignificant(); got.String() != "1.2.3.5" {
		t.Errorf("IncrementLeastSignificant() = %q, want %q", got.String(), "1.2.3.5")
	}
}

func TestCore_RenderPrefix(t *testing.T) {
	tests := []struct {
		name    string
		core    version.Core
		n       int
		want    string
		wantErr bool
	}{
		{
			name: "one_component",
			core: version.Core{Major: 10, Minor: 2, Patch: 3},
			n:    1,
			want: "10",
		},
		{
			name: "two_components",
			core: version.Core{Major: 10, Minor: 2, Patch: 3},
			n:    2,
			want: "10.2",
		},
		{
			name: "all_three",
			core: version.Core{Major: 10, Minor: 2, Patch: 3},
			n:    3,
			want: "10.2.3",
		},
		{
			name: "all_four",
			core: version.Core{Major: 10, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			n:    4,
			want: "10.2.3.4",
		},
		{
			name:    "zero_width",
			core:    version.Core{Major: 10, Minor: 2, Patch: 3},
			n:       0,
			wantErr: true,
		},
		{
			name:    "four_on_three_arity",
			core:    version.Core{Major: 10, Minor: 2, Patch: 3},
			n:       4,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.core.RenderPrefix(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("RenderPrefix() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("RenderPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCore_Validate(t *testing.T) {
	tests := []struct {
		name    string
		core    version.Core
		wantErr bool
	}{
		{
			name:    "valid_three",
			core:    version.Core{Major: 1, Minor: 2, Patch: 3},
			wantErr: false,
		},
		{
			name:    "valid_four",
			core:    version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			wantErr: false,
		},
		{
			name:    "valid_zero",
			core:    version.Core{},
			wantErr: false,
		},
		{
			name:    "negative_major",
			core:    version.Core{Major: -1},
			wantErr: true,
		},
		{
			name:    "negative_minor",
			core:    version.Core{Minor: -1},
			wantErr: true,
		},
		{
			name:    "negative_patch",
			core:    version.Core{Patch: -1},
			wantErr: true,
		},
		{
			name:    "negative_hotfix",
			core:    version.Core{Hotfix: -1, Arity: version.ArityFour},
			wantErr: true,
		},
		{
			name:    "hotfix_on_three_arity",
			core:    version.Core{Major: 1, Hotfix: 4},
			wantErr: true,
		},
		{
			name:    "unknown_arity",
			core:    version.Core{Major: 1, Arity: version.Arity(99)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.core.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCore_IsZero(t *testing.T) {
	if !(version.Core{}).IsZero() {
		t.Error("IsZero() = false for zero Core, want true")
	}
	if (version.Core{Major: 1}).IsZero() {
		t.Error("IsZero() = true for 1.0.0, want false")
	}
	if (version.Core{Arity: version.ArityFour}).IsZero() {
		t.Error("IsZero() = true for four-component 0.0.0.0, want false")
	}
}

func TestCore_TypeName(t *testing.T) {
	var c version.Core
	if got := c.TypeName(); got != "Core" {
		t.Errorf("TypeName() = %q, want %q", got, "Core")
	}
}

func TestCore_Redacted(t *testing.T) {
	c := version.Core{Major: 1, Minor: 2, Patch: 3}
	if c.Redacted() != c.String() {
		t.Errorf("Redacted() = %q, String() = %q (should match)", c.Redacted(), c.String())
	}
}

func TestCore_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		core    version.Core
		want    string
		wantErr bool
	}{
		{
			name: "three_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			want: `"1.2.3"`,
		},
		{
			name: "four_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			want: `"1.2.3.4"`,
		},
		{
			name:    "invalid_negative",
			core:    version.Core{Major: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.core)
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCore_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    version.Core
		wantErr bool
	}{
		{
			name: "three_components",
			json: `"1.2.3"`,
			want: version.Core{Major: 1, Minor: 2, Patch: 3, Arity: version.ArityThree},
		},
		{
			name: "shortened_form_padded",
			json: `"10"`,
			want: version.Core{Major: 10, Arity: version.ArityThree},
		},
		{
			name: "four_components_promote",
			json: `"1.2.3.4"`,
			want: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
		},
		{
			name:    "leading_zero",
			json:    `"01.0.0"`,
			wantErr: true,
		},
		{
			name:    "invalid_json",
			json:    `not-json`,
			wantErr: true,
		},
		{
			name:    "wrong_type",
			json:    `123`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got version.Core
			err := json.Unmarshal([]byte(tt.json), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if !got.Equal(tt.want) || got.Arity != tt.want.Arity {
					t.Errorf("UnmarshalJSON() = %+v, want %+v", got, tt.want)
				}
			}
		})
	}
}

func TestCore_YAML(t *testing.T) {
	tests := []struct {
		name string
		core version.Core
		want string
	}{
		{
			name: "three_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3},
			want: "1.2.3\n",
		},
		{
			name: "four_components",
			core: version.Core{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
			want: "1.2.3.4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(tt.core)
			if err != nil {
				t.Fatalf("yaml.Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("yaml.Marshal() = %q, want %q", string(data), tt.want)
			}

			var decoded version.Core
			if err := yaml.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("yaml.Unmarshal() error = %v", err)
			}
			if !decoded.Equal(tt.core) || decoded.Arity != tt.core.Arity {
				t.Errorf("yaml round-trip = %+v, want %+v", decoded, tt.core)
			}
		})
	}
}

func TestCore_RoundTrip_JSON(t *testing.T) {
	cores := []version.Core{
		{Major: 1, Minor: 2, Patch: 3},
		{Major: 10},
		{Major: 1, Minor: 2, Patch: 3, Hotfix: 4, Arity: version.ArityFour},
		{},
	}

	for _, c := range cores {
		t.Run(c.String(), func(t *testing.T) {
			data, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}

			var decoded version.Core
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal() failed: %v", err)
			}

			if !decoded.Equal(c) {
				t.Errorf("Round-trip failed: got %+v, want %+v", decoded, c)
			}
			if decoded.Arity != c.Arity {
				t.Errorf("Round-trip Arity failed: got %v, want %v", decoded.Arity, c.Arity)
			}
		})
	}
}
