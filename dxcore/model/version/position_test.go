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
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"PositionMajor", PositionMajor, "major"},
		{"PositionMinor", PositionMinor, "minor"},
		{"PositionPatch", PositionPatch, "patch"},
		{"PositionHotfix", PositionHotfix, "hotfix"},
		{"Unknown", Position(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("Position.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		// Valid inputs
		{"major lowercase", "major", PositionMajor, false},
		{"major title", "Major", PositionMajor, false},
		{"major uppercase", "MAJOR", PositionMajor, false},
		{"minor lowercase", "minor", PositionMinor, false},
		{"minor title", "Minor", PositionMinor, false},
		{"minor uppercase", "MINOR", PositionMinor, false},
		{"patch lowercase", "patch", PositionPatch, false},
		{"patch title", "Patch", PositionPatch, false},
		{"patch uppercase", "PATCH", PositionPatch, false},
		{"hotfix lowercase", "hotfix", PositionHotfix, false},
		{"hotfix title", "Hotfix", PositionHotfix, false},
		{"hotfix uppercase", "HOTFIX", PositionHotfix, false},

		// Invalid inputs
		{"empty", "", PositionMajor, true},
		{"invalid", "invalid", PositionMajor, true},
		{"number", "1", PositionMajor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePosition() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_Valid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"PositionMajor", PositionMajor, true},
		{"PositionMinor", PositionMinor, true},
		{"PositionPatch", PositionPatch, true},
		{"PositionHotfix", PositionHotfix, true},
		{"Invalid negative", Position(-1), false},
		{"Invalid positive", Position(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.Valid(); got != tt.want {
				t.Errorf("Position.Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_TypeName(t *testing.T) {
	var p Position
	if got := p.TypeName(); got != "Position" {
		t.Errorf("TypeName() = %v, want Position", got)
	}
}

func TestPosition_Redacted(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"PositionMajor", PositionMajor, "major"},
		{"PositionHotfix", PositionHotfix, "hotfix"},
		{"Unknown", Position(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.Redacted(); got != tt.want {
				t.Errorf("Redacted() = %v, want %v", got, tt.want)
			}
			// Redacted should match String for Position
			if got := tt.pos.Redacted(); got != tt.pos.String() {
				t.Errorf("Redacted() = %v, String() = %v (should match)", got, tt.pos.String())
			}
		})
	}
}

func TestPosition_IsZero(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"PositionMajor (zero value)", PositionMajor, true},
		{"PositionMinor", PositionMinor, false},
		{"PositionPatch", PositionPatch, false},
		{"PositionHotfix", PositionHotfix, false},
		{"Invalid", Position(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_Equal(t *testing.T) {
	tests := []struct {
		name string
		p1   Position
		p2   any
		want bool
	}{
		{"equal PositionMajor", PositionMajor, PositionMajor, true},
		{"equal PositionHotfix", PositionHotfix, PositionHotfix, true},
		{"different values", PositionMajor, PositionPatch, false},
		{"pointer equal", PositionMinor, func() *Position { p := PositionMinor; return &p }(), true},
		{"pointer different", PositionMinor, func() *Position { p := PositionPatch; return &p }(), false},
		{"nil pointer", PositionMajor, (*Position)(nil), false},
		{"different type", PositionMajor, "major", false},
		{"different type int", PositionMajor, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p1.Equal(tt.p2); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		wantErr bool
	}{
		{"PositionMajor valid", PositionMajor, false},
		{"PositionMinor valid", PositionMinor, false},
		{"PositionPatch valid", PositionPatch, false},
		{"PositionHotfix valid", PositionHotfix, false},
		{"Invalid negative", Position(-1), true},
		{"Invalid positive", Position(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPosition_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		want    string
		wantErr bool
	}{
		{"PositionMajor", PositionMajor, `"major"`, false},
		{"PositionMinor", PositionMinor, `"minor"`, false},
		{"PositionPatch", PositionPatch, `"patch"`, false},
		{"PositionHotfix", PositionHotfix, `"hotfix"`, false},
		{"Invalid", Position(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.pos)
			if (err != nil) != tt.wantErr {
				t.Errorf("Position.MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Position.MarshalJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestPosition_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		// String format
		{"major string", `"major"`, PositionMajor, false},
		{"minor string", `"minor"`, PositionMinor, false},
		{"patch string", `"patch"`, PositionPatch, false},
		{"hotfix string", `"hotfix"`, PositionHotfix, false},

		// Numeric format
		{"major numeric", `0`, PositionMajor, false},
		{"minor numeric", `1`, PositionMinor, false},
		{"patch numeric", `2`, PositionPatch, false},
		{"hotfix numeric", `3`, PositionHotfix, false},

		// Invalid inputs
		{"empty", `""`, PositionMajor, true},
		{"invalid string", `"invalid"`, PositionMajor, true},
		{"invalid number", `99`, PositionMajor, true},
		{"empty data", ``, PositionMajor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Position
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Position.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Position.UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_MarshalText(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		want    string
		wantErr bool
	}{
		{"PositionMajor", PositionMajor, "major", false},
		{"PositionHotfix", PositionHotfix, "hotfix", false},
		{"Invalid", Position(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pos.MarshalText()
			if (err != nil) != tt.wantErr {
				t.Errorf("Position.MarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Position.MarshalText() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestPosition_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		{"major", "major", PositionMajor, false},
		{"minor", "minor", PositionMinor, false},
		{"patch", "patch", PositionPatch, false},
		{"hotfix", "hotfix", PositionHotfix, false},
		{"invalid", "invalid", PositionMajor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Position
			err := got.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("Position.UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Position.UnmarshalText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_YAML(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"PositionMajor", PositionMajor, "major\n"},
		{"PositionMinor", PositionMinor, "minor\n"},
		{"PositionPatch", PositionPatch, "patch\n"},
		{"PositionHotfix", PositionHotfix, "hotfix\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Marshal
			got, err := yaml.Marshal(tt.pos)
			if err != nil {
				t.Errorf("yaml.Marshal() error = %v", err)
				return
			}
			if string(got) != tt.want {
				t.Errorf("yaml.Marshal() = %v, want %v", string(got), tt.want)
			}

			// Unmarshal
			var pos Position
			if err := yaml.Unmarshal(got, &pos); err != nil {
				t.Errorf("yaml.Unmarshal() error = %v", err)
				return
			}
			if pos != tt.pos {
				t.Errorf("yaml.Unmarshal() = %v, want %v", pos, tt.pos)
			}
		})
	}
}

func TestPosition_RoundTrip(t *testing.T) {
	tests := []Position{PositionMajor, PositionMinor, PositionPatch, PositionHotfix}

	for _, original := range tests {
		t.Run(original.String(), func(t *testing.T) {
			// JSON round-trip
			jsonData, err := json.Marshal(original)
			if err != nil {
				t.Fatalf("JSON Marshal error: %v", err)
			}
			var jsonResult Position
			if err := json.Unmarshal(jsonData, &jsonResult); err != nil {
				t.Fatalf("JSON Unmarshal error: %v", err)
			}
			if jsonResult != original {
				t.Errorf("JSON round-trip: got %v, want %v", jsonResult, original)
			}

			// YAML round-trip
			yamlData, err := yaml.Marshal(original)
			if err != nil {
				t.Fatalf("YAML Marshal error: %v", err)
			}
			var yamlResult Position
			if err := yaml.Unmarshal(yamlData, &yamlResult); err != nil {
				t.Fatalf("YAML Unmarshal error: %v", err)
			}
			if yamlResult != original {
				t.Errorf("YAML round-trip: got %v, want %v", yamlResult, original)
			}
		})
	}
}

func TestPosition_MarshalJSON_Invalid(t *testing.T) {
	// Invalid Position should fail to marshal
	invalid := Position(99)
	_, err := json.Marshal(invalid)
	if err == nil {
		t.Error("Expected error marshaling invalid Position, got nil")
	}
}

func TestPosition_MarshalYAML_Invalid(t *testing.T) {
	// Invalid Position should fail to marshal as YAML
	invalid := Position(99)
	_, err := yaml.Marshal(invalid)
	if err == nil {
		t.Error("Expected error marshaling invalid Position as YAML, got nil")
	}
}
