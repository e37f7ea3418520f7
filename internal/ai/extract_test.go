package ai

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "object wrapped in prose",
			text: `Sure, here you go: {"a": 1} Hope that helps!`,
			want: `{"a": 1}`,
		},
		{
			name: "nested objects stay balanced",
			text: `{"outer": {"inner": {"deep": true}}}`,
			want: `{"outer": {"inner": {"deep": true}}}`,
		},
		{
			name: "braces inside strings are ignored",
			text: `{"code": "if (x) { return; }"}`,
			want: `{"code": "if (x) { return; }"}`,
		},
		{
			name: "escaped quotes inside strings",
			text: `{"quote": "she said \"hello {world}\""}`,
			want: `{"quote": "she said \"hello {world}\""}`,
		},
		{
			name: "no object",
			text: "plain prose with no JSON at all",
			want: "",
		},
		{
			name: "unbalanced object",
			text: `{"a": 1`,
			want: "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "first of several objects",
			text: `{"first": 1} {"second": 2}`,
			want: `{"first": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONObject(tt.text); got != tt.want {
				t.Errorf("ExtractJSONObject(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
