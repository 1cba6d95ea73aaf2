package llm

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "clean object",
			raw:  `{"text": "hello"}`,
			want: `{"text": "hello"}`,
			ok:   true,
		},
		{
			name: "wrapped in prose",
			raw:  "Here is your exercise:\n{\"text\": \"hello\"}\nHope it helps!",
			want: `{"text": "hello"}`,
			ok:   true,
		},
		{
			name: "code fence",
			raw:  "```json\n{\"answers\": [\"a\", \"b\"]}\n```",
			want: `{"answers": ["a", "b"]}`,
			ok:   true,
		},
		{
			name: "trailing comma",
			raw:  `{"answers": ["a", "b",],}`,
			want: `{"answers": ["a", "b"]}`,
			ok:   true,
		},
		{
			name: "no object at all",
			raw:  "I cannot do that.",
			ok:   false,
		},
		{
			name: "unbalanced braces",
			raw:  `{"text": "hel`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON([]byte(tt.raw))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (got %s)", ok, tt.ok, got)
			}
			if !ok {
				return
			}
			if !json.Valid(got) {
				t.Fatalf("result not valid JSON: %s", got)
			}
			var a, b any
			if err := json.Unmarshal(got, &a); err != nil {
				t.Fatal(err)
			}
			if err := json.Unmarshal([]byte(tt.want), &b); err != nil {
				t.Fatal(err)
			}
			ja, _ := json.Marshal(a)
			jb, _ := json.Marshal(b)
			if string(ja) != string(jb) {
				t.Errorf("extracted %s, want %s", ja, jb)
			}
		})
	}
}
