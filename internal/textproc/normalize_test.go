package textproc

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "Hello, World! This is GREAT!!!",
			want:  "hello world this is great",
		},
		{
			name:  "removes http urls",
			input: "check this out http://example.com/page?q=1 now",
			want:  "check this out now",
		},
		{
			name:  "removes www urls",
			input: "visit www.example.com today",
			want:  "visit today",
		},
		{
			name:  "collapses whitespace",
			input: "  too   many\t\tspaces\n\nhere  ",
			want:  "too many spaces here",
		},
		{
			name:  "keeps digits",
			input: "Win $1,000,000 now!",
			want:  "win 1 000 000 now",
		},
		{
			name:  "strips non latin scripts",
			input: "привет 你好 😀",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeCharset(t *testing.T) {
	// Output must contain only lowercase Latin letters, digits and single
	// spaces, with no leading/trailing space.
	inputs := []string{
		"URGENT!!! Click www.scam.example NOW",
		"mixed Сase with кириллица and 123",
		"   \t\n   ",
		"a.b,c;d:e(f)g[h]i<j>k",
		"https://a.example https://a.example duplicate",
	}

	for _, in := range inputs {
		got := Normalize(in)
		if got != strings.TrimSpace(got) {
			t.Errorf("Normalize(%q) has surrounding whitespace: %q", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) contains a multi-space run: %q", in, got)
		}
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' '
			if !valid {
				t.Errorf("Normalize(%q) contains invalid rune %q in %q", in, r, got)
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "URGENT! Verify www.bank.example NOW!!!"
	once := Normalize(input)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent: %q vs %q", once, twice)
	}
}

func TestExtractURLs(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no urls",
			input: "nothing suspicious here",
			want:  nil,
		},
		{
			name:  "http and www",
			input: "go to http://example.com or www.other.example now",
			want:  []string{"http://example.com", "www.other.example"},
		},
		{
			name:  "trims trailing punctuation",
			input: "(see www.x.com).",
			want:  []string{"www.x.com"},
		},
		{
			name:  "deduplicates preserving order",
			input: "www.a.example www.b.example www.a.example",
			want:  []string{"www.a.example", "www.b.example"},
		},
		{
			name:  "trailing quote and bracket",
			input: `click 'https://evil.example/path]' fast`,
			want:  []string{"https://evil.example/path"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractURLs(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("ExtractURLs(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("ExtractURLs(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestExtractURLsSubstringProperty(t *testing.T) {
	input := "mix of www.one.example, (http://two.example/path), and text"
	for _, u := range ExtractURLs(input) {
		if !strings.Contains(input, u) {
			t.Errorf("extracted URL %q is not a substring of the input", u)
		}
	}
}
