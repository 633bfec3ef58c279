package allowlist

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestIsTrusted(t *testing.T) {
	checker := NewChecker([]string{"Example.com", " trusted.org "}, zap.NewNop())

	testCases := []struct {
		name string
		url  string
		want bool
	}{
		{"exact host", "https://example.com/path", true},
		{"subdomain", "https://mail.example.com/login", true},
		{"schemeless", "www.example.com/offer", true},
		{"second domain", "http://trusted.org", true},
		{"unlisted host", "http://evil.example.net", false},
		{"suffix is not a subdomain", "http://notexample.com", false},
		{"unparseable", "http://%zz", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checker.IsTrusted(tc.url); got != tc.want {
				t.Errorf("IsTrusted(%q) = %v, want %v", tc.url, got, tc.want)
			}
		})
	}
}

func TestIsTrustedEmptyAllowlist(t *testing.T) {
	checker := NewChecker(nil, zap.NewNop())
	if checker.IsTrusted("https://example.com") {
		t.Error("empty allowlist must trust nothing")
	}
}

func TestFilter(t *testing.T) {
	checker := NewChecker([]string{"example.com"}, zap.NewNop())

	urls := []string{
		"https://example.com/ok",
		"http://evil.test/phish",
		"https://docs.example.com/guide",
		"http://scam.test/win",
	}
	want := []string{"http://evil.test/phish", "http://scam.test/win"}
	if got := checker.Filter(urls); !reflect.DeepEqual(got, want) {
		t.Errorf("Filter returned %v, want %v", got, want)
	}

	if got := checker.Filter(nil); got != nil {
		t.Errorf("nil input should pass through, got %v", got)
	}
}
