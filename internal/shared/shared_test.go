package shared

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestNormalizeSearch(t *testing.T) {
	tc := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "  \t\n", want: ""},
		{name: "surrounding whitespace", in: "  machine learning ", want: "machine learning"},
		{name: "case is kept", in: "JavaScript", want: "JavaScript"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSearch(tt.in); got != tt.want {
				t.Errorf("NormalizeSearch(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tc := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "100%", want: `100\%`},
		{in: "snake_case", want: `snake\_case`},
		{in: `back\slash`, want: `back\\slash`},
	}

	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeLike(tt.in); got != tt.want {
				t.Errorf("EscapeLike(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniqueSorted(t *testing.T) {
	got := UniqueSorted([]string{"teens", "", "college", "teens", "AI", "college"})
	want := []string{"AI", "college", "teens"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UniqueSorted() mismatch (-want +got):\n%s", diff)
	}

	if got := UniqueSorted(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseLevel(t *testing.T) {
	t.Run("known levels", func(t *testing.T) {
		for name, want := range map[string]log.Level{
			"":      log.InfoLevel,
			"debug": log.DebugLevel,
			"WARN":  log.WarnLevel,
			"error": log.ErrorLevel,
		} {
			got, err := ParseLevel(name)
			if err != nil {
				t.Errorf("ParseLevel(%q) unexpected error: %v", name, err)
			}
			if got != want {
				t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
			}
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		if _, err := ParseLevel("chatty"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := WithLogger(NewLogger(&buf), "component", "test")
	SetLogLevel(logger, log.DebugLevel)

	logger.Debug("hello", "n", 1)

	out := buf.String()
	for _, want := range []string{"hello", "component=test", "n=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got %q", want, out)
		}
	}
}

func TestJSONList(t *testing.T) {
	t.Run("Scan", func(t *testing.T) {
		tc := []struct {
			name string
			src  any
			want []string
		}{
			{name: "nil", src: nil, want: []string{}},
			{name: "empty bytes", src: []byte{}, want: []string{}},
			{name: "json null", src: "null", want: []string{}},
			{name: "string", src: `["AI","Web"]`, want: []string{"AI", "Web"}},
			{name: "bytes", src: []byte(`["Cloud"]`), want: []string{"Cloud"}},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				var l JSONList[string]
				if err := l.Scan(tt.src); err != nil {
					t.Fatalf("Scan() error = %v", err)
				}
				if diff := cmp.Diff(tt.want, l.Slice()); diff != "" {
					t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
				}
				if l == nil {
					t.Error("scanned list should be non-nil")
				}
			})
		}
	})

	t.Run("Scan Errors", func(t *testing.T) {
		var l JSONList[string]
		if err := l.Scan(42); err == nil {
			t.Error("expected error for unsupported type")
		}
		if err := l.Scan(`{"not":"a list"}`); err == nil {
			t.Error("expected error for non-array JSON")
		}
	})

	t.Run("Value", func(t *testing.T) {
		var empty JSONList[string]
		v, err := empty.Value()
		if err != nil || v != "[]" {
			t.Errorf("nil list Value() = %v, %v", v, err)
		}

		v, err = JSONList[string]{"a", "b"}.Value()
		if err != nil || v != `["a","b"]` {
			t.Errorf("Value() = %v, %v", v, err)
		}
	})
}
