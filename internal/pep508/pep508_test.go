// SPDX-License-Identifier: MPL-2.0

package pep508

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Requirement
	}{
		{
			name: "bare name",
			line: "pytest",
			want: Requirement{Name: "pytest"},
		},
		{
			name: "name with version",
			line: "pytz >=2019.1",
			want: Requirement{Name: "pytz", Specifiers: []Specifier{{Op: ">=", Version: "2019.1"}}},
		},
		{
			name: "no space before operator",
			line: "pytest>=2.7.3",
			want: Requirement{Name: "pytest", Specifiers: []Specifier{{Op: ">=", Version: "2.7.3"}}},
		},
		{
			name: "multiple clauses",
			line: "requests >=2.0, <3.0",
			want: Requirement{Name: "requests", Specifiers: []Specifier{
				{Op: ">=", Version: "2.0"},
				{Op: "<", Version: "3.0"},
			}},
		},
		{
			name: "parenthesized specifier",
			line: "numpy (==1.19.*)",
			want: Requirement{Name: "numpy", Specifiers: []Specifier{{Op: "==", Version: "1.19.*"}}},
		},
		{
			name: "extras",
			line: "requests[security,socks] >=2.8.1",
			want: Requirement{
				Name:       "requests",
				Extras:     []string{"security", "socks"},
				Specifiers: []Specifier{{Op: ">=", Version: "2.8.1"}},
			},
		},
		{
			name: "environment marker",
			line: `tox; python_version <= "3.6"`,
			want: Requirement{Name: "tox", Marker: `python_version <= "3.6"`},
		},
		{
			name: "version and marker",
			line: `pywin32 >=1.0 ; sys_platform == "win32"`,
			want: Requirement{
				Name:       "pywin32",
				Specifiers: []Specifier{{Op: ">=", Version: "1.0"}},
				Marker:     `sys_platform == "win32"`,
			},
		},
		{
			name: "direct URL",
			line: "pip @ https://github.com/pypa/pip/archive/1.3.1.zip",
			want: Requirement{Name: "pip", URL: "https://github.com/pypa/pip/archive/1.3.1.zip"},
		},
		{
			name: "URL with marker",
			line: `name @ https://example.com/pkg.tar.gz ; os_name == "posix"`,
			want: Requirement{
				Name:   "name",
				URL:    "https://example.com/pkg.tar.gz",
				Marker: `os_name == "posix"`,
			},
		},
		{
			name: "arbitrary equality",
			line: "legacy===1.0-final",
			want: Requirement{Name: "legacy", Specifiers: []Specifier{{Op: "===", Version: "1.0-final"}}},
		},
		{
			name: "dotted name",
			line: "zope.interface >=5.0",
			want: Requirement{Name: "zope.interface", Specifiers: []Specifier{{Op: ">=", Version: "5.0"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"whitespace only", "   "},
		{"leading operator", ">=1.0"},
		{"unterminated extras", "requests[security"},
		{"empty extra", "requests[]"},
		{"missing operator", "pytest 2.7.3"},
		{"bad version characters", "pytest >=2.7.3///"},
		{"empty marker", "tox;"},
		{"missing url", "pip @"},
		{"empty clause", "requests >=2.0,,<3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.line)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid in chain", tt.line, err)
			}
		})
	}
}

func TestParseErrorNamesOffendingLine(t *testing.T) {
	_, err := Parse("pytest 2.7.3")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != "pytest 2.7.3" {
		t.Errorf("ParseError.Line = %q, want the offending line", pe.Line)
	}
}

func TestParseLines(t *testing.T) {
	reqs, err := ParseLines([]string{"bar", "", "  ", "baz >=1.0"})
	if err != nil {
		t.Fatalf("ParseLines returned error: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Name != "bar" || reqs[1].Name != "baz" {
		t.Errorf("unexpected names: %q, %q", reqs[0].Name, reqs[1].Name)
	}
}

func TestParseLinesStopsAtFirstInvalid(t *testing.T) {
	_, err := ParseLines([]string{"good", "not a requirement !!!", "also-good"})
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != "not a requirement !!!" {
		t.Errorf("ParseError.Line = %q, want the malformed line", pe.Line)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"pytz >=2019.1", "pytz>=2019.1"},
		{"requests[socks,security]>=2.8.1", "requests[security,socks]>=2.8.1"},
		{`tox ; python_version <= "3.6"`, `tox; python_version <= "3.6"`},
		{"requests <3.0,>=2.0", "requests<3.0,>=2.0"},
		{"pip @ https://example.com/pip.zip", "pip@ https://example.com/pip.zip"},
	}

	for _, tt := range tests {
		req, err := Parse(tt.line)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tt.line, err)
		}
		if got := req.String(); got != tt.want {
			t.Errorf("String() of %q = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Django", "django"},
		{"zope.interface", "zope-interface"},
		{"ruamel__yaml", "ruamel-yaml"},
		{"Sphinx-RTD_Theme", "sphinx-rtd-theme"},
	}
	for _, tt := range tests {
		r := Requirement{Name: tt.name}
		if got := r.CanonicalName(); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSortByName(t *testing.T) {
	reqs, err := ParseLines([]string{"zope.interface", "Django >=3.0", "aiohttp"})
	if err != nil {
		t.Fatalf("ParseLines returned error: %v", err)
	}
	SortByName(reqs)
	got := []string{reqs[0].Name, reqs[1].Name, reqs[2].Name}
	want := []string{"aiohttp", "Django", "zope.interface"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted order = %v, want %v", got, want)
	}
}
