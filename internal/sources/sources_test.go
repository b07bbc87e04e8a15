// SPDX-License-Identifier: MPL-2.0

package sources

import (
	"errors"
	"path/filepath"
	"testing"

	"extrasdoc/internal/pep508"
	"extrasdoc/internal/testutil"
)

func TestPickEnforcesSingleSource(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		content []string
		want    Kind
		wantErr error
	}{
		{
			name:    "file option alone",
			options: Options{KindFile: "requirements.txt"},
			want:    KindFile,
		},
		{
			name:    "inline content alone",
			content: []string{"pytz >=2019.1"},
			want:    KindInline,
		},
		{
			name:    "no source at all",
			wantErr: ErrNoSource,
		},
		{
			name:    "blank content is not a source",
			content: []string{"", "   "},
			wantErr: ErrNoSource,
		},
		{
			name:    "two options",
			options: Options{KindFile: "requirements.txt", KindSetupCfg: ""},
			wantErr: ErrMultipleSources,
		},
		{
			name:    "option plus content",
			options: Options{KindPyproject: ""},
			content: []string{"pytz"},
			wantErr: ErrMultipleSources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Pick(Request{Extra: "dates", Options: tt.options, Content: tt.content})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Pick() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pick() returned error: %v", err)
			}
			if kind != tt.want {
				t.Errorf("Pick() = %q, want %q", kind, tt.want)
			}
		})
	}
}

func TestResolveInlinePreservesEntriesAndSorts(t *testing.T) {
	reqs, err := Resolve(Request{
		Extra:   "foo",
		Content: []string{"zope.interface", "", "bar >=1.0", "baz"},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	got := pep508.Strings(reqs)
	want := []string{"bar>=1.0", "baz", "zope.interface"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveInlineRejectsMalformedLine(t *testing.T) {
	_, err := Resolve(Request{
		Extra:   "foo",
		Content: []string{"good", ">=broken"},
	})
	if !errors.Is(err, pep508.ErrInvalid) {
		t.Fatalf("expected pep508.ErrInvalid, got %v", err)
	}
	var pe *pep508.ParseError
	if !errors.As(err, &pe) || pe.Line != ">=broken" {
		t.Errorf("error should identify the offending line, got %v", err)
	}
}

func TestResolveFromFile(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "requirements", "dates.txt"),
		"# date handling extras\npytz >=2019.1\n\nbabel >=2.0  # locale data\n")

	reqs, err := Resolve(Request{
		PackageRoot: root,
		Extra:       "dates",
		Options:     Options{KindFile: filepath.Join("requirements", "dates.txt")},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	got := pep508.Strings(reqs)
	if len(got) != 2 || got[0] != "babel>=2.0" || got[1] != "pytz>=2019.1" {
		t.Errorf("unexpected entries: %v", got)
	}
}

func TestResolveFromFileMissing(t *testing.T) {
	_, err := Resolve(Request{
		PackageRoot: t.TempDir(),
		Extra:       "dates",
		Options:     Options{KindFile: "requirements.txt"},
	})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestResolveFromPkgInfo(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, DefaultPkgInfoFile),
		`{"name": "demo", "extras_require": {"dates": ["pytz >=2019.1"], "cache": ["redis"]}}`)

	reqs, err := Resolve(Request{
		PackageRoot: root,
		Extra:       "dates",
		Options:     Options{KindPkgInfo: ""},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if len(reqs) != 1 || reqs[0].String() != "pytz>=2019.1" {
		t.Errorf("unexpected entries: %v", pep508.Strings(reqs))
	}
}

func TestResolveFromPkgInfoMissingExtra(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, DefaultPkgInfoFile),
		`{"extras_require": {"cache": ["redis"]}}`)

	_, err := Resolve(Request{
		PackageRoot: root,
		Extra:       "dates",
		Options:     Options{KindPkgInfo: ""},
	})
	if !errors.Is(err, ErrExtraNotFound) {
		t.Fatalf("expected ErrExtraNotFound, got %v", err)
	}
}

func TestResolveFromSetupCfg(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "setup.cfg"),
		"[metadata]\nname = demo\n\n[options.extras_require]\ndates = pytz >=2019.1\ntesting =\n\tpytest >=2.7.3\n\tpytest-cov\n")

	reqs, err := Resolve(Request{
		PackageRoot: root,
		Extra:       "testing",
		Options:     Options{KindSetupCfg: ""},
	})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	got := pep508.Strings(reqs)
	if len(got) != 2 || got[0] != "pytest>=2.7.3" || got[1] != "pytest-cov" {
		t.Errorf("unexpected entries: %v", got)
	}
}

func TestResolveFromSetupCfgMissingSection(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "setup.cfg"), "[metadata]\nname = demo\n")

	_, err := Resolve(Request{
		PackageRoot: root,
		Extra:       "dates",
		Options:     Options{KindSetupCfg: ""},
	})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestResolveFromSetupCfgMissingExtra(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, "setup.cfg"),
		"[options.extras_require]\ncache = redis\n")

	_, err := Resolve(Request{
		PackageRoot: root,
		Extra:       "dates",
		Options:     Options{KindSetupCfg: ""},
	})
	if !errors.Is(err, ErrExtraNotFound) {
		t.Fatalf("expected ErrExtraNotFound, got %v", err)
	}
}
