// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestCheckFileSize(t *testing.T) {
	data := []byte("project: \"demo\"\n")

	if err := CheckFileSize(data, int64(len(data)), "extrasdoc.cue"); err != nil {
		t.Errorf("CheckFileSize at the limit returned error: %v", err)
	}

	err := CheckFileSize(data, int64(len(data))-1, "extrasdoc.cue")
	if err == nil {
		t.Fatal("CheckFileSize above the limit returned nil")
	}
	if !strings.Contains(err.Error(), "extrasdoc.cue") {
		t.Errorf("error should name the file, got %q", err)
	}
}

func TestFormatErrorNil(t *testing.T) {
	if got := FormatError(nil, "extrasdoc.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}
}

func TestFormatErrorNonCUE(t *testing.T) {
	err := FormatError(errors.New("boom"), "extrasdoc.cue")
	if err == nil || !strings.Contains(err.Error(), "extrasdoc.cue: boom") {
		t.Errorf("FormatError non-CUE = %v", err)
	}
}

func TestFormatErrorIncludesPath(t *testing.T) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(`#Config: { strict?: bool }`)
	user := ctx.CompileString(`strict: "yes"`)

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	verr := unified.Validate(cue.Concrete(false))
	if verr == nil {
		t.Fatal("expected a CUE validation error")
	}

	err := FormatError(verr, "extrasdoc.cue")
	if err == nil {
		t.Fatal("FormatError returned nil for a validation error")
	}
	if !strings.Contains(err.Error(), "extrasdoc.cue") {
		t.Errorf("formatted error should name the file, got %q", err)
	}
	if !strings.Contains(err.Error(), "strict") {
		t.Errorf("formatted error should name the failing field, got %q", err)
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"project"}, "project"},
		{[]string{"ui", "verbose"}, "ui.verbose"},
		{[]string{"pages", "0", "title"}, "pages[0].title"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
