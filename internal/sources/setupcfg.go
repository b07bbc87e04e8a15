// SPDX-License-Identifier: MPL-2.0

package sources

import (
	"fmt"
	"path/filepath"
	"strings"

	"extrasdoc/internal/issue"

	"gopkg.in/ini.v1"
)

const (
	setupCfgFile  = "setup.cfg"
	extrasSection = "options.extras_require"
)

// fromSetupCfg reads the [options.extras_require] section of setup.cfg.
// Values are newline-separated specifier lists; Python-style multiline
// values (indented continuation lines) are accepted.
func fromSetupCfg(req Request) ([]string, error) {
	path := filepath.Join(req.PackageRoot, setupCfgFile)

	cfg, err := ini.LoadSources(ini.LoadOptions{AllowPythonMultilineValues: true}, path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("read setup.cfg for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check that setup.cfg exists under the package root").
			Wrap(fmt.Errorf("%w: %v", ErrSourceNotFound, err)).
			BuildError()
	}

	section, err := cfg.GetSection(extrasSection)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Add an [options.extras_require] section to setup.cfg").
			Wrap(fmt.Errorf("%w: section [%s] missing", ErrSourceNotFound, extrasSection)).
			BuildError()
	}

	if !section.HasKey(req.Extra) {
		return nil, issue.NewErrorContext().
			WithOperation(fmt.Sprintf("resolve requirements for extra %q", req.Extra)).
			WithResource(path).
			WithSuggestion("Check the extra name against the section keys").
			Wrap(fmt.Errorf("%w: %q has no key in [%s]", ErrExtraNotFound, req.Extra, extrasSection)).
			BuildError()
	}

	var lines []string
	for _, line := range strings.Split(section.Key(req.Extra).String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines, nil
}
