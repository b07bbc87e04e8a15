// SPDX-License-Identifier: MPL-2.0

// Package sources resolves the requirement list an extras-require directive
// asks for. Exactly one source may be active per directive: a requirements
// file, a pkginfo JSON metadata file, the [options.extras_require] section of
// setup.cfg, the [project.optional-dependencies] table of pyproject.toml, the
// [tool.flit.metadata.requires-extra] table, or the directive's inline body.
//
// Resolution happens once per directive occurrence at build time; results are
// never cached. Every resolved line must parse as a PEP 508 specifier.
package sources
