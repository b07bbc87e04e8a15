// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from extrasdoc.cue in the project directory (or a
// path given with --config). The file is validated against an embedded CUE
// schema (config_schema.cue) before its values are merged over the defaults,
// so invalid configurations fail with a clear path-qualified error instead of
// surfacing later during the build.
package config
