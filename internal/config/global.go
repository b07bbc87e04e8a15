// SPDX-License-Identifier: MPL-2.0

package config

// configFileOverride holds the config path set with the --config flag.
var configFileOverride string

// SetConfigFilePathOverride sets a custom config file path. An empty string
// restores the default lookup (extrasdoc.cue in the current directory).
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configFileOverride = ""
}
