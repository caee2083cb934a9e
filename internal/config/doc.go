// SPDX-License-Identifier: MIT

// Package config handles dynmat CLI configuration using Viper with TOML as
// the file format.
//
// Values are resolved from, in increasing priority: built-in defaults, the
// config file ($XDG_CONFIG_HOME/dynmat/config.toml, ./config.toml, or the
// path given via --config), and DYNMAT_* environment variables
// (DYNMAT_ELEMENT, DYNMAT_FORMAT_SEPARATOR, DYNMAT_LOG_LEVEL, ...).
package config
