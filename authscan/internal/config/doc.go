// Package config loads the optional authscan YAML file.
//
// Every field has a default, so authscan runs without any file. Command-line
// flags override loaded values; call Validate again after applying them.
package config
