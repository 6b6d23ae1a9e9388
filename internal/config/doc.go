// Package config loads pipeline settings from YAML files and supplies the
// defaults used when no file is given.
package config
