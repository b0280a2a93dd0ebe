// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and environment variables (prefixed with
// ECOMMERCE_) and validated before use. Every section has its own settings
// struct so that binaries only depend on what they need.
package config
