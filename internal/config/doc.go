// Package config provides configuration loading, merging, and validation
// facilities for the audit sync client.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence over later ones for every non-zero field:
//  1. Command-line flags
//  2. Environment variables (prefixed with [EnvPrefix])
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
