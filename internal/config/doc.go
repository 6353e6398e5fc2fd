// Package config provides configuration loading, merging, and validation
// facilities for the decryption client and service.
//
// Configuration is assembled from the following sources. Sources listed
// earlier take precedence: a later source only fills fields that are still
// zero.
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the decryption service.
package config
