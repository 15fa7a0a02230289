// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Variables from .env and .env.local are loaded first; TRANSIT_CONFIG
// replaces the config file search list and PORT overrides server.port.
package config
