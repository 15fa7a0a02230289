// Package formatter serializes query results.
//
// This package is organized into:
// - json.go: JSON serialization of stat responses
// - svg.go: SVG document model and serialization with proper escaping
//
// SVG output is written by hand for precise control over attribute order
// and number formatting.
package formatter
