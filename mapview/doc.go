// Package mapview renders the bus network as an SVG map.
//
// Stops are projected from the sphere onto a flat canvas by a SphereProjector
// that fits all served stops inside the padded canvas. The map is drawn in four
// layers: route lines, route labels, stop circles, stop labels.
package mapview
