package mapview

import (
	"math"

	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// SphereProjector maps coordinates onto a padded canvas, north up
type SphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewSphereProjector fits points into a width x height canvas
func NewSphereProjector(points []geo.Coordinates, width, height, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}
	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, c := range points[1:] {
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidth := !isZero(maxLng - minLng)
	hasHeight := !isZero(maxLat - minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

// Project converts coordinates to a canvas point
func (p SphereProjector) Project(c geo.Coordinates) formatter.Point {
	return formatter.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
