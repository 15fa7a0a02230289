// Package geo provides geographic coordinates and great-circle distance.
//
// Distances are computed with the haversine formula on a sphere of radius
// EarthRadiusM. The result is symmetric and zero for identical points.
package geo
