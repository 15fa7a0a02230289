package gtfs

import (
	"bytes"
	"math"
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Index stores the parts of a GTFS static feed needed to build a catalogue
type Index struct {
	routeShortNames map[string]string          // route_id -> short_name
	tripToRoute     map[string]string          // trip_id -> route_id
	stopOrder       []string                   // stop_ids in file order
	stopNames       map[string]string          // stop_id -> name
	stopCoord       map[string]geo.Coordinates // stop_id -> coordinates
	tripStopSeq     map[string][]string        // trip_id -> ordered stop_ids
	tripShapeDist   map[string][]float64       // trip_id -> shape_dist_traveled per stop, NaN if absent
}

// NewIndex creates a new empty index
func NewIndex() *Index {
	return &Index{
		routeShortNames: map[string]string{},
		tripToRoute:     map[string]string{},
		stopNames:       map[string]string{},
		stopCoord:       map[string]geo.Coordinates{},
		tripStopSeq:     map[string][]string{},
		tripShapeDist:   map[string][]float64{},
	}
}

// NewIndexFromBytes parses a zipped feed held in memory
func NewIndexFromBytes(data []byte) (*Index, error) {
	return NewIndexFromReader(bytes.NewReader(data), int64(len(data)))
}

// Accessor methods

// StopIDs returns the stop ids in file order
func (g *Index) StopIDs() []string { return g.stopOrder }

func (g *Index) GetStopName(stopID string) string { return g.stopNames[stopID] }

func (g *Index) GetStopCoordinates(stopID string) (geo.Coordinates, bool) {
	c, ok := g.stopCoord[stopID]
	return c, ok
}

func (g *Index) GetRouteShortName(routeID string) string { return g.routeShortNames[routeID] }

func (g *Index) GetRouteIDForTrip(tripID string) string { return g.tripToRoute[tripID] }

func (g *Index) GetStopSequenceForTrip(tripID string) []string { return g.tripStopSeq[tripID] }

// GetBusNameForTrip returns the route_short_name of the trip's route, or the
// route_id when the short name is empty
func (g *Index) GetBusNameForTrip(tripID string) string {
	routeID := g.tripToRoute[tripID]
	if name := g.routeShortNames[routeID]; name != "" {
		return name
	}
	return routeID
}

// GetTrips returns all trip ids with a stop sequence, sorted
func (g *Index) GetTrips() []string {
	out := make([]string, 0, len(g.tripStopSeq))
	for id := range g.tripStopSeq {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// GetShapeDistancesForTrip returns road distances in meters between
// consecutive stops of a trip. An entry is NaN where the feed has no
// shape_dist_traveled for either end or the value does not increase.
func (g *Index) GetShapeDistancesForTrip(tripID string) []float64 {
	seq := g.tripStopSeq[tripID]
	dist := g.tripShapeDist[tripID]
	if len(seq) < 2 || len(dist) != len(seq) {
		return nil
	}
	out := make([]float64, len(seq)-1)
	road, straight := 0.0, 0.0
	for i := 1; i < len(seq); i++ {
		d := dist[i] - dist[i-1]
		if math.IsNaN(d) || d <= 0 {
			out[i-1] = math.NaN()
			continue
		}
		out[i-1] = d
		road += d
		a, okA := g.stopCoord[seq[i-1]]
		b, okB := g.stopCoord[seq[i]]
		if okA && okB {
			straight += geo.Distance(a, b)
		}
	}
	// shape_dist_traveled has no fixed unit; kilometers are two orders of
	// magnitude below the straight-line meters
	if road > 0 && straight > 0 && road*kmDetectionRatio < straight {
		for i := range out {
			out[i] *= 1000
		}
	}
	return out
}

const kmDetectionRatio = 100
