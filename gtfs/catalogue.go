package gtfs

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
)

var (
	// ErrMissingFile is returned when the feed lacks a required file
	ErrMissingFile = errors.New("gtfs: required file missing")
	// ErrMissingColumn is returned when a required CSV column is absent
	ErrMissingColumn = errors.New("gtfs: required column missing")
)

// LoadCatalogueFromZip builds a catalogue from a local GTFS zip file
func LoadCatalogueFromZip(filename string, opts ...catalogue.Option) (*catalogue.Catalogue, error) {
	g, err := NewIndexFromFile(filename)
	if err != nil {
		return nil, err
	}
	return g.BuildCatalogue(opts...)
}

// LoadCatalogueFromReader builds a catalogue from a zipped feed
func LoadCatalogueFromReader(r io.ReaderAt, size int64, opts ...catalogue.Option) (*catalogue.Catalogue, error) {
	g, err := NewIndexFromReader(r, size)
	if err != nil {
		return nil, err
	}
	return g.BuildCatalogue(opts...)
}

// BuildCatalogue converts the index into a catalogue
func (g *Index) BuildCatalogue(opts ...catalogue.Option) (*catalogue.Catalogue, error) {
	b := catalogue.NewBuilder(opts...)

	names := g.uniqueStopNames()
	for _, id := range g.stopOrder {
		if _, err := b.AddStop(names[id], g.stopCoord[id]); err != nil {
			return nil, fmt.Errorf("stop %q: %w", id, err)
		}
	}

	longest := g.longestTripPerBus()
	busNames := make([]string, 0, len(longest))
	for name := range longest {
		busNames = append(busNames, name)
	}
	sort.Strings(busNames)

	for _, busName := range busNames {
		trip := longest[busName]
		seq := g.tripStopSeq[trip]

		dists := g.GetShapeDistancesForTrip(trip)
		for i, d := range dists {
			from, okFrom := names[seq[i]]
			to, okTo := names[seq[i+1]]
			if math.IsNaN(d) || !okFrom || !okTo || seq[i] == seq[i+1] {
				continue
			}
			if err := b.SetDistance(from, to, int(math.Round(d))); err != nil {
				return nil, err
			}
		}

		stops := make([]string, 0, len(seq))
		for _, id := range seq {
			name, ok := names[id]
			if !ok {
				// AddBus reports or drops unknown stops
				name = id
			}
			stops = append(stops, name)
		}
		roundtrip := len(seq) > 1 && seq[0] == seq[len(seq)-1]
		if err := b.AddBus(busName, stops, roundtrip); err != nil {
			return nil, fmt.Errorf("trip %q: %w", trip, err)
		}
	}

	cat := b.Build()
	log.Printf("gtfs: loaded %d stops and %d buses", cat.StopCount(), len(busNames))
	return cat, nil
}

// uniqueStopNames maps stop ids to catalogue names. The first stop keeps a
// shared name, later ones get their stop_id appended, plus a counter if that
// is taken too.
func (g *Index) uniqueStopNames() map[string]string {
	out := make(map[string]string, len(g.stopOrder))
	seen := make(map[string]struct{}, len(g.stopOrder))
	for _, id := range g.stopOrder {
		name := g.stopNames[id]
		if name == "" {
			name = id
		}
		base := name
		for n := 1; ; n++ {
			if _, dup := seen[name]; !dup {
				break
			}
			if n == 1 {
				name = fmt.Sprintf("%s (%s)", base, id)
			} else {
				name = fmt.Sprintf("%s (%s %d)", base, id, n)
			}
		}
		seen[name] = struct{}{}
		out[id] = name
	}
	return out
}

// longestTripPerBus picks the trip with the most stops for every bus name.
// Ties go to the smallest trip_id.
func (g *Index) longestTripPerBus() map[string]string {
	out := map[string]string{}
	for _, trip := range g.GetTrips() {
		if len(g.tripStopSeq[trip]) == 0 {
			continue
		}
		name := g.GetBusNameForTrip(trip)
		if name == "" {
			name = trip
		}
		best, ok := out[name]
		if !ok || len(g.tripStopSeq[trip]) > len(g.tripStopSeq[best]) {
			out[name] = trip
		}
	}
	return out
}
