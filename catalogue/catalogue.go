package catalogue

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Catalogue is the frozen, queryable snapshot produced by Builder.Build
type Catalogue struct {
	stops      []Stop
	buses      []Bus
	stopByName map[string]StopID
	busByName  map[string]int
	stopBuses  [][]string // StopID -> sorted bus names
	distances  map[stopPair]int
}

// FindStop looks a stop up by exact name
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return nil, false
	}
	return &c.stops[id], true
}

// FindBus looks a bus up by exact name
func (c *Catalogue) FindBus(name string) (*Bus, bool) {
	i, ok := c.busByName[name]
	if !ok {
		return nil, false
	}
	return &c.buses[i], true
}

// Stop returns the stop with the given id
func (c *Catalogue) Stop(id StopID) *Stop { return &c.stops[id] }

// StopCount returns the number of registered stops
func (c *Catalogue) StopCount() int { return len(c.stops) }

// Stops returns all stops in insertion order
func (c *Catalogue) Stops() []*Stop {
	out := make([]*Stop, len(c.stops))
	for i := range c.stops {
		out[i] = &c.stops[i]
	}
	return out
}

// Buses returns all buses in insertion order
func (c *Catalogue) Buses() []*Bus {
	out := make([]*Bus, len(c.buses))
	for i := range c.buses {
		out[i] = &c.buses[i]
	}
	return out
}

// SortedBuses returns the buses with at least one stop, sorted by name
func (c *Catalogue) SortedBuses() []*Bus {
	out := make([]*Bus, 0, len(c.buses))
	for i := range c.buses {
		if len(c.buses[i].Stops) > 0 {
			out = append(out, &c.buses[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ServedStops returns the stops visited by at least one bus, sorted by name
func (c *Catalogue) ServedStops() []*Stop {
	out := make([]*Stop, 0, len(c.stops))
	for i := range c.stops {
		if len(c.stopBuses[i]) > 0 {
			out = append(out, &c.stops[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetBusesForStop returns the sorted names of buses serving a stop.
// The slice is empty, not nil, for a known stop without service; ok is
// false only when the stop is unknown.
func (c *Catalogue) GetBusesForStop(name string) ([]string, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(c.stopBuses[id]))
	copy(out, c.stopBuses[id])
	return out, true
}

// GetDistance returns the road distance in meters from one stop to another.
// Missing entries fall back to the reverse direction, then to the
// great-circle distance.
func (c *Catalogue) GetDistance(from, to StopID) int {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d
	}
	return int(geo.Distance(c.stops[from].Coordinates, c.stops[to].Coordinates))
}

// GetBusInfo computes statistics for a bus. ok is false for an unknown bus
// or a bus without stops.
func (c *Catalogue) GetBusInfo(name string) (BusInfo, bool) {
	bus, ok := c.FindBus(name)
	if !ok || len(bus.Stops) == 0 {
		return BusInfo{}, false
	}
	stops := bus.Stops

	info := BusInfo{StopsCount: len(stops)}
	if !bus.IsRoundtrip {
		info.StopsCount = 2*len(stops) - 1
	}

	unique := make(map[StopID]struct{}, len(stops))
	for _, id := range stops {
		unique[id] = struct{}{}
	}
	info.UniqueStopsCount = len(unique)

	road := 0
	straight := 0.0
	for i := 1; i < len(stops); i++ {
		road += c.GetDistance(stops[i-1], stops[i])
		straight += geo.Distance(c.stops[stops[i-1]].Coordinates, c.stops[stops[i]].Coordinates)
	}
	if !bus.IsRoundtrip {
		for i := len(stops) - 1; i > 0; i-- {
			road += c.GetDistance(stops[i], stops[i-1])
		}
		// same coordinates on the way back
		straight *= 2
	}

	info.RouteLength = road
	if straight > 0 {
		info.Curvature = float64(road) / straight
	}
	return info, true
}
