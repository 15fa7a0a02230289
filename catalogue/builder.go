package catalogue

import (
	"fmt"
	"log"
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Option configures a Builder
type Option func(*Builder)

// WithStrictStops makes AddBus fail with ErrUnknownStop instead of dropping
// unregistered stop names
func WithStrictStops() Option {
	return func(b *Builder) { b.strictStops = true }
}

// Builder collects stops, distances and buses during the load phase
type Builder struct {
	strictStops bool
	frozen      bool
	built       *Catalogue

	stops      []Stop
	buses      []Bus
	stopByName map[string]StopID
	busByName  map[string]int
	stopBuses  []map[string]struct{} // StopID -> bus names
	distances  map[stopPair]int
}

// NewBuilder creates an empty Builder
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		stopByName: map[string]StopID{},
		busByName:  map[string]int{},
		distances:  map[stopPair]int{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddStop registers a stop and returns its id
func (b *Builder) AddStop(name string, coords geo.Coordinates) (StopID, error) {
	if b.frozen {
		return 0, ErrFrozen
	}
	if _, ok := b.stopByName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateStop, name)
	}
	id := StopID(len(b.stops))
	b.stops = append(b.stops, Stop{ID: id, Name: name, Coordinates: coords})
	b.stopByName[name] = id
	b.stopBuses = append(b.stopBuses, map[string]struct{}{})
	return id, nil
}

// SetDistance stores the road distance from one stop to another in meters.
// A later call for the same ordered pair replaces the earlier value.
func (b *Builder) SetDistance(from, to string, meters int) error {
	if b.frozen {
		return ErrFrozen
	}
	fromID, ok := b.stopByName[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := b.stopByName[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}
	b.distances[stopPair{fromID, toID}] = meters
	return nil
}

// AddBus registers a bus over the named stops. All stops must have been
// added before the bus.
func (b *Builder) AddBus(name string, stops []string, isRoundtrip bool) error {
	if b.frozen {
		return ErrFrozen
	}
	if _, ok := b.busByName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBus, name)
	}
	ids := make([]StopID, 0, len(stops))
	for _, s := range stops {
		id, ok := b.stopByName[s]
		if !ok {
			if b.strictStops {
				return fmt.Errorf("bus %q: %w: %q", name, ErrUnknownStop, s)
			}
			log.Printf("catalogue: bus %q references unknown stop %q, dropped", name, s)
			continue
		}
		ids = append(ids, id)
	}
	b.busByName[name] = len(b.buses)
	b.buses = append(b.buses, Bus{Name: name, Stops: ids, IsRoundtrip: isRoundtrip})
	for _, id := range ids {
		b.stopBuses[id][name] = struct{}{}
	}
	return nil
}

// Build freezes the builder into a read-only Catalogue. The builder rejects
// further changes with ErrFrozen; later Build calls return the same Catalogue.
func (b *Builder) Build() *Catalogue {
	if b.frozen {
		return b.built
	}
	b.frozen = true
	stopBuses := make([][]string, len(b.stopBuses))
	for id, set := range b.stopBuses {
		names := make([]string, 0, len(set))
		for n := range set {
			names = append(names, n)
		}
		sort.Strings(names)
		stopBuses[id] = names
	}
	c := &Catalogue{
		stops:      b.stops,
		buses:      b.buses,
		stopByName: b.stopByName,
		busByName:  b.busByName,
		stopBuses:  stopBuses,
		distances:  b.distances,
	}
	b.stops, b.buses, b.stopBuses = nil, nil, nil
	b.stopByName, b.busByName, b.distances = nil, nil, nil
	b.built = c
	return c
}
