package catalogue

import "github.com/theoremus-urban-solutions/transit-catalogue/geo"

// StopID is the insertion index of a stop
type StopID int

// Stop is a named point of service
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named line over an ordered list of stops.
// Stops holds the sequence as given; a linear bus also runs it in reverse.
type Bus struct {
	Name        string
	Stops       []StopID
	IsRoundtrip bool
}

// BusInfo holds aggregate statistics for one bus
type BusInfo struct {
	StopsCount       int
	UniqueStopsCount int
	RouteLength      int     // meters along roads
	Curvature        float64 // RouteLength / straight-line length
}

type stopPair struct {
	from, to StopID
}
