package routing

import "errors"

// ErrInvalidSettings is returned by NewRouter for unusable settings
var ErrInvalidSettings = errors.New("invalid routing settings")

// Settings are the routing parameters
type Settings struct {
	BusWaitTime int     // minutes
	BusVelocity float64 // km/h
}

// ItemKind tells wait segments from ride segments
type ItemKind string

const (
	ItemWait ItemKind = "Wait"
	ItemBus  ItemKind = "Bus"
)

// Item is one itinerary segment. StopName is set for Wait items, BusName and
// SpanCount for Bus items.
type Item struct {
	Kind      ItemKind
	StopName  string
	BusName   string
	SpanCount int
	Time      float64 // minutes
}

// RouteResult is a complete itinerary
type RouteResult struct {
	TotalTime float64
	Items     []Item
}

// edgeInfo is recorded for every graph edge at build time.
// busName is empty for wait edges.
type edgeInfo struct {
	busName   string
	spanCount int
	realTime  float64
}
