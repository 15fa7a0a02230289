/*
Package catalogue is the indexed in-memory store of stops, buses and road
distances, plus per-bus aggregate statistics.

Loading and querying are separate types. A Builder accepts stops, distances
and buses in that order, and Build freezes it into a Catalogue that is never
mutated again:

	b := catalogue.NewBuilder()
	b.AddStop("A", geo.Coordinates{Lat: 55.61, Lng: 37.20})
	b.AddStop("B", geo.Coordinates{Lat: 55.59, Lng: 37.21})
	b.SetDistance("A", "B", 1000)
	b.AddBus("1", []string{"A", "B"}, false)
	cat := b.Build()

	info, ok := cat.GetBusInfo("1")

# Unknown stops in bus definitions

By default AddBus drops stop names that were never registered and logs
them. Pass WithStrictStops to NewBuilder to reject such buses with
ErrUnknownStop instead.

# Distances

Road distances are directed. GetDistance resolves (from,to), then (to,from),
then falls back to the great-circle distance truncated to whole meters.

# Thread Safety

A Builder is not safe for concurrent use. A Catalogue is read-only and safe
for concurrent readers.
*/
package catalogue
