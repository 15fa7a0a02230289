/*
Package gtfs builds a transit catalogue from a GTFS static feed.

The feed is read from a zip archive, either a local file or any io.ReaderAt.
Only the files needed for the network are consumed: routes.txt, trips.txt,
stops.txt and stop_times.txt.

# Basic Usage

	cat, err := gtfs.LoadCatalogueFromZip("feed.zip")
	if err != nil {
	    log.Fatal(err)
	}
	info, ok := cat.GetBusInfo("14")

Load from io.ReaderAt:

	file, _ := os.Open("feed.zip")
	defer file.Close()
	stat, _ := file.Stat()
	cat, err := gtfs.LoadCatalogueFromReader(file, stat.Size())

# Mapping

  - Every stop of stops.txt with location_type 0 (or empty) becomes a stop named
    after stop_name. A repeated name gets " (<stop_id>)" appended.
  - Trips are grouped by route_short_name, falling back to route_id. Each group
    becomes one bus running the stop sequence of its longest trip. The bus is
    a roundtrip when that trip starts and ends at the same stop.
  - Consecutive shape_dist_traveled values of the chosen trip become road
    distances. Feeds that measure in kilometers are detected and scaled to
    meters. Without shape_dist_traveled the catalogue falls back to
    great-circle distances.

# Performance

Parse the feed once at startup and keep the catalogue in memory. Parsing a
large feed takes seconds; catalogue queries take microseconds.
*/
package gtfs
