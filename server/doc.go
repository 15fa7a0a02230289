/*
Package server exposes a loaded catalogue over HTTP.

Endpoints:

	GET /health                  liveness and catalogue size
	GET /api/buses/{name}        bus statistics
	GET /api/stops/{name}        buses serving a stop
	GET /api/route?from=&to=     fastest itinerary
	GET /api/map.svg             network map
	GET /metrics                 Prometheus metrics

Unknown buses, stops and unreachable routes answer 404 with
{"error":"not found"}. Every response carries an X-Request-ID header; a
client-supplied id is echoed back.

Route answers are kept in an LRU cache keyed by the stop pair. The catalogue
and router are immutable, so cached answers never go stale; the optional TTL
only bounds memory held by rarely used pairs.
*/
package server
