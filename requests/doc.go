/*
Package requests reads the JSON request document and answers its stat
requests.

The document has four top-level keys:

	{
	  "base_requests":    [ Stop and Bus definitions ],
	  "routing_settings": { "bus_wait_time": 6, "bus_velocity": 40 },
	  "render_settings":  { map appearance },
	  "stat_requests":    [ Bus, Stop, Route and Map queries ]
	}

Base requests are applied in three passes: all stops, then all road
distances, then all buses. Road distances to unknown stops are skipped.
Missing settings sections are reported so callers can fall back to the
application config.

	doc, err := requests.ReadDocument(os.Stdin)
	cat, err := doc.LoadCatalogue()
	settings, _ := doc.RoutingSettings()
	router, err := routing.NewRouter(cat, settings)
	render, _ := doc.RenderSettings()
	h := requests.NewHandler(cat, router, mapview.NewRenderer(render))
	out, err := formatter.NewResponseBuilder("  ").BuildJSON(h.Process(doc.StatRequests))
*/
package requests
