package requests

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
	"github.com/theoremus-urban-solutions/transit-catalogue/mapview"
	"github.com/theoremus-urban-solutions/transit-catalogue/routing"
)

const sampleDocument = `{
  "base_requests": [
    {"type": "Bus", "name": "1", "stops": ["A", "B", "C"], "is_roundtrip": false},
    {"type": "Bus", "name": "2", "stops": ["A", "Nowhere", "B"], "is_roundtrip": false},
    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2,
     "road_distances": {"B": 1000, "Ghost": 500}},
    {"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.2,
     "road_distances": {"C": 1100}},
    {"type": "Stop", "name": "C", "latitude": 55.62, "longitude": 37.2},
    {"type": "Stop", "name": "D", "latitude": 55.63, "longitude": 37.2}
  ],
  "routing_settings": {"bus_wait_time": 5, "bus_velocity": 30},
  "render_settings": {
    "width": 200, "height": 200, "padding": 50,
    "line_width": 14, "stop_radius": 5,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 18, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0], "red"]
  },
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "1"},
    {"id": 2, "type": "Bus", "name": "99"},
    {"id": 3, "type": "Stop", "name": "B"},
    {"id": 4, "type": "Stop", "name": "D"},
    {"id": 5, "type": "Stop", "name": "Z"},
    {"id": 6, "type": "Route", "from": "A", "to": "C"},
    {"id": 7, "type": "Route", "from": "A", "to": "A"},
    {"id": 8, "type": "Route", "from": "A", "to": "D"},
    {"id": 9, "type": "Map"},
    {"id": 10, "type": "Teleport"}
  ]
}`

func loadSample(t *testing.T) (*Document, *Handler) {
	t.Helper()
	doc, err := ReadDocument(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	cat, err := doc.LoadCatalogue()
	require.NoError(t, err)

	settings, ok := doc.RoutingSettings()
	require.True(t, ok)
	router, err := routing.NewRouter(cat, settings)
	require.NoError(t, err)

	render, ok := doc.RenderSettings()
	require.True(t, ok)
	return doc, NewHandler(cat, router, mapview.NewRenderer(render))
}

func TestReadDocument_Invalid(t *testing.T) {
	_, err := ReadDocument(strings.NewReader(`{"base_requests": [`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestDocument_LoadCatalogue(t *testing.T) {
	doc, h := loadSample(t)
	cat := h.Catalogue()

	assert.Equal(t, 4, cat.StopCount())
	a, _ := cat.FindStop("A")
	b, _ := cat.FindStop("B")
	c, _ := cat.FindStop("C")
	assert.Equal(t, 1000, cat.GetDistance(a.ID, b.ID))
	assert.Equal(t, 1100, cat.GetDistance(c.ID, b.ID))

	bus, ok := cat.FindBus("2")
	require.True(t, ok)
	assert.Equal(t, []catalogue.StopID{a.ID, b.ID}, bus.Stops, "unknown stop is dropped")

	_, err := doc.LoadCatalogue(catalogue.WithStrictStops())
	assert.ErrorIs(t, err, catalogue.ErrUnknownStop)
}

func TestDocument_LoadCatalogueDuplicateStop(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`{"base_requests": [
		{"type": "Stop", "name": "A", "latitude": 1, "longitude": 1},
		{"type": "Stop", "name": "A", "latitude": 2, "longitude": 2}
	]}`))
	require.NoError(t, err)
	_, err = doc.LoadCatalogue()
	assert.ErrorIs(t, err, catalogue.ErrDuplicateStop)
}

func TestDocument_MissingSettings(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`{"base_requests": []}`))
	require.NoError(t, err)

	_, ok := doc.RoutingSettings()
	assert.False(t, ok)
	_, ok = doc.RenderSettings()
	assert.False(t, ok)
}

func TestDocument_RenderSettings(t *testing.T) {
	doc, _ := loadSample(t)
	s, ok := doc.RenderSettings()
	require.True(t, ok)

	assert.Equal(t, "rgba(255,255,255,0.85)", s.UnderlayerColor)
	assert.Equal(t, []string{"green", "rgb(255,160,0)", "red"}, s.ColorPalette)
	assert.Equal(t, formatter.Point{X: 7, Y: 15}, s.BusLabelOffset)
	assert.Equal(t, uint32(18), s.StopLabelFontSize)
}

func TestColor_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		wantErr  bool
	}{
		{`"white"`, "white", false},
		{`[1, 2, 3]`, "rgb(1,2,3)", false},
		{`[1, 2, 3, 0.5]`, "rgba(1,2,3,0.5)", false},
		{`[1, 2]`, "none", false},
		{`[300, 2, 3]`, "none", false},
		{`[-1, 2, 3, 0.5]`, "none", false},
		{`[1, 2, 3, 1.5]`, "none", false},
		{`[255, 0, 255]`, "rgb(255,0,255)", false},
		{`{"r": 1}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var c Color
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestHandler_Process(t *testing.T) {
	doc, h := loadSample(t)
	responses := h.Process(doc.StatRequests)
	require.Len(t, responses, len(doc.StatRequests))
	for i, r := range responses {
		assert.Equal(t, doc.StatRequests[i].ID, r.ID())
	}

	bus, ok := responses[0].(BusResponse)
	require.True(t, ok)
	assert.Equal(t, 5, bus.StopCount)
	assert.Equal(t, 3, bus.UniqueStopCount)
	assert.Equal(t, 4200, bus.RouteLength)
	straight := 4 * geo.Distance(geo.Coordinates{Lat: 55.6, Lng: 37.2}, geo.Coordinates{Lat: 55.61, Lng: 37.2})
	assert.InDelta(t, 4200/straight, bus.Curvature, 1e-6)

	assert.Equal(t, ErrorResponse{Header: Header{RequestID: 2}, ErrorMessage: "not found"}, responses[1])
	assert.Equal(t, StopResponse{Header: Header{RequestID: 3}, Buses: []string{"1", "2"}}, responses[2])
	assert.Equal(t, StopResponse{Header: Header{RequestID: 4}, Buses: []string{}}, responses[3])
	assert.Equal(t, ErrorResponse{Header: Header{RequestID: 5}, ErrorMessage: "not found"}, responses[4])

	route, ok := responses[5].(RouteResponse)
	require.True(t, ok)
	assert.InDelta(t, 9.2, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, RouteItem{Type: "Wait", StopName: "A", Time: 5}, route.Items[0])
	assert.Equal(t, "Bus", route.Items[1].Type)
	assert.Equal(t, "1", route.Items[1].Bus)
	assert.Equal(t, 2, route.Items[1].SpanCount)

	assert.Equal(t, RouteResponse{Header: Header{RequestID: 7}, Items: []RouteItem{}}, responses[6])
	assert.Equal(t, ErrorResponse{Header: Header{RequestID: 8}, ErrorMessage: "not found"}, responses[7])

	m, ok := responses[8].(MapResponse)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(m.Map, `<?xml version="1.0" encoding="UTF-8" ?>`))
	assert.Contains(t, m.Map, ">B</text>")
	assert.NotContains(t, m.Map, ">D</text>")

	assert.Equal(t, ErrorResponse{Header: Header{RequestID: 10}, ErrorMessage: "unknown request type"}, responses[9])
}

func TestHandler_OutputJSON(t *testing.T) {
	doc, h := loadSample(t)
	out, err := formatter.NewResponseBuilder("  ").BuildJSON(h.Process(doc.StatRequests))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 10)

	assert.Equal(t, float64(1), decoded[0]["request_id"])
	assert.Equal(t, float64(5), decoded[0]["stop_count"])
	assert.Equal(t, "not found", decoded[1]["error_message"])
	assert.Equal(t, []any{}, decoded[3]["buses"])

	items := decoded[5]["items"].([]any)
	wait := items[0].(map[string]any)
	assert.Equal(t, map[string]any{"type": "Wait", "stop_name": "A", "time": float64(5)}, wait)
	ride := items[1].(map[string]any)
	assert.Equal(t, "1", ride["bus"])
	assert.Equal(t, float64(2), ride["span_count"])
	assert.NotContains(t, ride, "stop_name")

	assert.Equal(t, []any{}, decoded[6]["items"])
	assert.Contains(t, decoded[8]["map"], "<svg")
}

func TestHandler_WithoutRouterOrRenderer(t *testing.T) {
	_, h := loadSample(t)
	bare := NewHandler(h.Catalogue(), nil, nil)

	r := bare.Answer(StatRequest{ID: 1, Type: TypeRoute, From: "A", To: "C"})
	assert.Equal(t, ErrorResponse{Header: Header{RequestID: 1}, ErrorMessage: "not found"}, r)

	m := bare.Answer(StatRequest{ID: 2, Type: TypeMap})
	assert.Equal(t, (&formatter.Document{}).String(), m.(MapResponse).Map)
}
