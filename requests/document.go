package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
	"github.com/theoremus-urban-solutions/transit-catalogue/mapview"
	"github.com/theoremus-urban-solutions/transit-catalogue/routing"
)

// Request types
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// ErrInvalidDocument is returned for documents that cannot be loaded
var ErrInvalidDocument = errors.New("invalid request document")

// Document is the parsed input document
type Document struct {
	BaseRequests []BaseRequest `json:"base_requests"`
	Routing      *RoutingJSON  `json:"routing_settings,omitempty"`
	Render       *RenderJSON   `json:"render_settings,omitempty"`
	StatRequests []StatRequest `json:"stat_requests"`
}

// BaseRequest defines a stop or a bus
type BaseRequest struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Latitude      float64        `json:"latitude,omitempty"`
	Longitude     float64        `json:"longitude,omitempty"`
	RoadDistances map[string]int `json:"road_distances,omitempty"`
	Stops         []string       `json:"stops,omitempty"`
	IsRoundtrip   bool           `json:"is_roundtrip,omitempty"`
}

// StatRequest is a query against the loaded catalogue
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// RoutingJSON is the routing_settings section
type RoutingJSON struct {
	BusWaitTime int     `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// RenderJSON is the render_settings section
type RenderJSON struct {
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	Padding           float64    `json:"padding"`
	LineWidth         float64    `json:"line_width"`
	StopRadius        float64    `json:"stop_radius"`
	BusLabelFontSize  uint32     `json:"bus_label_font_size"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset"`
	StopLabelFontSize uint32     `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`
	UnderlayerColor   Color      `json:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width"`
	ColorPalette      []Color    `json:"color_palette"`
}

// Color is an SVG color given as a name, [r,g,b] or [r,g,b,a].
// Arrays of any other length decode to "none".
type Color string

// UnmarshalJSON implements json.Unmarshaler
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Color(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color must be a string or an array: %w", err)
	}
	*c = formatter.NoneColor
	if (len(parts) != 3 && len(parts) != 4) || !validChannels(parts[:3]) {
		return nil
	}
	if len(parts) == 3 {
		*c = Color(formatter.RGB(uint8(parts[0]), uint8(parts[1]), uint8(parts[2])))
	} else if parts[3] >= 0 && parts[3] <= 1 {
		*c = Color(formatter.RGBA(uint8(parts[0]), uint8(parts[1]), uint8(parts[2]), parts[3]))
	}
	return nil
}

func validChannels(rgb []float64) bool {
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// ReadDocument decodes a request document
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// LoadCatalogue applies the base requests to a new catalogue: stops first,
// then road distances, then buses.
func (d *Document) LoadCatalogue(opts ...catalogue.Option) (*catalogue.Catalogue, error) {
	b := catalogue.NewBuilder(opts...)

	for _, req := range d.BaseRequests {
		if req.Type != TypeStop {
			continue
		}
		coords := geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}
		if _, err := b.AddStop(req.Name, coords); err != nil {
			return nil, err
		}
	}

	for _, req := range d.BaseRequests {
		if req.Type != TypeStop {
			continue
		}
		for to, meters := range req.RoadDistances {
			err := b.SetDistance(req.Name, to, meters)
			if errors.Is(err, catalogue.ErrUnknownStop) {
				log.Printf("requests: distance %q -> %q skipped: unknown stop", req.Name, to)
				continue
			}
			if err != nil {
				return nil, err
			}
		}
	}

	for _, req := range d.BaseRequests {
		switch req.Type {
		case TypeStop:
		case TypeBus:
			if err := b.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
				return nil, err
			}
		default:
			log.Printf("requests: base request of unknown type %q ignored", req.Type)
		}
	}

	return b.Build(), nil
}

// RoutingSettings returns the routing_settings section. ok is false when the
// document has none.
func (d *Document) RoutingSettings() (routing.Settings, bool) {
	if d.Routing == nil {
		return routing.Settings{}, false
	}
	return routing.Settings{
		BusWaitTime: d.Routing.BusWaitTime,
		BusVelocity: d.Routing.BusVelocity,
	}, true
}

// RenderSettings returns the render_settings section. ok is false when the
// document has none.
func (d *Document) RenderSettings() (mapview.Settings, bool) {
	if d.Render == nil {
		return mapview.Settings{}, false
	}
	r := d.Render
	palette := make([]string, len(r.ColorPalette))
	for i, c := range r.ColorPalette {
		palette[i] = string(c)
	}
	return mapview.Settings{
		Width:             r.Width,
		Height:            r.Height,
		Padding:           r.Padding,
		LineWidth:         r.LineWidth,
		StopRadius:        r.StopRadius,
		BusLabelFontSize:  r.BusLabelFontSize,
		BusLabelOffset:    formatter.Point{X: r.BusLabelOffset[0], Y: r.BusLabelOffset[1]},
		StopLabelFontSize: r.StopLabelFontSize,
		StopLabelOffset:   formatter.Point{X: r.StopLabelOffset[0], Y: r.StopLabelOffset[1]},
		UnderlayerColor:   string(r.UnderlayerColor),
		UnderlayerWidth:   r.UnderlayerWidth,
		ColorPalette:      palette,
	}, true
}
