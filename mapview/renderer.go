package mapview

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

const fontFamily = "Verdana"

// Settings control the map appearance
type Settings struct {
	Width             float64
	Height            float64
	Padding           float64
	LineWidth         float64
	StopRadius        float64
	BusLabelFontSize  uint32
	BusLabelOffset    formatter.Point
	StopLabelFontSize uint32
	StopLabelOffset   formatter.Point
	UnderlayerColor   string
	UnderlayerWidth   float64
	ColorPalette      []string
}

// SettingsFromConfig converts the render section of the application config
func SettingsFromConfig(cfg config.RenderConfig) Settings {
	return Settings{
		Width:             cfg.Width,
		Height:            cfg.Height,
		Padding:           cfg.Padding,
		LineWidth:         cfg.LineWidth,
		StopRadius:        cfg.StopRadius,
		BusLabelFontSize:  uint32(cfg.BusLabelFontSize),
		BusLabelOffset:    formatter.Point{X: cfg.BusLabelOffset[0], Y: cfg.BusLabelOffset[1]},
		StopLabelFontSize: uint32(cfg.StopLabelFontSize),
		StopLabelOffset:   formatter.Point{X: cfg.StopLabelOffset[0], Y: cfg.StopLabelOffset[1]},
		UnderlayerColor:   cfg.UnderlayerColor,
		UnderlayerWidth:   cfg.UnderlayerWidth,
		ColorPalette:      cfg.ColorPalette,
	}
}

// Renderer draws catalogues with fixed settings
type Renderer struct {
	settings Settings
}

// NewRenderer creates a renderer
func NewRenderer(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// Settings returns the renderer settings
func (r *Renderer) Settings() Settings { return r.settings }

// Render draws every bus with stops and every served stop of cat
func (r *Renderer) Render(cat *catalogue.Catalogue) *formatter.Document {
	doc := &formatter.Document{}
	buses := cat.SortedBuses()
	stops := cat.ServedStops()
	if len(stops) == 0 {
		return doc
	}

	coords := make([]geo.Coordinates, len(stops))
	for i, s := range stops {
		coords[i] = s.Coordinates
	}
	proj := NewSphereProjector(coords, r.settings.Width, r.settings.Height, r.settings.Padding)

	r.renderBusLines(doc, cat, buses, proj)
	r.renderBusLabels(doc, cat, buses, proj)
	r.renderStopPoints(doc, stops, proj)
	r.renderStopLabels(doc, stops, proj)
	return doc
}

func (r *Renderer) paletteColor(i int) string {
	if len(r.settings.ColorPalette) == 0 {
		return "black"
	}
	return r.settings.ColorPalette[i%len(r.settings.ColorPalette)]
}

func (r *Renderer) renderBusLines(doc *formatter.Document, cat *catalogue.Catalogue, buses []*catalogue.Bus, proj SphereProjector) {
	for i, bus := range buses {
		points := make([]formatter.Point, 0, 2*len(bus.Stops))
		for _, id := range bus.Stops {
			points = append(points, proj.Project(cat.Stop(id).Coordinates))
		}
		if !bus.IsRoundtrip {
			for j := len(bus.Stops) - 2; j >= 0; j-- {
				points = append(points, proj.Project(cat.Stop(bus.Stops[j]).Coordinates))
			}
		}
		doc.Add(formatter.Polyline{
			Points: points,
			PathProps: formatter.PathProps{
				Fill:           formatter.NoneColor,
				Stroke:         r.paletteColor(i),
				StrokeWidth:    r.settings.LineWidth,
				StrokeLineCap:  "round",
				StrokeLineJoin: "round",
			},
		})
	}
}

func (r *Renderer) renderBusLabels(doc *formatter.Document, cat *catalogue.Catalogue, buses []*catalogue.Bus, proj SphereProjector) {
	for i, bus := range buses {
		color := r.paletteColor(i)
		first := bus.Stops[0]
		last := bus.Stops[len(bus.Stops)-1]
		r.addLabel(doc, bus.Name, proj.Project(cat.Stop(first).Coordinates), color)
		if !bus.IsRoundtrip && first != last {
			r.addLabel(doc, bus.Name, proj.Project(cat.Stop(last).Coordinates), color)
		}
	}
}

func (r *Renderer) addLabel(doc *formatter.Document, name string, pos formatter.Point, color string) {
	base := formatter.Text{
		Position:   pos,
		Offset:     r.settings.BusLabelOffset,
		FontSize:   r.settings.BusLabelFontSize,
		FontFamily: fontFamily,
		FontWeight: "bold",
		Data:       name,
	}
	doc.Add(r.underlayer(base))
	base.Fill = color
	doc.Add(base)
}

func (r *Renderer) renderStopPoints(doc *formatter.Document, stops []*catalogue.Stop, proj SphereProjector) {
	for _, s := range stops {
		doc.Add(formatter.Circle{
			Center:    proj.Project(s.Coordinates),
			Radius:    r.settings.StopRadius,
			PathProps: formatter.PathProps{Fill: "white"},
		})
	}
}

func (r *Renderer) renderStopLabels(doc *formatter.Document, stops []*catalogue.Stop, proj SphereProjector) {
	for _, s := range stops {
		base := formatter.Text{
			Position:   proj.Project(s.Coordinates),
			Offset:     r.settings.StopLabelOffset,
			FontSize:   r.settings.StopLabelFontSize,
			FontFamily: fontFamily,
			Data:       s.Name,
		}
		doc.Add(r.underlayer(base))
		base.Fill = "black"
		doc.Add(base)
	}
}

func (r *Renderer) underlayer(t formatter.Text) formatter.Text {
	t.PathProps = formatter.PathProps{
		Fill:           r.settings.UnderlayerColor,
		Stroke:         r.settings.UnderlayerColor,
		StrokeWidth:    r.settings.UnderlayerWidth,
		StrokeLineCap:  "round",
		StrokeLineJoin: "round",
	}
	return t
}
