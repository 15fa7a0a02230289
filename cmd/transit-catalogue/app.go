package main

import (
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transit-catalogue/mapview"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
	"github.com/theoremus-urban-solutions/transit-catalogue/routing"
)

// runOneshot answers the stat requests of the document read from r.
// Settings missing from the document come from cfg.
func runOneshot(r io.Reader, w io.Writer, cfg config.AppConfig, indent string) error {
	doc, err := requests.ReadDocument(r)
	if err != nil {
		return err
	}
	h, err := handlerFromDocument(doc, cfg)
	if err != nil {
		return err
	}
	return formatter.NewResponseBuilder(indent).WriteJSON(w, h.Process(doc.StatRequests))
}

// loadHandler builds the query handler from the configured input
func loadHandler(cfg config.AppConfig) (*requests.Handler, error) {
	if err := cfg.Input.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input.RequestsPath != "" {
		f, err := os.Open(cfg.Input.RequestsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open requests: %w", err)
		}
		defer f.Close()
		doc, err := requests.ReadDocument(f)
		if err != nil {
			return nil, err
		}
		return handlerFromDocument(doc, cfg)
	}

	cat, err := gtfs.LoadCatalogueFromZip(cfg.Input.GTFSPath, catalogueOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load gtfs: %w", err)
	}
	return newHandler(cat, routingSettings(cfg), mapview.SettingsFromConfig(cfg.Render))
}

func handlerFromDocument(doc *requests.Document, cfg config.AppConfig) (*requests.Handler, error) {
	cat, err := doc.LoadCatalogue(catalogueOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	rs, ok := doc.RoutingSettings()
	if !ok {
		rs = routingSettings(cfg)
	}
	render, ok := doc.RenderSettings()
	if !ok {
		render = mapview.SettingsFromConfig(cfg.Render)
	}
	return newHandler(cat, rs, render)
}

func newHandler(cat *catalogue.Catalogue, rs routing.Settings, render mapview.Settings) (*requests.Handler, error) {
	router, err := routing.NewRouter(cat, rs)
	if err != nil {
		return nil, err
	}
	return requests.NewHandler(cat, router, mapview.NewRenderer(render)), nil
}

func catalogueOptions(cfg config.AppConfig) []catalogue.Option {
	if cfg.Input.StrictStops {
		return []catalogue.Option{catalogue.WithStrictStops()}
	}
	return nil
}

func routingSettings(cfg config.AppConfig) routing.Settings {
	return routing.Settings{
		BusWaitTime: cfg.Routing.BusWaitTime,
		BusVelocity: cfg.Routing.BusVelocity,
	}
}
