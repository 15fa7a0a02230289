package main

import (
	"flag"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/internal"
	"github.com/theoremus-urban-solutions/transit-catalogue/server"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	in := flag.String("in", "", "request document for oneshot mode (default stdin)")
	configPath := flag.String("config", "", "config file (overrides TRANSIT_CONFIG)")
	indent := flag.String("indent", "    ", "JSON indent for oneshot output, empty for compact")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	switch *mode {
	case "oneshot":
		// stdout carries the answer
		internal.InitLogging(os.Stderr, *verbose)
		cfg := config.Defaults()
		if *configPath != "" || os.Getenv("TRANSIT_CONFIG") != "" {
			if err := loadConfig(*configPath); err != nil {
				log.Fatalf("failed to load config: %v", err)
			}
			cfg = config.Config
		}

		input := os.Stdin
		if *in != "" {
			f, err := os.Open(*in)
			if err != nil {
				log.Fatalf("failed to open input: %v", err)
			}
			defer f.Close()
			input = f
		}
		if err := runOneshot(input, os.Stdout, cfg, *indent); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	case "serve":
		internal.InitLogging(os.Stdout, *verbose)
		if err := loadConfig(*configPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		h, err := loadHandler(config.Config)
		if err != nil {
			log.Fatalf("failed to load network: %v", err)
		}
		srv := server.New(h, server.OptionsFromConfig(config.Config))
		if err := srv.Start(); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
		srv.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func loadConfig(path string) error {
	if path != "" {
		return config.LoadAppConfig(path)
	}
	return config.LoadAppConfig()
}
