package main

import (
	"flag"
	"log"

	"github.com/tmpim/knitter/config"
	"github.com/tmpim/knitter/server"
)

var (
	configPath = flag.String("config", "", "load settings from this TOML file instead of the default locations")
	listen     = flag.String("listen", "", "address to listen on (default from config)")
)

func main() {
	flag.Parse()

	var paths []string
	if *configPath != "" {
		paths = []string{*configPath}
	}

	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatal("knitserver: ", err)
	}

	if *listen != "" {
		cfg.Listen = *listen
	}

	opts, err := cfg.Options()
	if err != nil {
		log.Fatal("knitserver: ", err)
	}

	maxUpload, err := cfg.MaxUploadBytes()
	if err != nil {
		log.Fatal("knitserver: ", err)
	}

	e := server.New(server.Options{
		Base:      opts,
		MaxUpload: maxUpload,
		MaxPixels: cfg.MaxPixels,
	})

	log.Fatal(e.Start(cfg.Listen))
}
