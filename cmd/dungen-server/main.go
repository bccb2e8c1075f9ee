package main

import (
	"flag"
	"log"
	"net/http"

	"dungen/internal/dungeon"
	"dungen/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "", "path to the generation log database (empty disables logging)")
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 48, "grid height in cells")
	rooms := flag.Int("rooms", 8, "target room count")
	seed := flag.Int64("seed", 1337, "default seed when a request omits one")
	flag.Parse()

	cfg := dungeon.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Params.TargetRoomCount = *rooms

	var store *server.Store
	if *dbPath != "" {
		var err error
		store, err = server.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open generation log: %v", err)
		}
		defer store.Close()
	}

	srv, err := server.New(cfg, store)
	if err != nil {
		log.Fatalf("configure server: %v", err)
	}

	log.Printf("dungen-server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}
