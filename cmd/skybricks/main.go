package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/banshee-data/skybricks/internal/api"
	"github.com/banshee-data/skybricks/internal/brick"
	"github.com/banshee-data/skybricks/internal/db"
	"github.com/banshee-data/skybricks/internal/version"
)

var (
	bricksize  = flag.Float64("bricksize", brick.DefaultBricksize, "Brick size in degrees")
	listen     = flag.String("listen", ":8080", "Listen address")
	dbPath     = flag.String("db", "", "SQLite path to export the brick table to (optional)")
	exportOnly = flag.Bool("export-only", false, "Write the brick table and exit (requires -db)")
)

func main() {
	flag.Parse()

	log.Printf("skybricks %s (%s, built %s)", version.Version, version.GitSHA, version.BuildTime)

	if *exportOnly && *dbPath == "" {
		log.Fatal("-export-only requires -db")
	}

	tiling, err := brick.New(*bricksize)
	if err != nil {
		log.Fatalf("Failed to build tiling: %v", err)
	}
	log.Printf("Built tiling: bricksize=%g rows=%d bricks=%d",
		tiling.Bricksize(), tiling.Rows(), tiling.TotalBricks())

	if *dbPath != "" {
		store, err := db.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open brick store %s: %v", *dbPath, err)
		}
		if err := store.WriteTiling(tiling); err != nil {
			log.Fatalf("Failed to write brick table: %v", err)
		}
		if err := store.Close(); err != nil {
			log.Fatalf("Failed to close brick store: %v", err)
		}
		log.Printf("Wrote %d bricks to %s", tiling.TotalBricks(), *dbPath)
	}

	if *exportOnly {
		return
	}

	server := api.NewServer(tiling)
	log.Printf("Listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, api.LoggingMiddleware(server.ServeMux())))
}
