// Command standards-init creates and seeds the room standards database.
//
// The resulting SQLite file carries the room_standards table consumed by
// roomfuse via -standards-db. Rerunning against an existing file replaces
// the built-in rows and leaves any locally added room types alone.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/roomsense-data/roomfusion/internal/standards"
)

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "room_standards.db", "path to standards sqlite db")
	flag.Parse()

	if err := standards.Seed(dbPath); err != nil {
		log.Fatalf("seed standards db: %v", err)
	}

	catalog, err := standards.Load(dbPath)
	if err != nil {
		log.Fatalf("verify standards db: %v", err)
	}
	fmt.Printf("seeded %s with %d room types\n", dbPath, catalog.Len())
}
