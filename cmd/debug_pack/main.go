package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"ams-coverage/core/config"
	"ams-coverage/core/database"
	"ams-coverage/core/reconcile"
	"ams-coverage/core/storage"
	"ams-coverage/feature/catalogue"
	"ams-coverage/feature/conformance"

	"go.uber.org/zap"
)

// Dumps what both sides of a comparison contain for one pack and, optionally,
// where a single SourceIdentifier shows up.
//
//	go run ./cmd/debug_pack <pack.yaml> [SOURCE_IDENTIFIER]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_pack <pack.yaml> [SOURCE_IDENTIFIER]")
	}
	pack := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var fetcher conformance.Fetcher = &conformance.FileFetcher{}
	if !conformance.IsLocalFile(pack) {
		fetcher, err = conformance.NewFetcher(cfg.Source)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Test 1: Framework rules
	fmt.Println("=== TEST 1: Conformance Pack ===")
	fmt.Printf("Source: %s\n", fetcher.Locate(pack))
	framework, err := conformance.NewLoader(fetcher, zap.NewNop()).Load(ctx, pack)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total framework rules loaded: %d\n", len(framework))

	// Test 2: Catalogue
	fmt.Println("\n=== TEST 2: Catalogue ===")
	deps := catalogue.Dependencies{Bucket: cfg.Storage.Bucket}
	switch cfg.Catalogue.Driver {
	case catalogue.DriverStorage:
		if deps.Storage, err = storage.NewClient(cfg.Storage); err != nil {
			log.Fatal(err)
		}
	case catalogue.DriverDatabase:
		if deps.DB, err = database.Connect(cfg.Database); err != nil {
			log.Fatal(err)
		}
	}
	source, err := catalogue.NewSource(cfg.Catalogue, deps)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Source: %s\n", source.Describe())
	rules, err := source.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total catalogue rules loaded: %d\n", len(rules))

	// Test 3: Identifier lookup
	if len(os.Args) > 2 {
		id := os.Args[2]
		fmt.Printf("\n=== TEST 3: Lookup %s ===\n", id)
		found := false
		for _, r := range framework {
			if r.SourceIdentifier == id {
				fmt.Printf("FOUND in pack: name=%s, owner=%s\n", r.Name, r.Owner)
				found = true
			}
		}
		for i, r := range rules {
			if r.SourceIdentifier == id {
				fmt.Printf("FOUND in catalogue (entry %d): name=%s, service=%s\n", i, r.Name, r.Service)
				found = true
			}
		}
		if !found {
			fmt.Println("NOT FOUND on either side")
		}
	}

	result, err := reconcile.Reconcile(framework, rules)
	if err != nil {
		log.Fatal(err)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	os.WriteFile("debug_pack.json", data, 0644)

	fmt.Printf("\nCoverage: %.2f%%. Check debug_pack.json for details.\n", result.Summary.CoveragePercent)
}
