package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/yungbote/professionals-backend/internal/app"
)

func main() {
	var path string
	flag.StringVar(&path, "file", "", "reference data YAML (defaults to SEED_FILE)")
	flag.Parse()

	application, err := app.New(context.Background())
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if strings.TrimSpace(path) == "" {
		path = application.Cfg.SeedFile
	}
	if path == "" {
		fmt.Println("no seed file given; pass -file or set SEED_FILE")
		application.Close()
		os.Exit(2)
	}

	report, err := application.Services.Seed.SeedFromFile(context.Background(), path)
	if err != nil {
		fmt.Printf("seed %s: %v\n", path, err)
		application.Close()
		os.Exit(1)
	}

	keys := make([]string, 0, len(report))
	for k := range report {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-14s %d\n", k, report[k])
	}
}
