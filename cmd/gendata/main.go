package main

import (
	"flag"
	"fmt"
	"os"

	"solar-payback/internal/config"
	"solar-payback/internal/data"
)

// Writes small synthetic reference spreadsheets so the API and CLI can run
// without the real (non-redistributable) source data.
func main() {
	dir := flag.String("dir", "data", "Output directory for the sample workbooks")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		panic(err)
	}

	cfg := config.Default()
	if err := data.WriteSampleWorkbooks(*dir, cfg.Data); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote sample production, consumption and wholesale workbooks to %s\n", *dir)
}
