package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"solar-payback/internal/config"
	"solar-payback/internal/data"
	"solar-payback/internal/payback"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "payback":
		cmdPayback(os.Args[2:])
	case "optimal":
		cmdOptimal(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli payback --config config.yaml --consumption 5000 --cost 10000 --wp 5000")
	fmt.Println("  cli optimal --config config.yaml --consumption 5000 --cost 10000 --wp 5000")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - payback prints the years until the installation breaks even")
	fmt.Println("  - optimal searches wp..2*wp for the capacity with the shortest payback")
}

type calcFlags struct {
	cfgPath     string
	consumption float64
	cost        float64
	wp          int
}

func parseCalcFlags(name string, args []string) calcFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "Path to YAML config")
	consumption := fs.Float64("consumption", 0, "Annual energy consumption in kWh")
	cost := fs.Float64("cost", 0, "Installation cost in EUR")
	wp := fs.Int("wp", 0, "Installation capacity in Wp")
	_ = fs.Parse(args)

	if *consumption <= 0 || *cost <= 0 || *wp <= 0 {
		fmt.Println("--consumption, --cost and --wp are required and must be > 0")
		os.Exit(2)
	}
	return calcFlags{cfgPath: *cfgPath, consumption: *consumption, cost: *cost, wp: *wp}
}

func buildEngine(cfgPath string) *payback.Engine {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.Default()
		} else {
			panic(err)
		}
	}
	ref, err := data.LoadReferenceData(cfg.Data)
	if err != nil {
		panic(err)
	}
	engine, err := payback.New(ref, cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

func cmdPayback(args []string) {
	f := parseCalcFlags("payback", args)
	engine := buildEngine(f.cfgPath)

	years, err := engine.PaybackTime(f.consumption, f.cost, f.wp)
	if errors.Is(err, payback.ErrNeverPaysBack) {
		fmt.Printf("Installation of %d Wp never pays back: no positive annual savings\n", f.wp)
		os.Exit(1)
	}
	if err != nil {
		panic(err)
	}

	b := engine.CostBreakdown(f.consumption, f.wp)
	fmt.Printf("Produced %.1f kWh, consumed %.1f kWh over the historical window\n",
		b.TotalProducedKWh, b.TotalConsumedKWh)
	fmt.Printf("Annual savings: %.2f EUR\n", -b.TotalCost)
	fmt.Printf("Payback time: %.1f years\n", years)
}

func cmdOptimal(args []string) {
	f := parseCalcFlags("optimal", args)
	engine := buildEngine(f.cfgPath)

	wp, err := engine.OptimalWp(f.consumption, f.cost, f.wp)
	if errors.Is(err, payback.ErrNeverPaysBack) {
		fmt.Printf("No capacity between %d and %d Wp yields positive annual savings\n", f.wp, 2*f.wp)
		os.Exit(1)
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf("Optimal capacity: %d Wp (searched %d..%d)\n", wp, f.wp, 2*f.wp)
}
