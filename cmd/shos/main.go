package main

import (
	"flag"
	"log"
	"os"

	shos "github.com/Vlad-Vekslyer/SHOS"
	kitlog "github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// This code reads the scenario file, advances the orbit, and writes the configured outputs.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "orbit scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "log the orbit derivation")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	sc, err := shos.LoadScenario(scenario)
	if err != nil {
		log.Fatal(err)
	}

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "scenario", scenario)
	orbitLog := kitlog.NewNopLogger()
	if verbose {
		orbitLog = klog
	}
	o, err := sc.Orbit(orbitLog)
	if err != nil {
		log.Fatalf("could not build orbit: %s", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := shos.NewMetrics(reg)
	if err != nil {
		log.Fatal(err)
	}

	sim := shos.NewSimulation(o, sc.Ticks, shos.ExportConfig{Filename: sc.CSVPath}, metrics, klog)
	if _, err := sim.Run(); err != nil {
		log.Fatal(err)
	}
	if sc.MetricsPath != "" {
		if err := shos.WriteToTextfile(sc.MetricsPath, reg); err != nil {
			log.Fatalf("could not write metrics: %s", err)
		}
	}
}
