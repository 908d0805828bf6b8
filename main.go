package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/api"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/config"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/tui"
)

func main() {
	cfg := config.GetSchedulerConfig()

	tuiMode := flag.Bool("tui", false, "interactive Gantt-chart viewer instead of the HTTP server")
	scenario := flag.String("input", "", "scenario JSON file for -tui")
	quantum := flag.Int("quantum", cfg.RoundRobinTimeQuantum, "round-robin time quantum for -tui")
	flag.Parse()

	if *tuiMode {
		if err := tui.Run(*scenario, *quantum); err != nil {
			log.Fatalln(err)
		}
		return
	}

	log.Fatalln(api.NewApp(cfg).Listen(fmt.Sprintf(":%d", cfg.Port)))
}
