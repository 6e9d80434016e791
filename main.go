package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"scheduler-project/api"
	"scheduler-project/config"
	"scheduler-project/internal/core"
	"scheduler-project/internal/display"
	"scheduler-project/internal/loader"
	"scheduler-project/internal/schedulers"
)

func main() {
	cfg := config.GetSchedulerConfig()

	// With a CSV path argument, run every algorithm once and print the
	// report instead of serving.
	if len(os.Args) > 1 {
		if err := report(os.Stdout, os.Args[1], cfg); err != nil {
			log.Fatalln(err)
		}
		return
	}

	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/agingfcfs", handler.AgingFCFS)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func report(w io.Writer, path string, cfg *config.SchedulerConfig) error {
	processes, err := loader.LoadProcessesFile(path)
	if err != nil {
		return err
	}
	processes = core.SortByArrival(processes)
	log.Printf("loaded %d processes from %s", len(processes), path)
	display.WriteProcessTable(w, processes)

	opts := schedulers.Options{
		TimeQuantum: cfg.RoundRobinTimeQuantum,
		Weights: schedulers.AgingWeights{
			Aging:     cfg.AgingWeight,
			Burst:     cfg.BurstWeight,
			Priority:  cfg.PriorityWeight,
			Tolerance: cfg.AgingTolerance,
		},
	}
	results, err := schedulers.RunAll(opts, processes)
	if err != nil {
		return err
	}
	for _, result := range results {
		display.WriteResult(w, result)
	}
	return nil
}
