package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/huanfachen/james-go/internal/control"
	"github.com/huanfachen/james-go/internal/datastore"
	"github.com/huanfachen/james-go/internal/randsrc"
	"github.com/huanfachen/james-go/pkg/james/algo"
	"github.com/huanfachen/james-go/pkg/james/examples/sumofscores"
	"github.com/huanfachen/james-go/pkg/james/search"
	"github.com/huanfachen/james-go/pkg/james/subset"
)

func main() {
	log.Println("Starting James-Go search daemon...")

	universeSize := mustAtoi(getEnvOrDefault("UNIVERSE_SIZE", "10"))
	subsetSize := mustAtoi(getEnvOrDefault("SUBSET_SIZE", "3"))

	var store *datastore.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		var err error
		store, err = datastore.Connect(context.Background(), dbURL)
		if err != nil {
			log.Printf("Warning: failed to connect to datastore, continuing with the in-memory identity instance: %v", err)
			store = nil
		} else {
			defer store.Close()
			if err := store.InitSchema(context.Background()); err != nil {
				log.Printf("Warning: datastore schema init failed: %v", err)
			}
		}
	}

	p := sumofscores.NewProblem(universeSize, subsetSize)
	if store != nil {
		instanceKey := getEnvOrDefault("INSTANCE_KEY", "default")
		universe, scores, err := store.LoadInstance(context.Background(), instanceKey)
		if err != nil || len(universe) == 0 {
			log.Printf("Warning: no stored instance %q, falling back to the identity instance: %v", instanceKey, err)
		} else {
			log.Printf("Loaded stored instance %q with %d items", instanceKey, len(universe))
			_ = scores // a richer instance loader would plug scores into a custom objective
		}
	}

	rng := randsrc.New(uint64(time.Now().UnixNano()))
	stepper := algo.NewSteepestDescent(subset.NewSingleSwapNeighbourhood())
	s := search.New("sumofscores", p, stepper, rng)

	s.AddStopCriterion(search.Composite{Children: []search.StopCriterion{
		search.MaxSteps{N: 10_000},
		search.MaxRuntime{Duration: 30 * time.Second},
	}})

	hub := control.NewHub()
	go hub.Run()
	s.AddListener(control.NewEventListener(hub))

	r := control.SetupRouter(s, hub)
	port := getEnvOrDefault("PORT", "5339")

	go func() {
		log.Printf("Control surface listening on :%s", port)
		if err := r.Run(":" + port); err != nil {
			log.Printf("Control surface stopped: %v", err)
		}
	}()

	if err := s.Start(); err != nil {
		log.Fatalf("Search run failed: %v", err)
	}

	best := s.BestSolution()
	bestEval := s.BestEvaluation()
	if best != nil && bestEval != nil {
		sel := best.(*subset.Solution).Selected()
		log.Printf("Best solution: %v, value=%.4f, steps=%d", sel, bestEval.Value(), s.GetMetrics().Steps)
	} else {
		log.Println("No valid solution found")
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("FATAL: invalid integer configuration value %q: %v", s, err)
	}
	return n
}

func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
