// README: CLI demo; runs one query through the extract->lookup pipeline and prints directions.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"akshar/internal/ai"
	"akshar/internal/config"
	"akshar/internal/extract"
	"akshar/internal/maps"
	"akshar/internal/route"
	"akshar/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: route-demo \"Pune to Mumbai by car\"")
		os.Exit(2)
	}
	query := strings.Join(os.Args[1:], " ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	pipeline := service.NewPipeline(extract.New(provider, nil), routeSvc)

	result, err := pipeline.Process(ctx, route.TextInput(query))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(service.FormatResult(result))
}
