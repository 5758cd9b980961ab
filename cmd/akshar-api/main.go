// README: Entry point; loads config, wires the pipeline and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"akshar/internal/ai"
	"akshar/internal/config"
	"akshar/internal/extract"
	httptransport "akshar/internal/http"
	"akshar/internal/maps"
	"akshar/internal/ocr"
	"akshar/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	var reader extract.OCRReader
	if cfg.OCR.Enabled {
		reader = ocr.NewReader()
	}

	extractor := extract.New(provider, reader)
	pipeline := service.NewPipeline(extractor, routeSvc)
	translator := ai.NewTranslator(provider)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Pipeline:   pipeline,
		Translator: translator,
		Routes:     routeSvc,
		Places:     placesSvc,
		Timeout:    cfg.RequestTimeout,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
