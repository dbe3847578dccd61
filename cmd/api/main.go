package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/config"
	"github.com/BruksfildServices01/salon-karte/internal/metrics"
	"github.com/BruksfildServices01/salon-karte/internal/routes"
	"github.com/BruksfildServices01/salon-karte/internal/sessionslot"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.New()
	st := store.New(store.WithRecorder(reg))

	slot, closeSlot, err := sessionslot.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open session slot: %v", err)
	}
	defer func() {
		if err := closeSlot(); err != nil {
			log.Printf("session slot close: %v", err)
		}
	}()

	sessions, err := auth.New(ctx, slot, auth.WithRecorder(reg))
	if err != nil {
		log.Fatalf("failed to start auth: %v", err)
	}
	defer sessions.Close()

	sessions.OnSessionChange(func(ev auth.Event, sess *auth.Session) {
		if sess != nil {
			log.Printf("auth: %s %s", ev, sess.User.Email)
			return
		}
		log.Printf("auth: %s", ev)
	})

	dispatcher := audit.NewDispatcher(audit.New(st), cfg.AuditQueueSize)
	defer dispatcher.Close()

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Store:    st,
		Sessions: sessions,
		Audit:    dispatcher,
		Metrics:  reg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s (session slot: %s)", cfg.Addr(), cfg.SessionSlot)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
