// Command surveyd serves the survey computations over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/surveyor/internal/httpapi"
)

// Build metadata, injected at build time.
var (
	BuildVersion = "dev"
	BuildCommit  = "unknown"
)

var (
	addr    = flag.String("addr", ":8080", "HTTP listen address")
	maxJob  = flag.Int64("max-job-bytes", httpapi.DefaultMaxJobBytes, "largest accepted job body")
	debug   = flag.Bool("debug", false, "run gin in debug mode")
	timeout = flag.Duration("shutdown-timeout", 5*time.Second, "graceful shutdown limit")
)

func main() {
	flag.Parse()
	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Printf("surveyd %s (%s) listening on %s", BuildVersion, BuildCommit, *addr)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	httpapi.Register(r, httpapi.Config{MaxJobBytes: *maxJob})

	server := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-closed
}
