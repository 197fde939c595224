package infra

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestHTTPServerStopsOnCancel(t *testing.T) {
	cfg := &Config{Port: "0", ShutdownTimeout: time.Second}
	srv := NewHTTPServer(cfg, http.NotFoundHandler(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServerReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	srv := NewHTTPServer(&Config{Port: port}, http.NotFoundHandler(), zerolog.Nop())
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected address in use error")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
	}
}
