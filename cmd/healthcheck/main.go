// Package main provides a lightweight liveness probe for container images
// that ship without wget or curl. It exits 0 when the gateway reports
// healthy and 1 otherwise.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

const probeTimeout = 5 * time.Second

// probeURL builds the health endpoint URL from the server environment.
// A wildcard bind address is probed via loopback.
func probeURL(host, port string) string {
	if host == "" || host == "0.0.0.0" {
		// 127.0.0.1 rather than localhost: scratch images have no /etc/hosts
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3001"
	}
	return fmt.Sprintf("http://%s:%s/health", host, port)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	url := probeURL(os.Getenv("HOST"), os.Getenv("PORT"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(1)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(1)
	}
	// No defer: os.Exit below would bypass it.
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Health check returned non-OK status: %d\n", resp.StatusCode)
		os.Exit(1)
	}

	os.Exit(0)
}
