// Mock of the countrystatecity.in API for local development. Serves a
// small fixed dataset and enforces the same API key header as the real
// upstream.
package main

import (
	_ "embed"
	"log"
	"net/http"
	"strings"
	"time"
)

//go:embed countries.json
var countriesData []byte

//go:embed states.json
var statesData []byte

//go:embed cities.json
var citiesData []byte

func main() {
	http.HandleFunc("/v1/countries", withKey(serve(countriesData)))
	http.HandleFunc("/v1/countries/", withKey(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/cities"):
			serve(citiesData)(w, r)
		case strings.HasSuffix(r.URL.Path, "/states"):
			serve(statesData)(w, r)
		default:
			// Single country/state lookups are not in the fixture set
			http.NotFound(w, r)
		}
	}))

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[GeoAPI] Health write error: %v", err)
		}
	})

	log.Println("Mock GeoAPI running on :8091")
	server := &http.Server{
		Addr:         ":8091",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}

func withKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-CSCAPI-KEY") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			if _, err := w.Write([]byte(`{"error":"API key missing"}`)); err != nil {
				log.Printf("[GeoAPI] Write error: %v", err)
			}
			return
		}
		next(w, r)
	}
}

func serve(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Printf("[GeoAPI] Write error: %v", err)
		}

		log.Printf("[GeoAPI] %s %s - 200 OK", r.Method, r.URL.Path)
	}
}
