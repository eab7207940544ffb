package main

import (
	auth "RigSafe/internal/auth"
	geometry "RigSafe/internal/calc/geometry"
	material "RigSafe/internal/calc/material"
	wll "RigSafe/internal/calc/wll"
	equipment "RigSafe/internal/equipment"
	report "RigSafe/internal/report"
	store "RigSafe/internal/store"
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, st store.Store) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey)}
	limiter := auth.NewIPRateLimiter(5, 20)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	geometryH := &geometry.Handler{}
	materialH := &material.Handler{}
	wllH := &wll.Handler{}

	api.HandleFunc("/tools/geometry/calc", geometryH.Calc).Methods("POST")
	api.HandleFunc("/tools/geometry/validate", geometryH.Validate).Methods("POST")
	api.HandleFunc("/tools/material/calc", materialH.Calc).Methods("POST")
	api.HandleFunc("/tools/material/list", materialH.List).Methods("GET")
	api.HandleFunc("/tools/wll/calc", wllH.Calc).Methods("POST")
	api.HandleFunc("/tools/wll/types", wllH.ListTypes).Methods("GET")
	api.HandleFunc("/tools/wll/options", wllH.ListOptions).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	tracker := equipment.NewTracker(st)
	equipmentH := &equipment.Handler{Tracker: tracker}
	reportH := &report.Handler{Tracker: tracker}

	secureApi.HandleFunc("/equipment", equipmentH.List).Methods("GET")
	secureApi.HandleFunc("/equipment", equipmentH.Add).Methods("POST")
	secureApi.HandleFunc("/equipment/summary", equipmentH.Summary).Methods("GET")
	secureApi.HandleFunc("/equipment/types", equipmentH.ListTypes).Methods("GET")
	secureApi.HandleFunc("/equipment/export/csv", equipmentH.ExportCSV).Methods("GET")
	secureApi.HandleFunc("/equipment/export/xlsx", equipmentH.ExportXLSX).Methods("GET")
	secureApi.HandleFunc("/equipment/{id}", equipmentH.Update).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/equipment/{id}", equipmentH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/equipment/{id}/tests", equipmentH.RecordTest).Methods("POST")
	secureApi.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := store.InitDB()
	defer db.Close()
	st := store.NewPostgresStore(db)

	mux := mux.NewRouter()
	HandleList(mux, st)
	handler := CORS(mux)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		certFile := os.Getenv("TLS_CERT")
		keyFile := os.Getenv("TLS_KEY")
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
