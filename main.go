package main

import (
	auth "Gauge/internal/auth"
	batch "Gauge/internal/calc/batch"
	governance "Gauge/internal/calc/governance"
	importer "Gauge/internal/calc/importer"
	pressure "Gauge/internal/calc/pressure"
	report "Gauge/internal/calc/report"
	structural "Gauge/internal/calc/structural"
	repo "Gauge/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

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

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	pressureH := &pressure.Handler{}
	structuralH := &structural.Handler{}
	governanceH := &governance.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/pipe/pressure", pressureH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pipe/structural", structuralH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pipe/evaluate", governanceH.Evaluate).Methods("POST")
	secureApi.HandleFunc("/tools/pipe/batch", batchH.Evaluate).Methods("POST")
	secureApi.HandleFunc("/tools/pipe/import", importerH.Evaluate).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/report/export", reportH.Export).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
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
