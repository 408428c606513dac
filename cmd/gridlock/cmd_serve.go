package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	httpadapter "svw.info/gridlock/internal/adapters/http"
	"svw.info/gridlock/internal/generator"
	"svw.info/gridlock/internal/hint"
	"svw.info/gridlock/internal/infrastructure/storage"
	"svw.info/gridlock/internal/ports"
	"svw.info/gridlock/internal/solver"
	"svw.info/gridlock/internal/usecase"
	"svw.info/gridlock/internal/validator"
)

var (
	serveAddr    string
	servePersist string
	serveSolver  string

	commandServe = &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := serve(); err != nil {
				fmt.Fprintln(os.Stderr, "serve:", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory")
	commandServe.Flags().StringVar(&serveSolver, "solver", "reducing", "solver engine: reducing|backtrack")
	mainCommand.AddCommand(commandServe)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			logger.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"dur", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}

func serve() error {
	logger := newLogger()
	if err := os.MkdirAll(servePersist, 0o755); err != nil {
		return err
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(serveSolver)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewReducingSolver()
	}

	// Wire providers -> use cases -> HTTP adapter
	uc := usecase.NewService(s, generator.NewPatternGenerator(), validator.New(), hint.NewSingles(), storage.NewFS(servePersist))

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	httpadapter.New(uc).Register(r)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "persist", servePersist, "solver", serveSolver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
