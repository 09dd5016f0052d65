package main

import (
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokuweb/internal/adapters/http"
	"svw.info/sudokuweb/internal/candidates"
	"svw.info/sudokuweb/internal/games"
	"svw.info/sudokuweb/internal/generator"
	"svw.info/sudokuweb/internal/solver"
	"svw.info/sudokuweb/internal/usecase"
	"svw.info/sudokuweb/internal/validator"
	"svw.info/sudokuweb/web"
)

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
func requestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

// noStore disables caching for static assets so UI updates land without
// a hard refresh.
func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func run(log *logrus.Logger, addr string, budget time.Duration) error {
	s := solver.NewBacktrackingSolver()
	g := generator.NewUniqueGenerator(s, log)
	if budget > 0 {
		g.Budget = budget
	}
	v := validator.New()
	c := candidates.New()
	st := games.NewStore()
	uc := usecase.NewService(s, g, v, c, st)
	h := httpadapter.New(uc, log)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", noStore(http.StripPrefix("/static/", http.FileServer(web.StaticFS()))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLogger(log, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{"addr": addr, "budget": g.Budget}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func main() {
	var (
		addr      string
		levelStr  string
		budget    time.Duration
		profiling bool
	)

	log := logrus.New()

	cmd := &cobra.Command{
		Use:   "sudoku-web",
		Short: "Serves generated Sudoku puzzles with hints and solution checking",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(strings.ToLower(levelStr))
			if err != nil {
				lvl = logrus.InfoLevel
			}
			log.SetLevel(lvl)
			if profiling {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			return run(log, addr, budget)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().DurationVar(&budget, "gen-budget", generator.DefaultBudget, "hard-tier generation time budget")
	cmd.Flags().BoolVar(&profiling, "profile", false, "write a CPU profile to the working directory")

	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("server error")
		os.Exit(1)
	}
}
