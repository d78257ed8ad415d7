// Package web serves the HTML pages, form endpoints, CSV downloads and the
// health endpoint over a chi router.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/ports/primary"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Services bundles the primary ports the server renders and mutates through.
type Services struct {
	Employees primary.EmployeeService
	Vehicles  primary.VehicleService
	Shifts    primary.ShiftService
	Teams     primary.TeamService
	Tasks     primary.TaskService
	Dashboard primary.DashboardService
	Status    primary.StatusService
	Roster    primary.RosterService
	Exports   primary.ExportService
}

// Server holds the parsed templates and the services behind each route.
type Server struct {
	svc Services
	log *zap.Logger
	tpl *template.Template
	now func() time.Time
}

// NewServer parses the embedded templates and returns a ready server.
func NewServer(svc Services, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	funcs := template.FuncMap{
		// dayOfMonth renders the DD part of a YYYY-MM-DD date for the
		// roster column headers.
		"dayOfMonth": func(date string) string {
			if i := strings.LastIndex(date, "-"); i >= 0 {
				return date[i+1:]
			}
			return date
		},
	}
	tpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{svc: svc, log: logger, tpl: tpl, now: time.Now}, nil
}

// Router assembles the full route surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleDashboard)
	r.Get("/health", s.handleHealth)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", s.handleEmployeesPage)
		r.Post("/add", s.handleEmployeeAdd)
		r.Post("/edit/{code}", s.handleEmployeeEdit)
		r.Post("/delete/{code}", s.handleEmployeeDelete)
		r.Get("/export", s.handleExport(primary.ExportEmployees, "/employees"))
	})

	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/", s.handleVehiclesPage)
		r.Post("/add", s.handleVehicleAdd)
		r.Post("/edit/{plate}", s.handleVehicleEdit)
		r.Post("/delete/{plate}", s.handleVehicleDelete)
		r.Get("/export", s.handleExport(primary.ExportVehicles, "/vehicles"))
	})

	r.Route("/shifts", func(r chi.Router) {
		r.Get("/", s.handleShiftsPage)
		r.Post("/add", s.handleShiftAdd)
		r.Post("/edit/{id}", s.handleShiftEdit)
		r.Post("/delete/{id}", s.handleShiftDelete)
		r.Get("/export", s.handleExport(primary.ExportShifts, "/shifts"))
	})

	r.Route("/roster", func(r chi.Router) {
		r.Get("/", s.handleRosterPage)
		r.Post("/update", s.handleRosterUpdate)
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", s.handleTeamsPage)
		r.Post("/add", s.handleTeamAdd)
		r.Post("/edit/{id}", s.handleTeamEdit)
		r.Post("/delete/{id}", s.handleTeamDelete)
		r.Get("/export", s.handleExport(primary.ExportTeams, "/teams"))
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleTasksPage)
		r.Post("/add", s.handleTaskAdd)
		r.Post("/edit/{id}", s.handleTaskEdit)
		r.Post("/delete/{id}", s.handleTaskDelete)
		r.Get("/export", s.handleExport(primary.ExportTasks, "/tasks"))
	})

	return r
}

// requestLogger logs one line per request with the chi request ID.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// render executes one page template. Template failures are logged and
// answered with a bare 500; pages never half-render.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("template execution failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
