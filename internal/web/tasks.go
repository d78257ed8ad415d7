package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
)

type tasksPage struct {
	Title      string
	Flash      Flash
	Employee   string
	Supervisor string
	Tasks      []models.Task
}

func (s *Server) handleTasksPage(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)
	query := primary.TaskQuery{
		Employee:   r.URL.Query().Get("employee"),
		Supervisor: r.URL.Query().Get("supervisor"),
	}

	tasks, err := s.svc.Tasks.ListTasks(r.Context(), query)
	if err != nil {
		s.log.Error("failed to list tasks", zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load tasks."}
		tasks = nil
	}

	s.render(w, "tasks.gohtml", tasksPage{
		Title:      "Tasks",
		Flash:      flash,
		Employee:   query.Employee,
		Supervisor: query.Supervisor,
		Tasks:      tasks,
	})
}

func taskRedirect(r *http.Request) string {
	params := url.Values{}
	if v := r.FormValue("filter_employee"); v != "" {
		params.Set("employee", v)
	}
	if v := r.FormValue("filter_supervisor"); v != "" {
		params.Set("supervisor", v)
	}
	if len(params) == 0 {
		return "/tasks"
	}
	return "/tasks?" + params.Encode()
}

func (s *Server) handleTaskAdd(w http.ResponseWriter, r *http.Request) {
	req := primary.AddTaskRequest{
		EmployeeName:   strings.TrimSpace(r.FormValue("employee_name")),
		Description:    strings.TrimSpace(r.FormValue("task_description")),
		SupervisorName: strings.TrimSpace(r.FormValue("supervisor_name")),
	}
	if err := s.svc.Tasks.AddTask(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Task added.")
	}
	http.Redirect(w, r, taskRedirect(r), http.StatusSeeOther)
}

func (s *Server) handleTaskEdit(w http.ResponseWriter, r *http.Request) {
	req := primary.UpdateTaskRequest{
		ID:             chi.URLParam(r, "id"),
		EmployeeName:   strings.TrimSpace(r.FormValue("employee_name")),
		Description:    strings.TrimSpace(r.FormValue("task_description")),
		SupervisorName: strings.TrimSpace(r.FormValue("supervisor_name")),
	}
	if err := s.svc.Tasks.UpdateTask(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Task updated.")
	}
	http.Redirect(w, r, taskRedirect(r), http.StatusSeeOther)
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Tasks.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Task deleted.")
	}
	http.Redirect(w, r, taskRedirect(r), http.StatusSeeOther)
}
