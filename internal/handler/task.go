package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/organizador-api/internal/model"
	"github.com/BuzzLyutic/organizador-api/internal/repo"
	"github.com/BuzzLyutic/organizador-api/internal/service"
	"github.com/BuzzLyutic/organizador-api/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

// taskRequest - тело POST/PUT; дата и статус разбираются вручную
type taskRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Date        string `json:"data"`
	Status      string `json:"status"`
}

func (req taskRequest) toModel() (model.Task, error) {
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return model.Task{}, err
	}

	status := model.StatusPending
	if req.Status != "" {
		if status, err = model.ParseStatus(req.Status); err != nil {
			return model.Task{}, err
		}
	}

	return model.Task{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Status:      status,
	}, nil
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) ListByTitle(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListByTitle(r.Context(), r.URL.Query().Get("titulo"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := model.ParseDate(r.URL.Query().Get("data"))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := model.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tarefa/%d", task.ID))
	respond.JSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	task, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Status(w, r, http.StatusNoContent)
}

func (h *TaskHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) decode(w http.ResponseWriter, r *http.Request) (model.Task, bool) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return model.Task{}, false
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return model.Task{}, false
	}

	task, err := req.toModel()
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return model.Task{}, false
	}
	return task, true
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Status(w, r, http.StatusNotFound)
	case errors.As(err, &vErr):
		respond.Error(w, r, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, repo.ErrorConflict):
		respond.Error(w, r, http.StatusConflict, "conflict")
	default:
		h.logger.Error("internal error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
