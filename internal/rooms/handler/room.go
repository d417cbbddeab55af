package handler

import (
	"net/http"

	"splendico/internal/rooms/query"
	"splendico/internal/rooms/service"
	apperrors "splendico/pkg/errors"
	httputil "splendico/pkg/http"
	"splendico/pkg/logger"
	"splendico/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomHandler struct {
	service     service.RoomService
	maxPageSize int
	log         *logger.Logger
}

func NewRoomHandler(service service.RoomService, maxPageSize int, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service:     service,
		maxPageSize: maxPageSize,
		log:         log,
	}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q, err := query.ParseRoomQuery(r.URL.Query(), h.maxPageSize)
	if err != nil {
		h.writeError(w, "List", apperrors.InvalidInput(err.Error()))
		return
	}

	rooms, err := h.service.List(r.Context(), q)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteOK(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteOK", "error", err)
	}
}

func (h *RoomHandler) Count(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := query.ParseRoomFilter(r.URL.Query())
	if err != nil {
		h.writeError(w, "Count", apperrors.InvalidInput(err.Error()))
		return
	}

	count, err := h.service.Count(r.Context(), filter)
	if err != nil {
		h.writeError(w, "Count", err)
		return
	}

	if err := httputil.WriteCount(w, count); err != nil {
		h.log.Error("failed to write count response", "handler", "Count", "operation", "WriteCount", "error", err)
	}
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteOK(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteOK", "error", err)
	}
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.RoomUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	room, err := h.service.Update(r.Context(), ps.ByName("id"), &update)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteOK(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteOK", "error", err)
	}
}

func (h *RoomHandler) Suites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.Suites(r.Context())
	if err != nil {
		h.writeError(w, "Suites", err)
		return
	}

	if err := httputil.WriteOK(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "Suites", "operation", "WriteOK", "error", err)
	}
}

func (h *RoomHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/rooms", h.List)
	router.GET("/roomsCount", h.Count)
	router.GET("/rooms/:id", h.GetByID)
	router.PATCH("/room/:id", h.Update)
	router.GET("/suite", h.Suites)
}
