package handler

import (
	"net/http"

	"splendico/internal/reviews/service"
	httputil "splendico/pkg/http"
	"splendico/pkg/logger"
	"splendico/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(service service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var review model.Review
	if err := httputil.DecodeJSON(r, &review); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := h.service.Create(r.Context(), &review); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, review); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReviewHandler) ListByRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reviews, err := h.service.ListByRoom(r.Context(), ps.ByName("roomId"))
	if err != nil {
		h.writeError(w, "ListByRoom", err)
		return
	}

	if err := httputil.WriteOK(w, reviews); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByRoom", "operation", "WriteOK", "error", err)
	}
}

func (h *ReviewHandler) Recent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reviews, err := h.service.Recent(r.Context())
	if err != nil {
		h.writeError(w, "Recent", err)
		return
	}

	if err := httputil.WriteOK(w, reviews); err != nil {
		h.log.Error("failed to write success response", "handler", "Recent", "operation", "WriteOK", "error", err)
	}
}

func (h *ReviewHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ReviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/review", h.Create)
	router.GET("/reviews/:roomId", h.ListByRoom)
	router.GET("/reviews", h.Recent)
}
