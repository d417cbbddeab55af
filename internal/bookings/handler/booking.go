package handler

import (
	"net/http"

	"splendico/internal/bookings/service"
	httputil "splendico/pkg/http"
	"splendico/pkg/logger"
	"splendico/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Guard wraps a handle with authentication and ownership checks.
type Guard func(next httprouter.Handle) httprouter.Handle

type BookingHandler struct {
	service      service.BookingService
	ownerByEmail Guard
	log          *logger.Logger
}

// NewBookingHandler needs ownerByEmail to protect GET /bookings/:email; it
// must reject callers whose credential email differs from the path.
func NewBookingHandler(service service.BookingService, ownerByEmail Guard, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:      service,
		ownerByEmail: ownerByEmail,
		log:          log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := httputil.DecodeJSON(r, &booking); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) ListByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookings, err := h.service.ListByEmail(r.Context(), ps.ByName("email"))
	if err != nil {
		h.writeError(w, "ListByEmail", err)
		return
	}

	if err := httputil.WriteOK(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByEmail", "operation", "WriteOK", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/booking", h.Create)
	router.GET("/bookings/:email", h.ownerByEmail(h.ListByEmail))
	router.DELETE("/booking/:id", h.Delete)
}
