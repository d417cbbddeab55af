package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	apperrors "splendico/pkg/errors"
	"splendico/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type stubAPI struct {
	mu             sync.Mutex
	lastQuery      url.Values
	idempotencyKey string
}

func (s *stubAPI) query() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

func (s *stubAPI) key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idempotencyKey
}

func (s *stubAPI) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = r.URL.Query()
	s.idempotencyKey = r.Header.Get("Idempotency-Key")
}

func (s *stubAPI) router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/rooms", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.record(r)
		writeJSON(w, http.StatusOK, []model.Room{{ID: "r1", Category: "SUITE", Price: 300}})
	})
	router.GET("/roomsCount", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.record(r)
		writeJSON(w, http.StatusOK, map[string]int64{"count": 7})
	})
	router.GET("/rooms/:id", func(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
		if ps.ByName("id") != "r1" {
			_ = apperrors.WriteError(w, apperrors.NotFoundWithID("Room", ps.ByName("id")))
			return
		}
		writeJSON(w, http.StatusOK, model.Room{ID: "r1"})
	})
	router.PATCH("/room/:id", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		var update model.RoomUpdate
		_ = json.NewDecoder(r.Body).Decode(&update)
		writeJSON(w, http.StatusOK, model.Room{ID: ps.ByName("id"), Available: *update.Available})
	})
	router.POST("/booking", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.record(r)
		var b model.Booking
		_ = json.NewDecoder(r.Body).Decode(&b)
		b.ID = "b1"
		writeJSON(w, http.StatusCreated, b)
	})
	router.GET("/bookings/:email", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value == "" {
			_ = apperrors.WriteError(w, apperrors.Unauthorized("Unauthorized access"))
			return
		}
		if cookie.Value != ps.ByName("email") {
			_ = apperrors.WriteError(w, apperrors.Forbidden("Forbidden access"))
			return
		}
		writeJSON(w, http.StatusOK, []model.Booking{{ID: "b1", Email: ps.ByName("email")}})
	})
	router.DELETE("/booking/:id", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.POST("/jwt", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var user model.UserPayload
		_ = json.NewDecoder(r.Body).Decode(&user)
		http.SetCookie(w, &http.Cookie{Name: "token", Value: user.Email, Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
	router.GET("/logout", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
	router.GET("/reviews", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		writeJSON(w, http.StatusOK, []model.Review{{ID: "v1", Rating: 5}})
	})
	router.GET("/suite", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	return router
}

func newTestClient(t *testing.T) (*HotelClient, *stubAPI) {
	t.Helper()
	api := &stubAPI{}
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)
	return NewHotelClient(srv.URL+"/", 5*time.Second), api
}

func TestListRooms_SendsFilter(t *testing.T) {
	c, api := newTestClient(t)

	rooms, err := c.ListRooms(context.Background(), RoomFilter{Category: "SUITE", PriceRange: "100-400", Page: 2, Size: 3})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "SUITE", api.query().Get("category"))
	assert.Equal(t, "100-400", api.query().Get("priceRange"))
	assert.Equal(t, "2", api.query().Get("page"))
	assert.Equal(t, "3", api.query().Get("size"))
}

func TestCountRooms_DropsPagination(t *testing.T) {
	c, api := newTestClient(t)

	count, err := c.CountRooms(context.Background(), RoomFilter{Category: "DELUXE", Page: 4, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)
	assert.Equal(t, "DELUXE", api.query().Get("category"))
	assert.False(t, api.query().Has("page"))
	assert.False(t, api.query().Has("size"))
}

func TestGetRoom_NotFound(t *testing.T) {
	c, _ := newTestClient(t)

	room, err := c.GetRoom(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", room.ID)

	_, err = c.GetRoom(context.Background(), "missing")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, apperrors.CodeNotFound, apiErr.Code)
	assert.Equal(t, "Room not found", apiErr.Message)
}

func TestUpdateRoom(t *testing.T) {
	c, _ := newTestClient(t)
	status := "Unavailable"

	room, err := c.UpdateRoom(context.Background(), "r9", model.RoomUpdate{Available: &status})
	require.NoError(t, err)
	assert.Equal(t, "r9", room.ID)
	assert.Equal(t, "Unavailable", room.Available)
}

func TestCreateBooking_IdempotencyKey(t *testing.T) {
	c, api := newTestClient(t)

	created, err := c.CreateBooking(context.Background(), model.Booking{Email: "alice@example.com"}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	assert.Equal(t, "key-1", api.key())

	_, err = c.CreateBooking(context.Background(), model.Booking{Email: "alice@example.com"}, "")
	require.NoError(t, err)
	assert.Empty(t, api.key())
}

func TestLoginCookieFlow(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.BookingsByEmail(ctx, "alice@example.com")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	require.NoError(t, c.Login(ctx, model.UserPayload{Email: "alice@example.com"}))

	bookings, err := c.BookingsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	_, err = c.BookingsByEmail(ctx, "bob@example.com")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	require.NoError(t, c.Logout(ctx))
	_, err = c.BookingsByEmail(ctx, "alice@example.com")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestDeleteBookingAndReviews(t *testing.T) {
	c, _ := newTestClient(t)

	require.NoError(t, c.DeleteBooking(context.Background(), "b1"))

	reviews, err := c.RecentReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestNonJSONErrorBody(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Suites(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}
