package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "splendico/pkg/errors"
	"splendico/pkg/model"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx answer from the hotel API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d %s: %s", e.Status, e.Code, e.Message)
}

// RoomFilter mirrors the /rooms query parameters. Zero values are omitted.
type RoomFilter struct {
	Category   string
	PriceRange string
	Page       int
	Size       int
}

func (f RoomFilter) params() map[string]string {
	params := map[string]string{}
	if f.Category != "" {
		params["category"] = f.Category
	}
	if f.PriceRange != "" {
		params["priceRange"] = f.PriceRange
	}
	if f.Page > 0 {
		params["page"] = strconv.Itoa(f.Page)
	}
	if f.Size > 0 {
		params["size"] = strconv.Itoa(f.Size)
	}
	return params
}

// HotelClient talks to the splendico API. The credential cookie set by Login
// is kept in the client's cookie jar and sent on every later request.
type HotelClient struct {
	client *resty.Client
}

func NewHotelClient(baseURL string, timeout time.Duration) *HotelClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HotelClient{client: cli}
}

func (c *HotelClient) ListRooms(ctx context.Context, filter RoomFilter) ([]model.Room, error) {
	rooms := []model.Room{}
	err := c.do(c.request(ctx).SetQueryParams(filter.params()).SetResult(&rooms), http.MethodGet, "/rooms")
	return rooms, err
}

func (c *HotelClient) CountRooms(ctx context.Context, filter RoomFilter) (int64, error) {
	filter.Page, filter.Size = 0, 0
	var out struct {
		Count int64 `json:"count"`
	}
	err := c.do(c.request(ctx).SetQueryParams(filter.params()).SetResult(&out), http.MethodGet, "/roomsCount")
	return out.Count, err
}

func (c *HotelClient) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	if err := c.do(c.request(ctx).SetPathParam("id", id).SetResult(&room), http.MethodGet, "/rooms/{id}"); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *HotelClient) UpdateRoom(ctx context.Context, id string, update model.RoomUpdate) (*model.Room, error) {
	var room model.Room
	req := c.request(ctx).SetPathParam("id", id).SetBody(update).SetResult(&room)
	if err := c.do(req, http.MethodPatch, "/room/{id}"); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *HotelClient) Suites(ctx context.Context) ([]model.Room, error) {
	rooms := []model.Room{}
	err := c.do(c.request(ctx).SetResult(&rooms), http.MethodGet, "/suite")
	return rooms, err
}

// CreateBooking sends idempotencyKey as Idempotency-Key when it is not empty,
// so a retried call does not book twice.
func (c *HotelClient) CreateBooking(ctx context.Context, booking model.Booking, idempotencyKey string) (*model.Booking, error) {
	var created model.Booking
	req := c.request(ctx).SetBody(booking).SetResult(&created)
	if idempotencyKey != "" {
		req.SetHeader("Idempotency-Key", idempotencyKey)
	}
	if err := c.do(req, http.MethodPost, "/booking"); err != nil {
		return nil, err
	}
	return &created, nil
}

// BookingsByEmail needs a prior Login with the same email.
func (c *HotelClient) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := c.do(c.request(ctx).SetPathParam("email", email).SetResult(&bookings), http.MethodGet, "/bookings/{email}")
	return bookings, err
}

func (c *HotelClient) DeleteBooking(ctx context.Context, id string) error {
	return c.do(c.request(ctx).SetPathParam("id", id), http.MethodDelete, "/booking/{id}")
}

func (c *HotelClient) CreateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	var created model.Review
	if err := c.do(c.request(ctx).SetBody(review).SetResult(&created), http.MethodPost, "/review"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HotelClient) ReviewsByRoom(ctx context.Context, roomID string) ([]model.Review, error) {
	reviews := []model.Review{}
	err := c.do(c.request(ctx).SetPathParam("roomId", roomID).SetResult(&reviews), http.MethodGet, "/reviews/{roomId}")
	return reviews, err
}

func (c *HotelClient) RecentReviews(ctx context.Context) ([]model.Review, error) {
	reviews := []model.Review{}
	err := c.do(c.request(ctx).SetResult(&reviews), http.MethodGet, "/reviews")
	return reviews, err
}

func (c *HotelClient) Login(ctx context.Context, user model.UserPayload) error {
	return c.do(c.request(ctx).SetBody(user), http.MethodPost, "/jwt")
}

func (c *HotelClient) Logout(ctx context.Context) error {
	return c.do(c.request(ctx), http.MethodGet, "/logout")
}

func (c *HotelClient) request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetError(&apperrors.ErrorResponse{})
}

func (c *HotelClient) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*apperrors.ErrorResponse); ok && body != nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
