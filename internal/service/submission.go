package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/model"
	"storefront/internal/store"
)

var (
	// ErrEndpointNotConfigured blocks submission until an admin sets the
	// script URL. No network call is made.
	ErrEndpointNotConfigured = errors.New("submission endpoint not configured")

	// ErrOutOfStock rejects drafts for products with zero stock before any
	// network call.
	ErrOutOfStock = errors.New("product out of stock")

	// ErrRejected is a business-logic rejection from the endpoint: a bad
	// HTTP status, or a body without the acceptance flag and order id.
	ErrRejected = errors.New("order rejected by endpoint")
)

// submissionState is unexported so the only way between states is the
// transition methods below.
type submissionState int

const (
	stateIdle submissionState = iota
	stateSubmitting
	stateSucceeded
	stateFailed
)

var stateNames = map[submissionState]string{
	stateIdle:       "idle",
	stateSubmitting: "submitting",
	stateSucceeded:  "success",
	stateFailed:     "error",
}

// Submission is the per-draft state machine:
//
//	idle → submitting → success | error
//	error → idle (explicit retry)
//
// Success is terminal; the next draft gets a fresh Submission. Illegal
// transitions return an error instead of moving.
type Submission struct {
	state   submissionState
	err     error
	orderID string
}

// NewSubmission starts in the idle state.
func NewSubmission() *Submission {
	return &Submission{state: stateIdle}
}

// State reports the current state as one of idle, submitting, success, error.
func (m *Submission) State() string { return stateNames[m.state] }

// Err returns the failure recorded by Fail, if any.
func (m *Submission) Err() error { return m.err }

// OrderID returns the server-assigned id recorded by Succeed.
func (m *Submission) OrderID() string { return m.orderID }

// Begin moves idle → submitting.
func (m *Submission) Begin() error {
	if m.state != stateIdle {
		return fmt.Errorf("cannot begin submission from %s", m.State())
	}
	m.state = stateSubmitting
	return nil
}

// Succeed moves submitting → success, recording the assigned order id.
func (m *Submission) Succeed(orderID string) error {
	if m.state != stateSubmitting {
		return fmt.Errorf("cannot succeed from %s", m.State())
	}
	m.state = stateSucceeded
	m.orderID = orderID
	m.err = nil
	return nil
}

// Fail records err and moves to the error state. Guard failures go straight
// from idle to error without a network call; transport and endpoint failures
// arrive from submitting.
func (m *Submission) Fail(err error) error {
	if m.state != stateIdle && m.state != stateSubmitting {
		return fmt.Errorf("cannot fail from %s", m.State())
	}
	m.state = stateFailed
	m.err = err
	return nil
}

// Reset moves error → idle for a user-initiated retry. It is the only back
// edge in the machine.
func (m *Submission) Reset() error {
	if m.state != stateFailed {
		return fmt.Errorf("cannot reset from %s", m.State())
	}
	m.state = stateIdle
	m.err = nil
	return nil
}

// scriptResponse is the acceptance payload the spreadsheet endpoint returns.
type scriptResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// SubmissionService runs order drafts through the submission flow: guard
// checks, one POST to the configured endpoint, and on acceptance a
// write-through append to the order history.
type SubmissionService struct {
	store    *store.Store
	products *ProductService
	orders   *OrderService
	client   *http.Client
	now      func() time.Time
}

// NewSubmissionService creates the submission flow. client may be nil, in
// which case http.DefaultClient is used; no timeout is layered on top of it.
func NewSubmissionService(store *store.Store, products *ProductService, orders *OrderService, client *http.Client) *SubmissionService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SubmissionService{
		store:    store,
		products: products,
		orders:   orders,
		client:   client,
		now:      time.Now,
	}
}

// Submit runs one draft through the state machine and returns the created
// order. The order is persisted before Submit returns, so a confirmation
// page loaded right after navigation already sees it in the history.
func (s *SubmissionService) Submit(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	machine := NewSubmission()

	product, err := s.products.Get(ctx, draft.ProductID)
	if err != nil {
		machine.Fail(err)
		return nil, err
	}

	config := s.store.AdminConfig(ctx)
	if config.ScriptURL == "" {
		machine.Fail(ErrEndpointNotConfigured)
		return nil, ErrEndpointNotConfigured
	}
	if product.Quantity == 0 {
		machine.Fail(ErrOutOfStock)
		return nil, ErrOutOfStock
	}

	draft.Quantity = clampQuantity(draft.Quantity, product.Quantity)
	draft.Product = product.Name

	if err := machine.Begin(); err != nil {
		return nil, err
	}

	accepted, err := s.post(ctx, config.ScriptURL, draft)
	if err != nil {
		machine.Fail(err)
		return nil, err
	}

	order := model.Order{
		ID:        accepted.OrderID,
		Timestamp: s.now(),
		Customer: model.Customer{
			Name:    draft.Name,
			Phone:   draft.Phone,
			Email:   draft.Email,
			Wilaya:  draft.Wilaya,
			Address: draft.Address,
		},
		Product: model.ProductSnapshot{
			Name:     product.Name,
			Quantity: draft.Quantity,
			Price:    product.Price,
		},
		Notes:  draft.Notes,
		Status: model.StatusPending,
	}

	if err := s.orders.Prepend(ctx, order); err != nil {
		machine.Fail(err)
		return nil, err
	}

	machine.Succeed(order.ID)
	slog.Info("order accepted", "id", order.ID, "product", order.Product.Name, "quantity", order.Product.Quantity)
	return &order, nil
}

// post sends the draft to the endpoint and validates the acceptance reply.
// The body goes out as text/plain: the Apps Script deployment the store runs
// against does not answer CORS preflights, and a plain content type avoids
// triggering one in the browser-equivalent flow.
func (s *SubmissionService) post(ctx context.Context, url string, draft model.OrderDraft) (*scriptResponse, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var parsed scriptResponse
	// A non-JSON body is not fatal by itself; the zero value fails the
	// acceptance checks below.
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rejection(parsed.Message, fmt.Sprintf("endpoint returned status %d", resp.StatusCode))
	}
	if !parsed.Success {
		return nil, rejection(parsed.Message, "endpoint did not confirm acceptance")
	}
	if parsed.OrderID == "" {
		return nil, rejection(parsed.Message, "endpoint did not assign an order id")
	}

	return &parsed, nil
}

// rejection wraps ErrRejected with the server's message when it sent one.
func rejection(serverMessage, fallback string) error {
	if serverMessage != "" {
		return fmt.Errorf("%w: %s", ErrRejected, serverMessage)
	}
	return fmt.Errorf("%w: %s", ErrRejected, fallback)
}

// clampQuantity forces the draft quantity into [1, stock].
func clampQuantity(quantity, stock int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > stock {
		return stock
	}
	return quantity
}
