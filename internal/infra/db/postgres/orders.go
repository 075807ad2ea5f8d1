package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// Orders resolves order timelines and files return requests. The milestones
// column is a JSON array written by the fulfillment pipeline.
type Orders struct {
	db *DB
}

func NewOrders(db *DB) *Orders { return &Orders{db: db} }

var ErrOrderNotFound = errors.New("order not found")

func (o *Orders) LookupStatus(ctx context.Context, q provider.OrderQuery, requestID string) (provider.OrderStatus, error) {
	var row pgx.Row
	switch {
	case q.OrderID != "":
		row = o.db.Pool.QueryRow(ctx,
			`SELECT order_number, milestones FROM orders WHERE id = $1`, q.OrderID)
	case q.OrderNumber != "":
		row = o.db.Pool.QueryRow(ctx,
			`SELECT order_number, milestones FROM orders WHERE order_number = $1`,
			normalizeOrderNumber(q.OrderNumber))
	case q.Email != "" && q.PostalCode != "":
		row = o.db.Pool.QueryRow(ctx,
			`SELECT order_number, milestones FROM orders
			 WHERE lower(email) = lower($1) AND replace(upper(postal_code), ' ', '') = replace(upper($2), ' ', '')
			 ORDER BY created_at DESC LIMIT 1`,
			q.Email, q.PostalCode)
	default:
		return provider.OrderStatus{}, fmt.Errorf("order lookup: no identifying details")
	}

	var (
		reference string
		raw       []byte
	)
	if err := row.Scan(&reference, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provider.OrderStatus{}, ErrOrderNotFound
		}
		return provider.OrderStatus{}, fmt.Errorf("order lookup: %w", err)
	}

	var entries []session.TimelineEntry
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return provider.OrderStatus{}, fmt.Errorf("order %s milestones: %w", reference, err)
		}
	}
	return provider.OrderStatus{Reference: reference, Entries: entries}, nil
}

func (o *Orders) FileReturn(ctx context.Context, r provider.ReturnRequest, requestID string) (provider.ReturnReceipt, error) {
	if r.OptionID == "" {
		return provider.ReturnReceipt{}, fmt.Errorf("file return: missing option")
	}
	_, err := o.db.Pool.Exec(ctx,
		`INSERT INTO return_requests (option_id, order_id, order_number, note)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)`,
		r.OptionID, r.OrderID, normalizeOrderNumber(r.OrderNumber), r.Note)
	if err != nil {
		return provider.ReturnReceipt{}, fmt.Errorf("file return: %w", err)
	}
	msg := "Your request is in — we'll email you a prepaid label shortly."
	if r.OrderNumber != "" {
		msg = fmt.Sprintf("Your %s request for order %s is in. A prepaid label is on its way.", r.OptionID, r.OrderNumber)
	}
	return provider.ReturnReceipt{Message: msg}, nil
}

func normalizeOrderNumber(n string) string {
	return strings.ToUpper(strings.TrimSpace(n))
}

// Support persists stylist tickets and CSAT responses.
type Support struct {
	db *DB
}

func NewSupport(db *DB) *Support { return &Support{db: db} }

func (s *Support) CreateStylistTicket(ctx context.Context, t provider.Ticket, requestID string) (provider.TicketReceipt, error) {
	shortlist, err := json.Marshal(t.Shortlist)
	if err != nil {
		return provider.TicketReceipt{}, fmt.Errorf("stylist ticket shortlist: %w", err)
	}
	_, err = s.db.Pool.Exec(ctx,
		`INSERT INTO stylist_tickets (session_id, name, email, phone, note, shortlist)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.SessionID, t.Name, t.Email, t.Phone, t.Note, shortlist)
	if err != nil {
		return provider.TicketReceipt{}, fmt.Errorf("stylist ticket: %w", err)
	}
	return provider.TicketReceipt{}, nil
}

func (s *Support) SubmitCsat(ctx context.Context, r provider.CsatResponse, requestID string) error {
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO csat_responses (session_id, intent, rating, order_number)
		 VALUES ($1, $2, $3, NULLIF($4, ''))`,
		r.SessionID, r.Intent, r.Rating, r.OrderNumber)
	if err != nil {
		return fmt.Errorf("csat: %w", err)
	}
	return nil
}
