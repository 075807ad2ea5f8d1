package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/lookbook"
	pdfgen "github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/lookbook/pdf/gofpdf"
)

type LookbookRequest struct {
	SessionID string `json:"sessionId"`
	Guest     struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"guest"`
	Items []map[string]interface{} `json:"items"`
	Note  string                   `json:"note"`
}

// CreateLookbook renders a PDF lookbook from the posted items, falling back
// to the session shortlist when none are given.
func (h *Handlers) CreateLookbook(w http.ResponseWriter, r *http.Request) {
	var req LookbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var items []filters.ProductSummary
	for _, raw := range req.Items {
		items = append(items, filters.NormalizeProduct(raw))
	}
	if len(items) == 0 && req.SessionID != "" {
		snap, found, err := h.Sessions.Get(r.Context(), req.SessionID)
		if err == nil && found {
			items = snap.Shortlist
		}
	}
	if len(items) == 0 {
		http.Error(w, "no items to include", http.StatusBadRequest)
		return
	}

	lb := lookbook.Lookbook{
		Reference: fmt.Sprintf("LB-%d", time.Now().Unix()),
		CreatedAt: time.Now(),
		Guest:     lookbook.Guest{Name: req.Guest.Name, Email: req.Guest.Email},
		Items:     items,
		Note:      req.Note,
	}

	pdfBytes, err := pdfgen.New().Generate(lb)
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", lb.Reference+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
