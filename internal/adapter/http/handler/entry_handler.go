package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/bizledger/internal/adapter/http/dto"
	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/usecase"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error)
	CreateEntries(ctx context.Context, inputs []usecase.CreateEntryInput) ([]*domain.Entry, error)
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error)
}

// EntryHandler handles ledger entry HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// Create records a single ledger entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	entry, err := h.entryUC.CreateEntry(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create entry", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// CreateBatch records multiple entries atomically.
func (h *EntryHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if len(req.Entries) == 0 {
		writeError(w, http.StatusBadRequest, "empty batch", "")
		return
	}

	inputs, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	entries, err := h.entryUC.CreateEntries(r.Context(), inputs)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create entries", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// List lists entries matching the query filters. Supported query
// parameters: q, date (YYYY-MM-DD), type, customer_id, limit, offset.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.EntryFilter{
		CustomerID: r.URL.Query().Get("customer_id"),
		Text:       r.URL.Query().Get("q"),
		Type:       domain.EntryType(r.URL.Query().Get("type")),
		Limit:      parseIntQuery(r, "limit", 50),
		Offset:     parseIntQuery(r, "offset", 0),
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date filter", err.Error())
			return
		}
		filter.Date = &date
	}

	entries, err := h.entryUC.ListEntries(r.Context(), filter)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}
