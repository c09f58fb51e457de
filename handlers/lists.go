// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-rank/auth"
	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/models"
)

type ListHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewListHandler(db *sql.DB, cfg cliparse.Config) *ListHandler {
	return &ListHandler{db: db, cfg: cfg}
}

// CreateList handles POST /lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	listID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate list ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create list")
		return
	}

	ownerKey := auth.GenerateOwnerKey(listID, h.cfg.OwnerKeySalt)
	shareSlug := auth.GenerateShareSlug(listID, h.cfg.ShareSlugSalt)

	_, err = h.db.Exec(`
		INSERT INTO list (id, name, iframe, share_slug, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, listID, name, req.Iframe, shareSlug, time.Now())
	if err != nil {
		slog.Error("failed to insert list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create list")
		return
	}

	slog.Info("list created", "list_id", listID, "share_slug", shareSlug)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateListResponse{
		ListID:    listID,
		OwnerKey:  ownerKey,
		ShareSlug: shareSlug,
	})
}

// AddItem handles POST /lists/{id}/items
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	if !listExists(w, h.db, listID) {
		return
	}

	itemID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate item ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO item (id, list_id, name, iframe, score, wins, losses)
		VALUES ($1, $2, $3, $4, $5, 0, 0)
	`, itemID, listID, name, req.Iframe, models.DefaultScore)
	if err != nil {
		slog.Error("failed to insert item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	slog.Info("item added", "list_id", listID, "item_id", itemID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddItemResponse{
		ItemID: itemID,
	})
}

// GetList handles GET /lists/{id}
// Items come ranked first (by tournament rank), then by score
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	h.writeList(w, "id", listID)
}

// DeleteItem handles DELETE /lists/{id}/items/{item_id}
func (h *ListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	itemID := r.PathValue("item_id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	res, err := h.db.Exec(`DELETE FROM item WHERE id = $1 AND list_id = $2`, itemID, listID)
	if err != nil {
		slog.Error("failed to delete item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	slog.Info("item deleted", "list_id", listID, "item_id", itemID)

	w.WriteHeader(http.StatusNoContent)
}

// authorize checks the owner key for the list in the path
func (h *ListHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	return authorizeList(w, r, h.cfg)
}

// writeList responds with a list and its items, looked up by id or share_slug
func (h *ListHandler) writeList(w http.ResponseWriter, column, value string) {
	var list models.List
	err := h.db.QueryRow(`
		SELECT id, name, iframe, share_slug, created_at
		FROM list
		WHERE `+column+` = $1
	`, value).Scan(&list.ID, &list.Name, &list.Iframe, &list.ShareSlug, &list.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
		return
	}
	if err != nil {
		slog.Error("failed to query list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	items, err := getItems(h.db, list.ID)
	if err != nil {
		slog.Error("failed to query items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListWithItems{
		List:  list,
		Items: items,
	})
}

// authorizeList validates the owner key header against the {id} path value
func authorizeList(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (string, bool) {
	listID := r.PathValue("id")
	if listID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "list_id is required")
		return "", false
	}

	ownerKey := r.Header.Get(middleware.OwnerKeyHeader)
	if err := auth.ValidateOwnerKey(listID, ownerKey, cfg.OwnerKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid owner key")
		return "", false
	}

	return listID, true
}

// listExists writes a 404 or 500 and returns false when the list cannot be found
func listExists(w http.ResponseWriter, q querier, listID string) bool {
	var one int
	err := q.QueryRow(`SELECT 1 FROM list WHERE id = $1`, listID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
		return false
	}
	if err != nil {
		slog.Error("failed to query list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	return true
}
