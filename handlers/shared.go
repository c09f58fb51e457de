// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-rank/middleware"
)

// GetShared handles GET /shared/{slug}
// Read-only view of a list for anyone holding the share link
func (h *ListHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	h.writeList(w, "share_slug", shareSlug)
}
