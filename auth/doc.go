// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifiers and keys for lists.

# Identifiers

GenerateID returns a random hex string, used for list and item IDs:

	listID, err := auth.GenerateID(16) // 32 hex chars

# Owner Keys

Whoever creates a list receives an owner key. The key is an HMAC of the
list ID, so nothing has to be stored to verify it:

	key := auth.GenerateOwnerKey(listID, cfg.OwnerKeySalt)
	err := auth.ValidateOwnerKey(listID, r.Header.Get("X-Owner-Key"), cfg.OwnerKeySalt)

ValidateOwnerKey uses a constant-time comparison and returns
ErrInvalidOwnerKey on mismatch.

# Share Slugs

A share slug is a short base62 string derived from the list ID. It allows
read-only access to a list's ranking:

	slug := auth.GenerateShareSlug(listID, cfg.ShareSlugSalt)
*/
package auth
