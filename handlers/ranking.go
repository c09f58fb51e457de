// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/danielhkuo/quickly-rank/db"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/google/uuid"
)

// Elo K-factor
const eloK = 32.0

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// EloDelta returns the points the winner takes from the loser.
// Beating a stronger opponent is worth more than beating a weaker one.
func EloDelta(winnerScore, loserScore int) int {
	expected := 1 + math.Pow(10, float64(winnerScore-loserScore)/400)
	return int(eloK / expected)
}

// UpdateStats applies one head-to-head result to both items
func UpdateStats(winner, loser models.Item) (models.Item, models.Item) {
	diff := EloDelta(winner.Score, loser.Score)
	winner.Score += diff
	winner.Wins++
	loser.Score -= diff
	loser.Losses++
	return winner, loser
}

// applyMatch records a decision between two items of the same list and
// stores their new Elo stats. Missing items give sql.ErrNoRows.
//
// Both rows stay locked until tx ends, so concurrent decisions on the same
// item apply one after another. Locks are taken in id order.
func applyMatch(tx *sql.Tx, dbType, listID, winnerID, loserID, mode string) (models.Item, models.Item, error) {
	ids := []string{winnerID, loserID}
	slices.Sort(ids)

	loaded := make(map[string]models.Item, len(ids))
	for _, id := range ids {
		item, err := scanItem(tx.QueryRow(itemQuery(dbType, true), id, listID))
		if err != nil {
			return models.Item{}, models.Item{}, fmt.Errorf("failed to load item %s: %w", id, err)
		}
		loaded[id] = item
	}

	winner, loser := UpdateStats(loaded[winnerID], loaded[loserID])

	for _, item := range []models.Item{winner, loser} {
		_, err := tx.Exec(`
			UPDATE item SET score = $1, wins = $2, losses = $3
			WHERE id = $4
		`, item.Score, item.Wins, item.Losses, item.ID)
		if err != nil {
			return models.Item{}, models.Item{}, fmt.Errorf("failed to update item %s: %w", item.ID, err)
		}
	}

	_, err := tx.Exec(`
		INSERT INTO match_result (id, list_id, winner_id, loser_id, mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), listID, winner.ID, loser.ID, mode, time.Now())
	if err != nil {
		return models.Item{}, models.Item{}, fmt.Errorf("failed to insert match result: %w", err)
	}

	return winner, loser, nil
}

// persistRanks replaces the ranks of a list with the final standings of a
// tournament. Items that did not take part lose their rank.
func persistRanks(tx *sql.Tx, listID string, standings []models.Standing) error {
	if _, err := tx.Exec(`UPDATE item SET rank = NULL WHERE list_id = $1`, listID); err != nil {
		return fmt.Errorf("failed to clear ranks: %w", err)
	}

	for _, s := range standings {
		_, err := tx.Exec(`
			UPDATE item SET rank = $1
			WHERE id = $2 AND list_id = $3
		`, s.Rank, s.ItemID, listID)
		if err != nil {
			return fmt.Errorf("failed to set rank of %s: %w", s.ItemID, err)
		}
	}

	return nil
}

// itemQuery selects one item of a list by id. With lock set the row is held
// FOR UPDATE on Postgres; SQLite runs one transaction at a time already.
func itemQuery(dbType string, lock bool) string {
	query := `
		SELECT id, list_id, name, iframe, score, wins, losses, rank
		FROM item
		WHERE id = $1 AND list_id = $2`
	if lock && dbType == db.TypePostgres {
		query += `
		FOR UPDATE`
	}
	return query
}

func scanItem(row *sql.Row) (models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID, &item.ListID, &item.Name, &item.Iframe,
		&item.Score, &item.Wins, &item.Losses, &item.Rank,
	)
	return item, err
}

// getItem loads one item of a list
func getItem(q querier, listID, itemID string) (models.Item, error) {
	return scanItem(q.QueryRow(itemQuery("", false), itemID, listID))
}

// getItems loads the items of a list, ranked first, then by score
func getItems(q querier, listID string) ([]models.Item, error) {
	rows, err := q.Query(`
		SELECT id, list_id, name, iframe, score, wins, losses, rank
		FROM item
		WHERE list_id = $1
		ORDER BY CASE WHEN rank IS NULL THEN 1 ELSE 0 END, rank, score DESC, name, id
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.ListID, &item.Name, &item.Iframe,
			&item.Score, &item.Wins, &item.Losses, &item.Rank,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
