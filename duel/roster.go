/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

import (
	"errors"
	"strings"
)

var (
	// ErrTooFewPlayers indicates the roster text contained fewer than 2
	// non-empty entries.
	ErrTooFewPlayers = errors.New("need at least 2 players")

	// ErrTooFewUniquePlayers indicates the roster text contained 2 or more
	// entries but fewer than 2 remained after case-insensitive dedup.
	ErrTooFewUniquePlayers = errors.New("need at least 2 unique players")
)

// ParseRoster parses free-form roster text into an ordered list of unique
// player names. Entries are separated by commas or newlines; surrounding
// whitespace is trimmed and empty entries are discarded. Duplicate names
// (compared case-insensitively) keep their first occurrence's spelling and
// position.
func ParseRoster(text string) ([]string, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var players []string
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			players = append(players, name)
		}
	}
	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}

	unique := dedupePlayers(players)
	if len(unique) < 2 {
		return nil, ErrTooFewUniquePlayers
	}

	return unique, nil
}

// dedupePlayers removes case-insensitive duplicates preserving first
// occurrence order.
func dedupePlayers(players []string) []string {
	seen := make(map[string]bool, len(players))
	var unique []string
	for _, p := range players {
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}

	return unique
}
