/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

import (
	"fmt"
	"strings"
	"time"
)

// BuildScheduleOutput formats a schedule into aligned string output suitable
// for monospace display.
func BuildScheduleOutput(s *Schedule) string {
	return BuildTimedScheduleOutput(s, nil)
}

// BuildTimedScheduleOutput is BuildScheduleOutput with an optional start time
// per round (see AssignRoundTimes) appended to each round heading. A nil or
// short times slice leaves the remaining headings untimed.
func BuildTimedScheduleOutput(s *Schedule, times []time.Time) string {
	if len(s.Rounds) == 0 {
		return "Need at least 2 players to generate pairings."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Players (%v): %v\n", len(s.Players),
		strings.Join(s.Players, ", ")))
	sb.WriteString(fmt.Sprintf("Rounds: %v\n", len(s.Rounds)))
	if s.HasByes() {
		sb.WriteString("Odd number of players; one player sits out each round.\n")
	}
	sb.WriteString("\n")

	// Compute the board column width across the whole schedule so every
	// round's table lines up
	maxB := len("1.")
	for _, round := range s.Rounds {
		if l := len(fmt.Sprintf("%v.", len(round.Pairings))); l > maxB {
			maxB = l
		}
	}

	for idx, round := range s.Rounds {
		if idx < len(times) && !times[idx].IsZero() {
			sb.WriteString(fmt.Sprintf("Round %v (%v):\n", idx+1,
				times[idx].Format("Mon Jan 2 3:04pm")))
		} else {
			sb.WriteString(fmt.Sprintf("Round %v:\n", idx+1))
		}
		for i, p := range round.Pairings {
			sb.WriteString(fmt.Sprintf("%-*s  %s vs %s\n", maxB,
				fmt.Sprintf("%v.", i+1), p.PlayerA, p.PlayerB))
		}
		if round.Bye != "" {
			sb.WriteString(fmt.Sprintf("%-*s  %s (bye)\n", maxB, "",
				round.Bye))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
