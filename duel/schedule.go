/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

// ghost is an internal stand-in appended when the player count is odd so the
// working list is always even. It never appears in an emitted Pairing; its
// opponent in a round instead becomes that round's bye. Player names are
// trimmed by ParseRoster before they reach the engine, so a leading space
// keeps any real name from colliding with it.
const ghost = " <ghost>"

// Pairing is one matchup within a round. PlayerA held the front half of the
// circle when the pairing was generated, PlayerB the back half; the pair is
// otherwise unordered.
type Pairing struct {
	PlayerA string
	PlayerB string
}

// Round is an ordered set of pairings plus at most one bye. Bye is empty when
// every player is paired.
type Round struct {
	Pairings []Pairing
	Bye      string
}

// Schedule is the full round robin produced for one player list. Players
// retains the caller's (deduplicated) list for rendering headers.
type Schedule struct {
	Players []string
	Rounds  []Round
}

// GenerateSchedule builds a complete round robin schedule using the circle
// method: fix the first player, pair position i with position M-1-i, then
// rotate positions 1..M-1 by one after each round. Every unordered pair of
// players meets exactly once across the schedule. With an odd player count one
// player sits out each round as the bye.
//
// Fewer than 2 players yields a schedule with zero rounds; callers are
// expected to have deduplicated the list (see ParseRoster) before calling.
func GenerateSchedule(players []string) *Schedule {
	sched := &Schedule{Players: players}
	if len(players) < 2 {
		return sched
	}

	circle := make([]string, len(players), len(players)+1)
	copy(circle, players)
	if len(circle)%2 == 1 {
		circle = append(circle, ghost)
	}
	m := len(circle)

	for r := 0; r < m-1; r++ {
		var round Round
		for i := 0; i < m/2; i++ {
			a := circle[i]
			b := circle[m-1-i]
			if a == ghost {
				round.Bye = b
			} else if b == ghost {
				round.Bye = a
			} else {
				round.Pairings = append(round.Pairings, Pairing{
					PlayerA: a,
					PlayerB: b,
				})
			}
		}
		sched.Rounds = append(sched.Rounds, round)

		// rotate keeping position 0 fixed:
		// [A, B, C, D] -> [A, C, D, B]
		rotated := make([]string, 0, m)
		rotated = append(rotated, circle[0])
		rotated = append(rotated, circle[2:]...)
		rotated = append(rotated, circle[1])
		circle = rotated
	}

	return sched
}

// TotalPairings returns the number of pairings summed across all rounds.
func (s *Schedule) TotalPairings() int {
	total := 0
	for _, r := range s.Rounds {
		total += len(r.Pairings)
	}
	return total
}

// HasByes reports whether any round in the schedule contains a bye.
func (s *Schedule) HasByes() bool {
	for _, r := range s.Rounds {
		if r.Bye != "" {
			return true
		}
	}
	return false
}
