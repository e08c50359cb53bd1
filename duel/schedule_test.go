/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// pairKey builds an order-independent key for an unordered pair.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func namedPlayers(n int) []string {
	players := make([]string, n)
	for i := range players {
		players[i] = fmt.Sprintf("Player%02d", i+1)
	}
	return players
}

// TestScheduleCompleteness verifies that for a range of player counts every
// unordered pair of players meets exactly once across the schedule.
func TestScheduleCompleteness(t *testing.T) {
	for n := 2; n <= 16; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			players := namedPlayers(n)
			sched := GenerateSchedule(players)

			wantRounds := n - 1
			if n%2 == 1 {
				wantRounds = n
			}
			if len(sched.Rounds) != wantRounds {
				t.Fatalf("expected %d rounds, got %d", wantRounds,
					len(sched.Rounds))
			}

			met := make(map[string]int)
			for _, round := range sched.Rounds {
				for _, p := range round.Pairings {
					met[pairKey(p.PlayerA, p.PlayerB)]++
				}
			}
			wantPairs := n * (n - 1) / 2
			if len(met) != wantPairs {
				t.Errorf("expected %d distinct pairs, got %d", wantPairs,
					len(met))
			}
			if sched.TotalPairings() != wantPairs {
				t.Errorf("expected %d total pairings, got %d", wantPairs,
					sched.TotalPairings())
			}
			for key, count := range met {
				if count != 1 {
					t.Errorf("pair %v met %d times; want 1", key, count)
				}
			}
		})
	}
}

// TestScheduleRoundValidity verifies that within each round every player
// appears exactly once, either in a single pairing or as the bye.
func TestScheduleRoundValidity(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 9, 13} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			players := namedPlayers(n)
			sched := GenerateSchedule(players)

			for rIdx, round := range sched.Rounds {
				seen := make(map[string]int)
				for _, p := range round.Pairings {
					if p.PlayerA == p.PlayerB {
						t.Errorf("round %d: self pairing %v", rIdx+1,
							p.PlayerA)
					}
					seen[p.PlayerA]++
					seen[p.PlayerB]++
				}
				if round.Bye != "" {
					seen[round.Bye]++
				}
				if len(seen) != n {
					t.Errorf("round %d: %d players seen; want %d", rIdx+1,
						len(seen), n)
				}
				for name, count := range seen {
					if count != 1 {
						t.Errorf("round %d: %v appears %d times", rIdx+1,
							name, count)
					}
					if strings.Contains(name, "ghost") {
						t.Errorf("round %d: ghost leaked into output", rIdx+1)
					}
				}
				wantPairings := n / 2
				if len(round.Pairings) != wantPairings {
					t.Errorf("round %d: %d pairings; want %d", rIdx+1,
						len(round.Pairings), wantPairings)
				}
			}
		})
	}
}

// TestScheduleByeParity verifies bye behavior: none for even counts, exactly
// one per round for odd counts with every player sitting out at least once.
func TestScheduleByeParity(t *testing.T) {
	for _, n := range []int{2, 4, 10} {
		sched := GenerateSchedule(namedPlayers(n))
		if sched.HasByes() {
			t.Errorf("n=%d: expected no byes", n)
		}
	}

	for _, n := range []int{3, 5, 9} {
		sched := GenerateSchedule(namedPlayers(n))
		byes := make(map[string]int)
		for rIdx, round := range sched.Rounds {
			if round.Bye == "" {
				t.Errorf("n=%d: round %d has no bye", n, rIdx+1)
				continue
			}
			byes[round.Bye]++
		}
		if len(byes) != n {
			t.Errorf("n=%d: %d players received byes; want all %d", n,
				len(byes), n)
		}
	}
}

func TestScheduleDegenerateInputs(t *testing.T) {
	cases := []struct {
		name    string
		players []string
	}{
		{name: "nil", players: nil},
		{name: "empty", players: []string{}},
		{name: "solo", players: []string{"Solo"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sched := GenerateSchedule(c.players)
			if sched == nil {
				t.Fatal("expected non-nil schedule")
			}
			if len(sched.Rounds) != 0 {
				t.Errorf("expected 0 rounds, got %d", len(sched.Rounds))
			}
		})
	}
}

func TestScheduleDeterminism(t *testing.T) {
	players := []string{"Alice", "Bob", "Charlie", "David", "Eve"}
	first := GenerateSchedule(players)
	second := GenerateSchedule(players)
	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different schedules")
	}
}

// TestScheduleFourPlayers pins the exact rotation behavior: position 0 stays
// fixed and positions 1..M-1 rotate by one each round.
func TestScheduleFourPlayers(t *testing.T) {
	sched := GenerateSchedule([]string{"Alice", "Bob", "Charlie", "David"})

	want := []Round{
		{Pairings: []Pairing{
			{PlayerA: "Alice", PlayerB: "David"},
			{PlayerA: "Bob", PlayerB: "Charlie"},
		}},
		{Pairings: []Pairing{
			{PlayerA: "Alice", PlayerB: "Bob"},
			{PlayerA: "Charlie", PlayerB: "David"},
		}},
		{Pairings: []Pairing{
			{PlayerA: "Alice", PlayerB: "Charlie"},
			{PlayerA: "David", PlayerB: "Bob"},
		}},
	}
	if !reflect.DeepEqual(sched.Rounds, want) {
		t.Errorf("rounds = %v; want %v", sched.Rounds, want)
	}
}

func TestScheduleThreePlayers(t *testing.T) {
	sched := GenerateSchedule([]string{"Alice", "Bob", "Charlie"})

	if len(sched.Rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(sched.Rounds))
	}
	wantByes := []string{"Alice", "Charlie", "Bob"}
	for idx, round := range sched.Rounds {
		if len(round.Pairings) != 1 {
			t.Errorf("round %d: expected 1 pairing, got %d", idx+1,
				len(round.Pairings))
		}
		if round.Bye != wantByes[idx] {
			t.Errorf("round %d: bye = %v; want %v", idx+1, round.Bye,
				wantByes[idx])
		}
	}
	if sched.TotalPairings() != 3 {
		t.Errorf("expected 3 total pairings, got %d", sched.TotalPairings())
	}
}
