/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

import (
	"testing"
	"time"
)

func TestParseStartTime(t *testing.T) {
	got, err := ParseStartTime("2025-06-07 18:00")
	if err != nil {
		t.Fatalf("ParseStartTime returned error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 7 ||
		got.Hour() != 18 {
		t.Errorf("unexpected parse result: %v", got)
	}

	if _, err := ParseStartTime("not a time at all zzz"); err == nil {
		t.Error("expected error for unparseable input")
	}
}

func TestAssignRoundTimes(t *testing.T) {
	sched := GenerateSchedule([]string{"Alice", "Bob", "Charlie", "David", "Eve"})
	start := time.Date(2025, time.June, 7, 18, 0, 0, 0, time.UTC)

	times := AssignRoundTimes(sched, start, 30*time.Minute)
	if len(times) != len(sched.Rounds) {
		t.Fatalf("expected %d times, got %d", len(sched.Rounds), len(times))
	}
	for i, ts := range times {
		want := start.Add(time.Duration(i) * 30 * time.Minute)
		if !ts.Equal(want) {
			t.Errorf("round %d time = %v; want %v", i+1, ts, want)
		}
	}

	// nonpositive gap pins every round to start
	for _, ts := range AssignRoundTimes(sched, start, -time.Hour) {
		if !ts.Equal(start) {
			t.Errorf("expected all rounds at %v, got %v", start, ts)
		}
	}
}
