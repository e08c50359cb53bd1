/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseStartTime parses a user supplied first-round start time. Accepts most
// common formats ("2025-06-07 18:00", "Jun 7 6pm", etc).
func ParseStartTime(s string) (time.Time, error) {
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse start time %q: %w",
			s, err)
	}
	return t, nil
}

// AssignRoundTimes returns one start time per round: start for round 1, then
// each subsequent round gap later. A nonpositive gap schedules every round at
// start.
func AssignRoundTimes(s *Schedule, start time.Time, gap time.Duration) []time.Time {
	if gap < 0 {
		gap = 0
	}
	times := make([]time.Time, len(s.Rounds))
	for i := range times {
		times[i] = start.Add(time.Duration(i) * gap)
	}

	return times
}
