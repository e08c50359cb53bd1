/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/roundrobin-duelbot/duel"
)

var (
	urlsFlag  = flag.String("url", "", "comma separated signup page URL(s) to read player names from")
	startFlag = flag.String("start", "", "first round start time (e.g. \"2025-06-07 18:00\")")
	gapFlag   = flag.Duration("gap", time.Hour, "time between round start times")
)

func main() {
	players := parseArgs()

	sched := duel.GenerateSchedule(players)

	var times []time.Time
	if *startFlag != "" {
		start, err := duel.ParseStartTime(*startFlag)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		times = duel.AssignRoundTimes(sched, start, *gapFlag)
	}

	fmt.Print(duel.BuildTimedScheduleOutput(sched, times))
}

// parseArgs returns the player list from either the -url flag or the single
// positional argument.
func parseArgs() []string {
	flag.Usage = usage
	flag.Parse()

	if *urlsFlag != "" {
		if flag.NArg() != 0 {
			flag.Usage()
			os.Exit(1)
		}
		players, err := duel.FetchRosters(context.Background(),
			strings.Split(*urlsFlag, ","))
		if err != nil {
			log.Fatalf("%v: Failed to retrieve roster: %v", os.Args[0], err)
		}
		return players
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	players, err := duel.ParseRoster(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	return players
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage:\n\n%v [flags] \"<player>, <player>, ...\"\n\nGenerate a complete round robin schedule for the listed players.\nAlternatively specify -url to read the player list from a signup page.\n\nFlags:\n",
		os.Args[0])
	flag.PrintDefaults()
}
