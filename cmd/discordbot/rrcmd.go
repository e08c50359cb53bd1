/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/roundrobin-duelbot/duel"
)

type RrSubCommand string

const (
	RrAboutCmd    RrSubCommand = "about"
	RrHelpCmd     RrSubCommand = "help"
	RrPairingsCmd RrSubCommand = "pairings"
	RrRosterCmd   RrSubCommand = "roster"
)

var rrSubCmdHdlrs = map[RrSubCommand]CmdHandler{
	RrAboutCmd:    rrAboutCmdHandler,
	RrHelpCmd:     rrHelpCmdHandler,
	RrPairingsCmd: rrPairingsCmdHandler,
	RrRosterCmd:   rrRosterCmdHandler,
}

func rrCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := rrHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := rrSubCmdHdlrs[RrSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func rrAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func rrHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

// scheduleOpts carries the options shared by the pairings and roster
// subcommands.
type scheduleOpts struct {
	players   string
	url       string
	start     string
	gapMins   int64
	broadcast bool
}

func parseScheduleOpts(inter *discordgo.Interaction) scheduleOpts {
	opts := scheduleOpts{gapMins: 60}
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return opts
	}
	for _, opt := range data.Options[0].Options {
		switch opt.Name {
		case "players":
			opts.players = opt.StringValue()
		case "url":
			opts.url = opt.StringValue()
		case "start":
			opts.start = opt.StringValue()
		case "gap":
			opts.gapMins = opt.IntValue()
		case "broadcast":
			opts.broadcast = opt.BoolValue()
		}
	}
	// enforce bounds
	if opts.gapMins <= 0 {
		opts.gapMins = 60
	} else if opts.gapMins > 24*60 {
		opts.gapMins = 24 * 60
	}

	return opts
}

// rrPairingsCmdHandler handles the /rr pairings command to generate a full
// round robin schedule from a comma separated player list
func rrPairingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	opts := parseScheduleOpts(inter)
	if opts.players == "" {
		resp.Data.Content = "Please provide a list of players."
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}

	players, err := duel.ParseRoster(opts.players)
	if err != nil {
		resp.Data.Content = rosterErrorMessage(err)
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}

	renderSchedule(resp, players, opts, "pairings")

	return resp
}

// rrRosterCmdHandler handles the /rr roster command to generate a round robin
// schedule from the player names found on a signup page
func rrRosterCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	opts := parseScheduleOpts(inter)
	if opts.url == "" {
		resp.Data.Content = "Please provide a signup page URL."
		log.Printf("discordbot.roster: %v", resp.Data.Content)
		return resp
	}

	players, err := duel.FetchRoster(ctx, opts.url)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching roster from %v: %v",
			opts.url, err)
		log.Printf("discordbot.roster: %v", resp.Data.Content)
		return resp
	}

	renderSchedule(resp, players, opts, "roster")

	return resp
}

// renderSchedule generates the schedule and fills in the response content,
// wrapped in a code block for monospace formatting in Discord.
func renderSchedule(resp *discordgo.InteractionResponse, players []string,
	opts scheduleOpts, op string) {

	sched := duel.GenerateSchedule(players)

	var times []time.Time
	if opts.start != "" {
		start, err := duel.ParseStartTime(opts.start)
		if err != nil {
			resp.Data.Content = fmt.Sprintf("Unable to understand start time %q; try a format like \"2025-06-07 18:00\".",
				opts.start)
			log.Printf("discordbot.%v: %v", op, resp.Data.Content)
			return
		}
		times = duel.AssignRoundTimes(sched, start,
			time.Duration(opts.gapMins)*time.Minute)
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(duel.BuildTimedScheduleOutput(sched, times)))

	if opts.broadcast {
		resp.Data.Flags = 0
	}
}

func rosterErrorMessage(err error) string {
	if errors.Is(err, duel.ErrTooFewUniquePlayers) {
		return "Please provide at least 2 unique players."
	} else if errors.Is(err, duel.ErrTooFewPlayers) {
		return "Please provide at least 2 players separated by commas. Example: Alice, Bob, Charlie"
	}
	return fmt.Sprintf("Unable to read player list: %v", err)
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
