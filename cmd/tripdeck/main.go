package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"tripdeck/internal/auth"
	"tripdeck/internal/cli"
	"tripdeck/internal/reorder"
	"tripdeck/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data path. A .db extension selects the SQLite backend." type:"path"`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive itinerary." default:"1"`
	Day      cli.DayCmd      `cmd:"" help:"Show one day, or the whole trip."`
	Login    cli.LoginCmd    `cmd:"" help:"Sign in with the trip passcode."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Sign out."`
	Move     cli.ItemMoveCmd `cmd:"" help:"Move an item to a new slot in its day."`
	Expenses cli.ExpensesCmd `cmd:"" help:"List all trip costs."`
	Currency cli.CurrencyCmd `cmd:"" help:"Show or change the trip currency."`
	Map      cli.MapCmd      `cmd:"" help:"Print a maps link for an item's location."`
	Check    cli.CheckCmd    `cmd:"" help:"Validate the schedule for inconsistencies."`
	Reset    cli.ResetCmd    `cmd:"" help:"Restore the built-in itinerary."`
	Item     struct {
		Add    cli.ItemAddCmd    `cmd:"" help:"Add an itinerary item."`
		Edit   cli.ItemEditCmd   `cmd:"" help:"Edit an itinerary item."`
		Delete cli.ItemDeleteCmd `cmd:"" help:"Delete an itinerary item."`
	} `cmd:"" help:"Manage itinerary items."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the itinerary to a JSON file."`
		List    cli.BackupListCmd    `cmd:"" help:"List saved snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot (sign-in required)."`
	} `cmd:"" help:"Snapshot and restore the itinerary."`
	Cost struct {
		Add    cli.CostAddCmd    `cmd:"" help:"Record a cost against an item."`
		List   cli.CostListCmd   `cmd:"" help:"List an item's costs."`
		Delete cli.CostDeleteCmd `cmd:"" help:"Remove a cost (sign-in required)."`
	} `cmd:"" help:"Track spending."`
}

func main() {
	// Optional, lets TRIPDECK_PASSCODE live in a local .env.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("tripdeck"),
		kong.Description("Shared trip itinerary and expense tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if CLI.Data == "" {
		CLI.Data = store.DefaultDataDir()
	}

	var kv store.KV
	var err error
	if strings.HasSuffix(CLI.Data, ".db") {
		kv, err = store.NewSQLiteKV(CLI.Data)
	} else {
		kv, err = store.NewDiskvKV(CLI.Data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gate, err := auth.NewGate(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:  st,
		Gate:   gate,
		Engine: reorder.New(st),
		Data:   CLI.Data,
	}

	runErr := ctx.Run(appCtx)
	if cerr := st.Close(); cerr != nil && runErr == nil {
		runErr = cerr
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
