// ABOUTME: Entry point for the commtrack CLI, TUI and MCP server
// ABOUTME: Loads config, opens the storage backend and routes to commands
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/commtrack/charm"
	"github.com/harperreed/commtrack/cli"
	"github.com/harperreed/commtrack/config"
	"github.com/harperreed/commtrack/db"
	"github.com/harperreed/commtrack/logging"
	"github.com/harperreed/commtrack/persist"
	"github.com/harperreed/commtrack/reporting"
	"github.com/harperreed/commtrack/store"
	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/tui"
	"go.uber.org/zap"
)

const version = "0.1.0"

// app is everything a command may need.
type app struct {
	tracker *tracker.Tracker
	charm   *charm.Client // nil on the sqlite backend
	logger  *zap.Logger
	close   func() error
}

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	configPath := flag.String("config", "", "Config file (default: ~/.config/commtrack/config.json)")
	backend := flag.String("backend", "", "Storage backend: charm or sqlite (overrides config)")
	dbPath := flag.String("db-path", "", "SQLite database path (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Parse global flags; everything after the command belongs to it
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("commtrack version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backend != "" {
		cfg.Storage.Backend = *backend
	}
	if *dbPath != "" {
		cfg.Storage.SQLitePath = *dbPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	a, err := openApp(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, a, args, os.Stdout)
	stop()

	if err := a.close(); err != nil {
		logger.Warn("failed to close storage", zap.Error(err))
	}
	_ = logger.Sync()
	os.Exit(code)
}

// openApp opens the configured backend and loads the persisted snapshot.
func openApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	var kv persist.KV
	a := &app{logger: logger, close: func() error { return nil }}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDatabase(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		kv = db.NewKVStore(database)
		a.close = database.Close
		logger.Debug("using sqlite backend", zap.String("path", cfg.Storage.SQLitePath))

	default:
		charmCfg, err := charm.LoadConfig()
		if err != nil {
			return nil, err
		}
		charmCfg.Override(cfg.Charm.Host, cfg.Charm.AutoSync)
		client, err := charm.NewClient(charmCfg)
		if err != nil {
			return nil, err
		}
		kv = client
		a.charm = client
		a.close = client.Close
		logger.Debug("using charm backend", zap.String("host", charmCfg.Host), zap.Bool("auto_sync", charmCfg.AutoSync))
	}

	a.tracker = tracker.New(store.New(), reporting.New(), persist.New(kv, logger), tracker.WithLogger(logger))
	if err := a.tracker.Load(); err != nil {
		_ = a.close()
		return nil, fmt.Errorf("failed to load saved state: %w", err)
	}
	return a, nil
}

type command func(*tracker.Tracker, io.Writer, []string) error

var crmCommands = map[string]command{
	"add-company":          cli.AddCompanyCommand,
	"list-companies":       cli.ListCompaniesCommand,
	"update-company":       cli.UpdateCompanyCommand,
	"delete-company":       cli.DeleteCompanyCommand,
	"add-communication":    cli.AddCommunicationCommand,
	"list-communications":  cli.ListCommunicationsCommand,
	"update-communication": cli.UpdateCommunicationCommand,
	"delete-communication": cli.DeleteCommunicationCommand,
	"complete":             cli.CompleteCommand,
	"bulk-complete":        cli.BulkCompleteCommand,
	"engagement":           cli.EngagementCommand,
	"reset":                cli.ResetCommand,
}

var reportCommands = map[string]command{
	"show":        cli.ReportShowCommand,
	"export-csv":  cli.ReportExportCSVCommand,
	"export-xlsx": cli.ReportExportXLSXCommand,
}

var vizCommands = map[string]command{
	"dashboard": cli.VizDashboardCommand,
	"calendar":  cli.VizCalendarCommand,
	"graph":     cli.VizGraphCommand,
}

// run routes a command line and returns the process exit code.
func run(ctx context.Context, a *app, args []string, out io.Writer) int {
	command, commandArgs := args[0], args[1:]

	var err error
	switch command {
	case "mcp":
		err = cli.MCPCommand(ctx, a.tracker, a.logger, version)
	case "tui":
		err = tui.Run(a.tracker)
	case "notify":
		err = cli.NotifyCommand(a.tracker, out, commandArgs)
	case "storage":
		err = cli.StorageCommand(a.charm, out, commandArgs)
	case "crm":
		err = dispatch("crm", crmCommands, a.tracker, out, commandArgs)
	case "report":
		err = dispatch("report", reportCommands, a.tracker, out, commandArgs)
	case "viz":
		err = dispatch("viz", vizCommands, a.tracker, out, commandArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		a.logger.Debug("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(group string, commands map[string]command, t *tracker.Tracker, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a subcommand (see commtrack without arguments for usage)", group)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown %s command: %s", group, args[0])
	}
	return cmd(t, out, args[1:])
}

func printUsage() {
	fmt.Printf(`commtrack v%s - Company communication tracker

USAGE:
  commtrack [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --config <path>        Config file (default: ~/.config/commtrack/config.json)
  --backend <name>       Storage backend: charm (default) or sqlite
  --db-path <path>       SQLite database path (default: ~/.local/share/commtrack/commtrack.db)
  --log-level <level>    debug, info, warn or error

COMMANDS:
  crm                    Manage companies and communications
  notify                 Show overdue, due-today and upcoming communications
  report                 Show and export reporting metrics
  viz                    Dashboard, calendar and graph visualizations
  tui                    Interactive terminal dashboard
  mcp                    Start MCP server for Claude Desktop
  storage                Charm storage status, sync and wipe

CRM COMMANDS:
  commtrack crm add-company         Add a new company
    --name <name>                     Company name (required)
    --location <location>             Location (required)
    --emails <a,b>                    Email addresses (at least one)
    --phones <a,b>                    Phone numbers (at least one)
    --linkedin <url>                  LinkedIn page URL
    --comments <text>                 Comments
    --periodicity <days>              Days between communications (default: 7)

  commtrack crm list-companies      List companies with status and next communication
    --query <text>                    Search by name
    --sort <name|communications>      Sort order (default: name)
    --limit <n>                       Max results (default: 50)

  commtrack crm update-company [flags] <id>    Update a company (same flags as add)
  commtrack crm delete-company <id>            Delete a company and its communications

  commtrack crm add-communication   Schedule a communication
    --company <id>                    Company ID (required)
    --method <id>                     linkedin-post, linkedin-message, email, phone-call, other
    --date <YYYY-MM-DD>               Date (required)
    --notes <text>                    Notes
    --completed                       Record as already completed

  commtrack crm list-communications [--company <id>] [--pending]
  commtrack crm update-communication [--method] [--date] [--notes] [--completed] <id>
  commtrack crm delete-communication <id>
  commtrack crm complete <id>                   Mark one communication completed
  commtrack crm bulk-complete <id> [<id>...]    Mark several communications completed
  commtrack crm engagement --method <id> [--failed]   Record an engagement outcome
  commtrack crm reset [--confirm] [--reporting-only]  Clear data

REPORT COMMANDS:
  commtrack report show                         Print the metric tables
  commtrack report export-csv [--dir <dir>]     Write CSV files
  commtrack report export-xlsx [--output <f>]   Write the Excel report workbook

VIZ COMMANDS:
  commtrack viz dashboard                       ASCII dashboard
  commtrack viz calendar [--month YYYY-MM]      Month calendar
  commtrack viz graph [--output <file>] [id]    Graphviz DOT of companies and communications

STORAGE COMMANDS (charm backend):
  commtrack storage status
  commtrack storage sync
  commtrack storage auto-sync --enable|--disable
  commtrack storage wipe --confirm

EXAMPLES:
  # Add a company and schedule an email
  commtrack crm add-company --name "Acme" --location "Pune" --emails hi@acme.com --phones 555-1234
  commtrack crm add-communication --company <id> --method email --date 2025-01-10

  # What needs attention today
  commtrack notify

  # Start MCP server for Claude Desktop
  commtrack mcp

`, version)
}
