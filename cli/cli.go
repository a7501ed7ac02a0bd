package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"worktime/config"
	"worktime/storage"
	"worktime/tally"
)

// ErrExit ends the interactive loop.
var ErrExit = errors.New("exit")

type command struct {
	name        string
	description string
}

var commands = []command{
	{"help", "shows all usable commands"},
	{"status", "shows basic information about the file"},
	{"start", "creates new \"start\" timestamp [--at HH:MM]"},
	{"stop", "creates new \"stop\" timestamp [--at HH:MM]"},
	{"today", "calculates time spent today"},
	{"days", "calculates time spent (day by day)"},
	{"weeks", "calculates time spent (week by week)"},
	{"months", "calculates time spent (month by month)"},
	{"years", "calculates time spent (year by year)"},
	{"terms", "calculates time spent (start to stop)"},
	{"report", "calculates time spent between dates --from YYYY-MM-DD [--to YYYY-MM-DD]"},
	{"erase", "removes last timestamp"},
	{"delete", "deletes the whole file"},
	{"generate", "prints a random log of N timestamps"},
	{"tui", "opens the dashboard"},
	{"exit", "exits the app"},
}

// App runs tracker commands against a store.
type App struct {
	Store    *storage.Store
	Config   config.Config
	Logger   *zap.Logger
	Notifier Notifier
	Out      io.Writer
	Now      func() time.Time
}

// New returns an App writing to stdout.
func New(cfg config.Config, store *storage.Store, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		Store:    store,
		Config:   cfg,
		Logger:   logger,
		Notifier: NewNotifier(cfg.Notify),
		Out:      os.Stdout,
		Now:      storage.Now,
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

func (a *App) options() tally.Options {
	return tally.Options{ShowEmpty: a.Config.ShowEmpty}
}

// CommandHelp prints out usable commands.
func (a *App) CommandHelp() error {
	for _, c := range commands {
		if _, err := fmt.Fprintf(a.Out, "%-9s - %s\n", c.name, c.description); err != nil {
			return fmt.Errorf("failed to print help: %w", err)
		}
	}
	return nil
}

// CommandStatus shows basic information about the log file.
func (a *App) CommandStatus() error {
	st, err := a.Store.Status()
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}
	if !st.Exists {
		a.printf("File %q doesn't exist. Making a new \"start\" timestamp will create it.\n", st.Path)
		return nil
	}

	loc := a.Now().Location()
	a.printf("File %q contains %d timestamps.\n", st.Path, st.Count)
	if st.First != nil {
		a.printf("First timestamp: %s\n", st.First.Format(loc))
	}
	if st.Last != nil && st.Count > 1 {
		a.printf("Last timestamp: %s\n", st.Last.Format(loc))
	}
	if st.Open {
		a.printf("File doesn't end with a stop timestamp. Calculations will use current time instead.\n")
	}
	return nil
}

// CommandMark appends a start or stop event at atTime (now when empty).
func (a *App) CommandMark(kind storage.Kind, atTime string) error {
	now := a.Now()
	when, err := storage.ParseWhen(atTime, now)
	if err != nil {
		return err
	}

	event, err := a.Store.Append(kind, when.Unix())
	if err != nil {
		return fmt.Errorf("failed to create %s timestamp: %w", kind, err)
	}
	a.printf("New timestamp: %s\n", event.Format(now.Location()))

	title := "Timer started"
	if kind == storage.Stop {
		title = "Timer stopped"
	}
	if err := a.Notifier.Notify(title, when.Format("15:04")); err != nil {
		a.Logger.Warn("notification failed", zap.Error(err))
	}
	return nil
}

// CommandBuckets prints the per-bucket report for g.
func (a *App) CommandBuckets(g tally.Granularity) error {
	events, err := a.Store.Load()
	if err != nil {
		return err
	}

	report, err := tally.Bucket(events, g, a.Now(), a.options())
	if err != nil {
		return err
	}
	a.Logger.Debug("bucketed log", zap.Stringer("granularity", g), zap.Int("rows", len(report.Rows)))
	a.printf("%s\n", RenderReport(report))
	return nil
}

// CommandToday prints the time spent today.
func (a *App) CommandToday() error {
	events, err := a.Store.Load()
	if err != nil {
		return err
	}

	report, err := tally.Today(events, a.Now(), a.options())
	if err != nil {
		return err
	}
	a.printf("%s\n", RenderReport(report))
	return nil
}

// CommandTerms prints every session of the log.
func (a *App) CommandTerms() error {
	events, err := a.Store.Load()
	if err != nil {
		return err
	}

	now := a.Now()
	intervals, total, err := tally.Terms(events, now)
	if err != nil {
		return err
	}
	a.printf("%s\n", RenderIntervals(intervals, total, now.Location()))
	return nil
}

// CommandReport prints sessions within [fromDate, toDate].
func (a *App) CommandReport(fromDate, toDate string) error {
	now := a.Now()
	loc := now.Location()

	from := storage.StartOfDay(now)
	if fromDate != "" {
		parsed, err := storage.ParseDate(fromDate, loc)
		if err != nil {
			return fmt.Errorf("invalid from date: %w", err)
		}
		from = parsed
	}
	to := from
	if toDate != "" {
		parsed, err := storage.ParseDate(toDate, loc)
		if err != nil {
			return fmt.Errorf("invalid to date: %w", err)
		}
		to = parsed
	}
	if to.Before(from) {
		return fmt.Errorf("report end date cannot be before start date")
	}

	events, err := a.Store.Load()
	if err != nil {
		return err
	}
	intervals, total, err := tally.Range(events, from, to, now)
	if err != nil {
		return err
	}

	a.printf("Report %s to %s\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
	a.printf("%s\n", RenderIntervals(intervals, total, loc))
	return nil
}

// CommandErase removes the last timestamp.
func (a *App) CommandErase() error {
	event, err := a.Store.EraseLast()
	if err != nil {
		return fmt.Errorf("failed to erase timestamp: %w", err)
	}
	a.printf("Removed timestamp: %s\n", event.Format(a.Now().Location()))
	return nil
}

// CommandDelete removes the log file.
func (a *App) CommandDelete() error {
	if err := a.Store.Delete(); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	a.printf("File %q removed.\n", a.Store.Path())
	return nil
}

// CommandGenerate prints a random log of count events ending now.
func (a *App) CommandGenerate(count int) error {
	now := a.Now()
	r := rand.New(rand.NewSource(now.UnixNano()))
	content, err := storage.Encode(storage.Generate(r, count, now.Unix(), 100_000))
	if err != nil {
		return err
	}
	_, err = a.Out.Write(content)
	return err
}

// flagValue returns the value following name in args.
func flagValue(args []string, name string) (string, bool, error) {
	for i := 0; i < len(args); i++ {
		if args[i] == name {
			if i+1 >= len(args) {
				return "", true, fmt.Errorf("%s requires a value", name)
			}
			return args[i+1], true, nil
		}
	}
	return "", false, nil
}

// Run parses command-line arguments and executes the appropriate command.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command specified")
	}

	command := args[0]
	remaining := args[1:]
	a.Logger.Debug("running command", zap.String("command", command), zap.Strings("args", remaining))

	switch command {
	case "help":
		return a.CommandHelp()

	case "status":
		return a.CommandStatus()

	case "start", "stop":
		atTime, _, err := flagValue(remaining, "--at")
		if err != nil {
			return err
		}
		return a.CommandMark(storage.Kind(command), atTime)

	case "today":
		return a.CommandToday()

	case "days", "weeks", "months", "years":
		g, err := tally.ParseGranularity(command)
		if err != nil {
			return err
		}
		return a.CommandBuckets(g)

	case "terms":
		return a.CommandTerms()

	case "report":
		fromDate, hasFrom, err := flagValue(remaining, "--from")
		if err != nil {
			return err
		}
		toDate, _, err := flagValue(remaining, "--to")
		if err != nil {
			return err
		}
		if !hasFrom && toDate != "" {
			return fmt.Errorf("--to requires --from")
		}
		return a.CommandReport(fromDate, toDate)

	case "erase":
		return a.CommandErase()

	case "delete":
		return a.CommandDelete()

	case "generate":
		count := 20
		if len(remaining) > 0 {
			n, err := strconv.Atoi(remaining[0])
			if err != nil || n < 0 {
				return fmt.Errorf("generate requires a non-negative count")
			}
			count = n
		}
		return a.CommandGenerate(count)

	case "tui":
		return fmt.Errorf("tui cannot be opened from the prompt")

	case "exit", "quit":
		return ErrExit

	default:
		return fmt.Errorf("command %q doesn't exist. Use \"help\" to get list of all commands", command)
	}
}

// Interactive reads commands line by line until exit or end of input.
// Errors are printed and the loop continues.
func (a *App) Interactive(in io.Reader) error {
	prompt := false
	if f, ok := in.(*os.File); ok {
		prompt = term.IsTerminal(int(f.Fd()))
	}

	if prompt {
		a.printf("Usable commands:\n")
		if err := a.CommandHelp(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			a.printf("Enter command: ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		err := a.Run(fields)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			a.printf("Error: %v\n", err)
		}
		a.printf("\n")
	}
}
