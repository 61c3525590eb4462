package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Tanapat0215/Exit-Exam68/internal/config"
	"github.com/Tanapat0215/Exit-Exam68/internal/domain"
	"github.com/Tanapat0215/Exit-Exam68/internal/repo"
	"github.com/Tanapat0215/Exit-Exam68/internal/service"
	"github.com/Tanapat0215/Exit-Exam68/pkg/logger"
)

// Application wires config, logger, storage and services, and drives
// the interactive console over them.
type Application struct {
	cfg   *config.Config
	store *repo.Store
	srv   *service.Services

	in  io.Reader
	out io.Writer
}

func New() *Application {
	return &Application{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (a *Application) Start() error {
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	store := repo.New(cfg.DataDir)
	if err := store.LoadAll(); err != nil {
		zap.L().Error("load failed", zap.Error(err))
		return fmt.Errorf("can't load data from %s: %w", cfg.DataDir, err)
	}

	a.cfg = cfg
	a.store = store
	a.srv = service.New(store)

	zap.L().Info("storage ready", zap.String("data_dir", cfg.DataDir))
	return nil
}

// Run reads commands line by line until quit, EOF, or ctx cancellation.
func (a *Application) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(a.in)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	fmt.Fprintln(a.out, `crowdfund console, type "help" for commands`)
	a.prompt()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := a.execute(line); quit {
				return nil
			}
			a.prompt()
		}
	}
}

func (a *Application) prompt() {
	if u := a.srv.AuthService.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "%s> ", u.Username)
		return
	}
	fmt.Fprint(a.out, "> ")
}

// execute runs one command and reports whether the loop should stop.
func (a *Application) execute(line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
	case "help":
		a.printHelp()
	case "login":
		if a.srv.AuthService.Login(rest) {
			fmt.Fprintf(a.out, "Logged in as %s.\n", a.srv.AuthService.CurrentUser().Username)
		} else {
			fmt.Fprintln(a.out, "Unknown username.")
		}
	case "logout":
		a.srv.AuthService.Logout()
		fmt.Fprintln(a.out, "Logged out.")
	case "list":
		a.printProjects(a.srv.ProjectService.Search("", "", ""))
	case "search":
		keyword, category, sortKey := splitSearchArgs(rest)
		a.printProjects(a.srv.ProjectService.Search(keyword, category, sortKey))
	case "tiers":
		a.printTiers(rest)
	case "categories":
		for _, c := range a.srv.ProjectService.Categories() {
			fmt.Fprintln(a.out, c)
		}
	case "pledge":
		a.pledge(rest)
	case "stats":
		fmt.Fprintf(a.out, "successful pledges: %d\n", a.srv.PledgeService.SuccessCount())
		fmt.Fprintf(a.out, "rejected pledges:   %d\n", a.srv.PledgeService.RejectedCount())
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command %q, type \"help\".\n", cmd)
	}
	return false
}

// splitSearchArgs parses `keyword | category | sort key`; every part is
// optional so sort keys with spaces stay intact.
func splitSearchArgs(rest string) (keyword, category, sortKey string) {
	parts := strings.Split(rest, "|")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	return get(0), get(1), get(2)
}

// pledge parses `<projectId> <amount> [tier name]`. Amount validation
// lives here: the service assumes a valid positive integer.
func (a *Application) pledge(rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		fmt.Fprintln(a.out, "Usage: pledge <projectId> <amount> [tier name]")
		return
	}
	amount, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || amount <= 0 {
		fmt.Fprintln(a.out, "Invalid amount.")
		return
	}
	tierName := strings.Join(fields[2:], " ")

	msg, err := a.srv.PledgeService.Pledge(fields[0], amount, tierName)
	if err != nil {
		zap.L().Error("pledge failed", zap.Error(err))
		fmt.Fprintln(a.out, "Pledge failed, see the log.")
		return
	}
	fmt.Fprintln(a.out, msg)
}

func (a *Application) printProjects(projects []*domain.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects.")
		return
	}
	for _, p := range projects {
		fmt.Fprintf(a.out, "%s  %-30s %-12s raised %d/%d (%.0f%%), remaining %d, ends %s\n",
			p.ID, p.Name, p.Category, p.Raised, p.Target, p.Progress()*100, p.Remaining(),
			p.Deadline.Format("2006-01-02"))
	}
}

func (a *Application) printTiers(projectID string) {
	tiers := a.srv.ProjectService.Tiers(projectID)
	if len(tiers) == 0 {
		fmt.Fprintln(a.out, "No tiers.")
		return
	}
	for _, t := range tiers {
		fmt.Fprintf(a.out, "%-20s min %d, %d left\n", t.Name, t.MinAmount, t.Quota)
	}
}

func (a *Application) printHelp() {
	fmt.Fprint(a.out, `commands:
  login <username>                     log in (no password)
  logout
  list                                 all projects by id
  search <kw> | <category> | <sort>    sort: Ending Soon, Raised (High→Low), Newest Id
  tiers <projectId>
  categories
  pledge <projectId> <amount> [tier]
  stats
  quit
`)
}
