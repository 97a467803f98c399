// Package cmd implements the CLI application to track equity grants.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rsu"
	"github.com/etnz/rsu/config"
	"github.com/etnz/rsu/quotes"
	"github.com/etnz/rsu/store"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "grants")
	c.Register(&updateCmd{}, "grants")
	c.Register(&deleteCmd{}, "grants")
	c.Register(&planCmd{}, "grants")

	c.Register(&portfolioCmd{}, "reports")
	c.Register(&showCmd{}, "reports")
	c.Register(&calendarCmd{}, "reports")
	c.Register(&pricesCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a TOML configuration file. RSU_* environment variables override it.")
var raw = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal.")

// App holds the container and the resources it depends on.
type App struct {
	*rsu.Container
	store store.Store
}

// OpenApp loads the configuration, opens the store and loads the grants.
func OpenApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	cfg.ConfigureLogging()

	s, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	var provider rsu.PriceProvider = quotes.Static{}
	if cfg.Quotes.Provider == config.ProviderHTTP {
		h := quotes.NewHTTP(cfg.Quotes.URL, cfg.Quotes.APIKey, cfg.Quotes.Path, cfg.Quotes.CacheDir)
		h.Parallel = cfg.Quotes.Parallel
		provider = h
	}

	c := rsu.NewContainer(rsu.NewBlobRepository(s), provider)
	if err := c.Load(ctx); err != nil {
		s.Close()
		return nil, err
	}
	log.WithFields(log.Fields{"backend": cfg.Storage.Backend, "grants": len(c.State().Grants)}).Debug("grants loaded")
	return &App{Container: c, store: s}, nil
}

func (a *App) Close() error { return a.store.Close() }

// refreshPrices loads the current prices. A failure is reported but not fatal:
// reports are then computed with the prices known so far.
func (a *App) refreshPrices(ctx context.Context) {
	if err := a.RefreshPrices(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// resolveID returns the ID of the only grant whose ID starts with prefix.
func (a *App) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("missing grant id")
	}
	var found []string
	for _, g := range a.State().Grants {
		if g.ID == prefix {
			return g.ID, nil
		}
		if strings.HasPrefix(g.ID, prefix) {
			found = append(found, g.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w %q", rsu.ErrUnknownGrant, prefix)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("ambiguous grant id %q matches %d grants", prefix, len(found))
}

// printMarkdown prints markdown text rendered for the terminal, or as is with -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.WithError(err).Debug("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
