package quotes

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/etnz/rsu/date"
	log "github.com/sirupsen/logrus"
)

// dayCache is a round tripper that keeps successful GET responses on disk for
// the current day. Quotes are refreshed at most once a day per URL.
//
// Entries are named "<day>-<hash>.http"; entries of previous days are removed
// the first time the cache is used on a new day.
type dayCache struct {
	dir   string
	next  http.RoundTripper
	today func() date.Date

	mu     sync.Mutex
	pruned date.Date // day the cache was last pruned
}

func newDayCache(dir string) *dayCache {
	return &dayCache{dir: dir, next: http.DefaultTransport, today: date.Today}
}

func (c *dayCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.next.RoundTrip(req)
	}
	day := c.today()
	c.prune(day)
	name := c.entry(day, req)

	if resp, err := c.read(name, req); err == nil {
		log.WithFields(log.Fields{"host": req.URL.Host, "path": req.URL.Path}).Debug("quote from cache")
		return resp, nil
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"host": req.URL.Host, "path": req.URL.Path, "status": resp.Status}).Debug("quote fetched")
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	if err := c.write(name, resp); err != nil {
		log.WithError(err).Warn("cannot cache quote")
	}
	return resp, nil
}

// entry returns the file of req for day.
func (c *dayCache) entry(day date.Date, req *http.Request) string {
	sum := sha1.Sum([]byte(req.Method + " " + req.URL.String()))
	return filepath.Join(c.dir, fmt.Sprintf("%s-%x.http", day, sum))
}

func (c *dayCache) read(name string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// write dumps resp into name. The body of resp can still be read afterwards.
func (c *dayCache) write(name string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, "quote-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

// prune removes the entries of days before day, once per day.
func (c *dayCache) prune(day date.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pruned == day {
		return
	}
	c.pruned = day
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	prefix := day.String() + "-"
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".http") || strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			log.WithError(err).Debug("cannot remove stale quote")
		}
	}
}
