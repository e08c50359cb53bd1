/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package duel

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/roundrobin-duelbot/internal"
	"github.com/mikeb26/roundrobin-duelbot/internal/httpcache"
)

// roster pages change between rounds of an evening event at most
const rosterCacheTTL = 15 * time.Minute

var (
	rosterClientOnce sync.Once
	rosterClient     *http.Client
)

func httpClientForRosters() *http.Client {
	rosterClientOnce.Do(func() {
		// the cache outlives any single request; tie the S3 client to
		// the process rather than to the first caller's context, which
		// may be request-scoped and canceled long before the next fetch
		rosterClient = httpcache.NewCachedHttpClient(context.Background(),
			rosterCacheTTL)
	})
	return rosterClient
}

// FetchRoster retrieves an HTML page and extracts an ordered, deduplicated
// list of player names from it. Responses are cached (see
// httpcache.NewCachedHttpClient) so repeated schedule requests against the
// same signup page don't hammer the origin.
func FetchRoster(ctx context.Context, url string) ([]string, error) {
	doc, err := fetchDoc(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch roster page: %w", err)
	}

	players := rosterFromDoc(doc)
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: found %v at %v", ErrTooFewPlayers,
			len(players), url)
	}

	return players, nil
}

// FetchRosters fetches several roster pages concurrently and merges their
// players in argument order, deduplicating case-insensitively across pages.
func FetchRosters(ctx context.Context, urls []string) ([]string, error) {
	rosters := make([][]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for idx, url := range urls {
		idx, url := idx, url
		g.Go(func() error {
			players, err := FetchRoster(gctx, url)
			if err != nil {
				return err
			}
			rosters[idx] = players
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []string
	for _, r := range rosters {
		merged = append(merged, r...)
	}

	return dedupePlayers(merged), nil
}

// rosterFromDoc extracts player names from a parsed document. A table with
// id="players" is preferred (name taken from the first non-numeric cell of
// each body row); otherwise list items under ul/ol elements are used.
func rosterFromDoc(doc *goquery.Document) []string {
	var players []string

	rows := doc.Find("table#players tbody tr")
	if rows.Length() == 0 {
		rows = doc.Find("table tbody tr")
	}
	rows.Each(func(_ int, row *goquery.Selection) {
		if name := nameFromRow(row); name != "" {
			players = append(players, name)
		}
	})

	if len(players) == 0 {
		doc.Find("ul li, ol li").Each(func(_ int, s *goquery.Selection) {
			if name := strings.TrimSpace(s.Text()); name != "" {
				players = append(players, name)
			}
		})
	}

	return dedupePlayers(players)
}

// nameFromRow returns the first cell in the row that doesn't parse as a plain
// number (signup tables commonly lead with an entry number column).
func nameFromRow(row *goquery.Selection) string {
	name := ""
	row.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := strings.TrimSpace(cell.Text())
		if text == "" || isNumeric(text) {
			return true
		}
		name = text
		return false
	})

	return name
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// fetchDoc gets the HTML document at the given URL using the cached http
// client and configured User-Agent.
func fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := httpClientForRosters().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
