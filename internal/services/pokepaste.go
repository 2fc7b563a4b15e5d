package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/extract"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

// pasteSuffixes are tried in order against the shared roster URL. Paste
// hosts serve the raw export at /raw; the bare URL and a .txt variant
// cover mirrors that do not.
var pasteSuffixes = []string{"/raw", "", ".txt"}

// rosterMarkers identify a body that actually contains an exported
// roster rather than an error page.
var rosterMarkers = []string{"@", "Ability:", "EVs:"}

var (
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	htmlTagRe = regexp.MustCompile(`(?s)<[^>]+>`)
)

const (
	pasteCacheSize   = 100
	pasteFetchPeriod = 500 * time.Millisecond
	pasteMaxBody     = 1 << 20 // 1 MiB
)

// PasteService fetches shared roster pastes and parses them into
// structured rosters. Results are cached by URL; outbound requests are
// rate limited so bulk imports do not hammer the paste host.
type PasteService struct {
	client  *http.Client
	cache   *lru.Cache[string, *models.PasteRoster]
	limiter *rate.Limiter
}

func NewPasteService() *PasteService {
	cache, err := lru.New[string, *models.PasteRoster](pasteCacheSize)
	if err != nil {
		log.Printf("Warning: failed to create paste cache: %v", err)
	}
	return &PasteService{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache:   cache,
		limiter: rate.NewLimiter(rate.Every(pasteFetchPeriod), 1),
	}
}

// FetchRoster retrieves and parses the roster behind a paste URL. It
// tries each URL suffix variant in order and accepts the first response
// whose body contains a roster marker. The body may be plain text or an
// HTML page with a <title> tag. Returns (nil, nil) when no variant
// yields a roster, so callers can fall back to manually entered teams.
func (s *PasteService) FetchRoster(ctx context.Context, pasteURL string) (*models.PasteRoster, error) {
	pasteURL = strings.TrimSpace(strings.TrimSuffix(pasteURL, "/"))
	if pasteURL == "" {
		return nil, fmt.Errorf("empty paste url")
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(pasteURL); ok {
			return cached, nil
		}
	}

	for _, suffix := range pasteSuffixes {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		body, err := s.get(ctx, pasteURL+suffix)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("paste fetch %s%s failed: %v", pasteURL, suffix, err)
			continue
		}
		if !hasRosterMarker(body) {
			continue
		}

		result := parsePasteBody(body, pasteURL)
		if len(result.Roster) == 0 {
			continue
		}
		if s.cache != nil {
			s.cache.Add(pasteURL, result)
		}
		return result, nil
	}

	return nil, nil
}

func (s *PasteService) get(ctx context.Context, reqURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch paste: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paste host returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, pasteMaxBody))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}

func hasRosterMarker(body string) bool {
	for _, marker := range rosterMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

// parsePasteBody handles both plain-text and HTML bodies. HTML pages
// contribute their <title> as the display title; tags are stripped
// before the export parser sees the text.
func parsePasteBody(body, source string) *models.PasteRoster {
	title := ""
	if m := titleRe.FindStringSubmatch(body); m != nil {
		title = strings.TrimSpace(m[1])
	}
	text := body
	if strings.Contains(body, "<") && strings.Contains(body, ">") {
		text = htmlTagRe.ReplaceAllString(body, "\n")
	}

	return &models.PasteRoster{
		Title:  title,
		Source: source,
		Roster: extract.ParseExport(text),
	}
}
