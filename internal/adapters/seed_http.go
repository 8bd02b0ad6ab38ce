package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/ports"
)

const DefaultSeedURLTemplate = "https://ubuntu-archive-team.ubuntu.com/seeds/ubuntu.%s/%s"

// SeedHTTPAdapter downloads germinate seed files. A seed that cannot be
// fetched is treated as empty so the remaining seeds still count.
type SeedHTTPAdapter struct {
	URLTemplate string
	http        httpRetryConfig
}

func NewSeedHTTPAdapter(urlTemplate string, timeoutSec int, retries int, retryDelayMs int) SeedHTTPAdapter {
	if strings.TrimSpace(urlTemplate) == "" {
		urlTemplate = DefaultSeedURLTemplate
	}
	return SeedHTTPAdapter{
		URLTemplate: urlTemplate,
		http:        normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

func (a SeedHTTPAdapter) SeedURL(release string, seed string) string {
	return fmt.Sprintf(a.URLTemplate, release, seed)
}

func (a SeedHTTPAdapter) FetchSeed(ctx context.Context, release string, seed string) ([]string, error) {
	url := a.SeedURL(release, seed)
	resp, err := doRequest(ctx, url, nil, a.http)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		log.Warn().Err(err).Str("seed", seed).Str("url", url).Msg("failed to fetch seed")
		return nil, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("seed", seed).Str("url", url).Msg("failed to fetch seed")
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read seed " + seed).
			WithCause(err)
	}
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	log.Debug().Str("seed", seed).Int("lines", len(lines)).Msg("seed fetched")
	return lines, nil
}

var _ ports.SeedSourcePort = SeedHTTPAdapter{}
