package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/snapcore/snapd/snap"

	"snap-seed-sync/internal/ports"
	"snap-seed-sync/internal/shared"
	"snap-seed-sync/internal/types"
)

const (
	DefaultStoreURL          = "https://api.snapcraft.io"
	DefaultStoreDeviceSeries = "16"
)

type SnapStoreHTTPAdapter struct {
	BaseURL      string
	DeviceSeries string
	http         httpRetryConfig
}

func NewSnapStoreHTTPAdapter(baseURL string, deviceSeries string, timeoutSec int, retries int, retryDelayMs int) SnapStoreHTTPAdapter {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultStoreURL
	}
	if strings.TrimSpace(deviceSeries) == "" {
		deviceSeries = DefaultStoreDeviceSeries
	}
	return SnapStoreHTTPAdapter{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		DeviceSeries: deviceSeries,
		http:         normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

type storeInfoResponse struct {
	Name       string `json:"name"`
	SnapID     string `json:"snap-id"`
	ChannelMap []struct {
		Type string `json:"type"`
	} `json:"channel-map"`
	ErrorList []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error-list"`
}

// SnapInfo returns nil without error when the store reports the snap as
// unknown.
func (a SnapStoreHTTPAdapter) SnapInfo(ctx context.Context, name string) (*types.SnapInfo, error) {
	endpoint := a.BaseURL + "/v2/snaps/info/" + url.PathEscape(name)
	resp, err := doRequest(ctx, endpoint, map[string]string{"Snap-Device-Series": a.DeviceSeries}, a.http)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read snap info").
			WithCause(err)
	}
	var payload storeInfoResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("snap info request failed").
				WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, endpoint, string(body)))
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode snap info").
			WithCause(err)
	}
	if len(payload.ErrorList) > 0 {
		log.Info().Str("snap", name).Str("code", payload.ErrorList[0].Code).Msg("snap not found in store")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("snap info request failed").
			WithCause(shared.HTTPStatusError(resp.StatusCode, endpoint))
	}
	info := &types.SnapInfo{Name: payload.Name, SnapID: payload.SnapID}
	if info.Name == "" {
		info.Name = name
	}
	if len(payload.ChannelMap) > 0 {
		info.Type = snap.Type(payload.ChannelMap[0].Type)
	}
	return info, nil
}

var _ ports.SnapStorePort = SnapStoreHTTPAdapter{}
