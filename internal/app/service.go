package app

import (
	"snap-seed-sync/internal/adapters"
	"snap-seed-sync/internal/policies"
	"snap-seed-sync/internal/ports"
)

// Config carries the adapter settings resolved by the CLI.
type Config struct {
	SeedURLTemplate   string
	StoreURL          string
	StoreDeviceSeries string
	DistroInfo        string
	CommitAuthorName  string
	CommitAuthorEmail string
	HTTPTimeoutSec    int
	HTTPRetries       int
	HTTPRetryDelayMs  int
}

type Service struct {
	Seeds    ports.SeedSourcePort
	Models   ports.ModelStorePort
	Store    ports.SnapStorePort
	Policy   ports.ExclusionPolicyPort
	Releases ports.ReleaseInfoPort
	Reports  ports.ReportPort
	Commits  ports.CommitPort
}

func NewService(cfg Config) Service {
	store := adapters.NewSnapStoreHTTPAdapter(cfg.StoreURL, cfg.StoreDeviceSeries, cfg.HTTPTimeoutSec, cfg.HTTPRetries, cfg.HTTPRetryDelayMs)
	return Service{
		Seeds:    adapters.NewSeedHTTPAdapter(cfg.SeedURLTemplate, cfg.HTTPTimeoutSec, cfg.HTTPRetries, cfg.HTTPRetryDelayMs),
		Models:   adapters.NewModelFileAdapter(),
		Store:    store,
		Policy:   policies.NewExclusionPolicy(store),
		Releases: adapters.NewDistroInfoAdapter(cfg.DistroInfo),
		Reports:  adapters.NewReportFileAdapter(),
		Commits:  adapters.NewGitCommitAdapter(cfg.CommitAuthorName, cfg.CommitAuthorEmail),
	}
}
