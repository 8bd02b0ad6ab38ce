package cli

import (
	"github.com/spf13/viper"

	"snap-seed-sync/internal/app"
)

var newAppService = func() app.Service {
	return app.NewService(app.Config{
		SeedURLTemplate:   viper.GetString("seed_url_template"),
		StoreURL:          viper.GetString("store_url"),
		StoreDeviceSeries: viper.GetString("store_device_series"),
		DistroInfo:        viper.GetString("distro_info"),
		CommitAuthorName:  viper.GetString("commit_author_name"),
		CommitAuthorEmail: viper.GetString("commit_author_email"),
		HTTPTimeoutSec:    viper.GetInt("http_timeout_sec"),
		HTTPRetries:       viper.GetInt("http_retries"),
		HTTPRetryDelayMs:  viper.GetInt("http_retry_delay_ms"),
	})
}
