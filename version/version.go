// Package version checks whether a newer release of the application has been published.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/network"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/nowplaying-cli/nowplaying/where"
)

// ReleasesURL is queried for the latest published release.
var ReleasesURL = "https://api.github.com/repos/nowplaying-cli/nowplaying/releases/latest"

var (
	cacherOnce sync.Once
	cacher     *gache.Cache[string]
)

func versionCacher() *gache.Cache[string] {
	cacherOnce.Do(func() {
		cacher = gache.New[string](&gache.Options{
			Path:       where.Releases(),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

// Latest returns the latest release version without the leading "v". Answers are cached for two
// days.
func Latest(ctx context.Context) (string, error) {
	c := versionCacher()
	if ver, expired, err := c.Get(); err == nil && !expired && ver != "" {
		return ver, nil
	}

	ver, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	_ = c.Set(ver)
	return ver, nil
}

func fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch latest release: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode latest release: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}
