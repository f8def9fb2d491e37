// Package nuget implements the release check against the NuGet flat-container index.
package nuget

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// IndexURL lists every published version of the tool package.
	IndexURL = "https://api.nuget.org/v3-flatcontainer/" + domain.PackageID + "/index.json"

	httpClientTimeout = 5 * time.Second
)

type indexResponse struct {
	Versions []string `json:"versions"`
}

// Checker implements ports.VersionChecker.
type Checker struct {
	url        string
	httpClient *http.Client
}

// NewChecker creates a Checker querying IndexURL.
func NewChecker() *Checker {
	return NewCheckerWithClient(IndexURL, &http.Client{Timeout: httpClientTimeout})
}

// NewCheckerWithClient creates a Checker with a custom index URL and client.
func NewCheckerWithClient(url string, client *http.Client) *Checker {
	return &Checker{url: url, httpClient: client}
}

// Latest returns the newest stable published version when it is newer than current.
// Development builds and unparsable versions never report an update and skip the request.
func (c *Checker) Latest(ctx context.Context, current string) (string, error) {
	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		return "", nil
	}

	versions, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	newest := NewestStable(versions)
	if newest == nil || !newest.GreaterThan(currentVersion) {
		return "", nil
	}
	return newest.Original(), nil
}

// NewestStable returns the highest version without a prerelease tag, ignoring entries
// that are not valid semantic versions.
func NewestStable(versions []string) *semver.Version {
	var newest *semver.Version
	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil || v.Prerelease() != "" {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	return newest
}

func (c *Checker) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrVersionCheckFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrVersionCheckFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.Wrap(domain.ErrVersionCheckFailed, "unexpected status"), "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrVersionCheckFailed.Error())
	}

	var index indexResponse
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, zerr.Wrap(err, domain.ErrVersionParseFailed.Error())
	}
	return index.Versions, nil
}
