package npm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-retryablehttp"
	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// abbreviatedMetadata is the compact packument format, enough to list versions.
const abbreviatedMetadata = "application/vnd.npm.install-v1+json; q=1.0, application/json; q=0.8"

const maxResponseSize = 64 << 20

// RegistryRepository lists package versions from an npm-compatible registry.
// Successful lookups are cached for the lifetime of the process.
type RegistryRepository struct {
	baseURL string
	token   string
	client  *retryablehttp.Client
	cache   *lru.Cache[string, []string]
}

// NewRegistryRepository creates a registry client from the registry settings.
func NewRegistryRepository(settings entities.RegistrySettings) (*RegistryRepository, error) {
	cacheSize := settings.CacheSize
	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry cache: %w", err)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.RetryMax = settings.Retries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = settings.Timeout

	return &RegistryRepository{
		baseURL: strings.TrimRight(settings.URL, "/"),
		token:   settings.Token,
		client:  client,
		cache:   cache,
	}, nil
}

// ListVersions returns the valid semantic versions of a package, highest first.
// Failures are logged and yield an empty slice; they are not cached.
func (it *RegistryRepository) ListVersions(ctx context.Context, name string) []string {
	if cached, ok := it.cache.Get(name); ok {
		return slices.Clone(cached)
	}

	versions, err := it.fetchVersions(ctx, name)
	if err != nil {
		logger.Debugf("[registry] %v", fmt.Errorf("%w: %s: %w", entities.ErrRegistryUnreachable, name, err))
		return []string{}
	}

	it.cache.Add(name, versions)
	return slices.Clone(versions)
}

func (it *RegistryRepository) fetchVersions(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, errors.New("empty package name")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, it.packageURL(name), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", abbreviatedMetadata)
	if it.token != "" {
		req.Header.Set("Authorization", "Bearer "+it.token)
	}

	resp, err := it.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseVersions(body)
}

// packageURL escapes the name so scoped packages ("@scope/name") stay one path segment.
func (it *RegistryRepository) packageURL(name string) string {
	return it.baseURL + "/" + url.PathEscape(name)
}

// parseVersions extracts the keys of the "versions" object and sorts them descending.
// Keys that are not strict semantic versions are dropped.
func parseVersions(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("malformed registry response")
	}
	versionsField := gjson.GetBytes(body, "versions")
	if !versionsField.IsObject() {
		return nil, errors.New("registry response has no versions")
	}

	var collection semver.Collection
	versionsField.ForEach(func(key, _ gjson.Result) bool {
		version, err := semver.StrictNewVersion(key.String())
		if err == nil {
			collection = append(collection, version)
		}
		return true
	})

	sort.Sort(sort.Reverse(collection))

	versions := make([]string, 0, len(collection))
	for _, version := range collection {
		versions = append(versions, version.Original())
	}
	return versions, nil
}

var _ repositories.RegistryRepository = (*RegistryRepository)(nil)
