package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// GitHubRelease is the subset of the GitHub release payload we consume
type GitHubRelease struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Prerelease  bool   `json:"prerelease"`
	Draft       bool   `json:"draft"`
	PublishedAt string `json:"published_at"`
}

// UpdateInfo describes the outcome of an update check
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	HasUpdate      bool
	ReleaseURL     string
}

// UpdateChecker checks GitHub releases for a newer version
type UpdateChecker struct {
	client     *resty.Client
	repository string
}

// NewUpdateChecker creates a checker for the given owner/repo
func NewUpdateChecker(repository string) *UpdateChecker {
	client := resty.New()
	client.SetBaseURL("https://api.github.com")
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Accept", "application/vnd.github.v3+json")

	return &UpdateChecker{
		client:     client,
		repository: repository,
	}
}

// CheckForUpdates fetches the latest release and compares it to the running
// version
func (uc *UpdateChecker) CheckForUpdates() (*UpdateInfo, error) {
	var release GitHubRelease
	resp, err := uc.client.R().
		SetResult(&release).
		Get(fmt.Sprintf("/repos/%s/releases/latest", uc.repository))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %v", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch latest release: HTTP %d", resp.StatusCode())
	}

	latest := release.TagName
	if latest == "" {
		return nil, fmt.Errorf("latest release has no tag")
	}

	return &UpdateInfo{
		CurrentVersion: Version,
		LatestVersion:  latest,
		HasUpdate:      !release.Draft && !release.Prerelease && isNewerVersion(Version, latest),
		ReleaseURL:     release.HTMLURL,
	}, nil
}

// isNewerVersion reports whether candidate is a strictly newer semantic
// version than current. Unparseable versions never trigger an update.
func isNewerVersion(current, candidate string) bool {
	currentParts, err := parseVersion(current)
	if err != nil {
		return false
	}
	candidateParts, err := parseVersion(candidate)
	if err != nil {
		return false
	}

	for i := 0; i < 3; i++ {
		if candidateParts[i] != currentParts[i] {
			return candidateParts[i] > currentParts[i]
		}
	}
	return false
}

// parseVersion extracts major/minor/patch from a v-prefixed version tag
func parseVersion(version string) ([3]int, error) {
	var parsed [3]int

	version = strings.TrimPrefix(version, "v")
	if idx := strings.IndexAny(version, "-+"); idx >= 0 {
		version = version[:idx]
	}

	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return parsed, fmt.Errorf("invalid version format: %s", version)
	}

	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return parsed, fmt.Errorf("invalid version format: %s", version)
		}
		parsed[i] = n
	}

	return parsed, nil
}
