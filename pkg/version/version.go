package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// LatestReleaseURL is the GitHub API endpoint queried by LatestRelease.
var LatestReleaseURL = "https://api.github.com/repos/diillson/alicloud-ops/releases/latest"

// populateFromBuildInfo preenche Version/Commit/BuildTime a partir do build info
// quando ldflags não definiu uma versão.
func populateFromBuildInfo() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}
	applyBuildSettings(bi.Settings)
}

func applyBuildSettings(settings []debug.BuildSetting) {
	get := func(key string) string {
		for _, s := range settings {
			if s.Key == key {
				return s.Value
			}
		}
		return ""
	}

	if rev := get("vcs.revision"); Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if t := get("vcs.time"); BuildTime == "" && t != "" {
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if tag := get("vcs.tag"); tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(get("vcs.modified"), "true") {
			Version += "-dirty"
		}
	}
}

func init() {
	populateFromBuildInfo()
}

// LatestRelease returns the newest published version when it is newer than
// currentVersion. Development builds and network failures report nothing.
func LatestRelease(ctx context.Context, currentVersion string) (string, bool) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, LatestReleaseURL, nil)
	if err != nil {
		return "", false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", false
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if compareVersions(latest, currentVersion) > 0 {
		return latest, true
	}
	return "", false
}

// compareVersions compara "1.10.0" com "1.9.3" numericamente, parte a parte.
// Sufixos como "-dirty" são ignorados.
func compareVersions(a, b string) int {
	pa, pb := versionParts(a), versionParts(b)
	for i := 0; i < len(pa) || i < len(pb); i++ {
		var x, y int
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		switch {
		case x > y:
			return 1
		case x < y:
			return -1
		}
	}
	return 0
}

func versionParts(v string) []int {
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	var parts []int
	for _, p := range strings.Split(v, ".") {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		parts = append(parts, n)
	}
	return parts
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if Commit == "" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}
	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}
	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
