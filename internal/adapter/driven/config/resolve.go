package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/diillson/alicloud-ops/internal/domain/repository"
	"github.com/diillson/alicloud-ops/internal/shared/types"
)

// Environment variables read by Resolve. Names follow the Alibaba Cloud CLI.
const (
	EnvAccessKeyID     = "ALIBABA_CLOUD_ACCESS_KEY_ID"
	EnvAccessKeySecret = "ALIBABA_CLOUD_ACCESS_KEY_SECRET"
	EnvRegionID        = "ALIBABA_CLOUD_REGION_ID"
	EnvProfile         = "ALIBABA_CLOUD_PROFILE"
	EnvCredentialsFile = "ALIBABA_CLOUD_CREDENTIALS_FILE"

	DefaultProfile    = "default"
	DefaultReportType = "csv"
)

// DefaultCredentialsFile returns ~/.alibabacloud/credentials, or "" when the
// home directory is unknown.
func DefaultCredentialsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alibabacloud", "credentials")
}

// Resolve builds the effective configuration. Later sources win:
// config file, credentials profile, environment, command-line flags.
func Resolve(repo repository.ConfigRepository, args *types.CLIArgs) (*types.Config, error) {
	cfg := &types.Config{}

	if args.ConfigFile != "" {
		loaded, err := repo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := repo.LoadEnvFile(args.EnvFile); err != nil {
		return nil, err
	}

	profile := firstNonEmpty(args.Profile, os.Getenv(EnvProfile), cfg.Profile, DefaultProfile)
	credentialsFile := firstNonEmpty(os.Getenv(EnvCredentialsFile), cfg.CredentialsFile, DefaultCredentialsFile())
	cfg.Profile = profile
	cfg.CredentialsFile = credentialsFile

	if credentialsFile != "" {
		creds, err := repo.LoadCredentialsProfile(credentialsFile, profile)
		switch {
		case err == nil:
			cfg.AccessKeyID = firstNonEmpty(creds.AccessKeyID, cfg.AccessKeyID)
			cfg.AccessKeySecret = firstNonEmpty(creds.AccessKeySecret, cfg.AccessKeySecret)
			cfg.RegionID = firstNonEmpty(creds.RegionID, cfg.RegionID)
		case errors.Is(err, fs.ErrNotExist):
			// no credentials file on this machine
		case errors.Is(err, types.ErrProfileNotFound) && profile == DefaultProfile:
		default:
			return nil, err
		}
	}

	cfg.AccessKeyID = firstNonEmpty(os.Getenv(EnvAccessKeyID), cfg.AccessKeyID)
	cfg.AccessKeySecret = firstNonEmpty(os.Getenv(EnvAccessKeySecret), cfg.AccessKeySecret)
	cfg.RegionID = firstNonEmpty(os.Getenv(EnvRegionID), cfg.RegionID)

	cfg.RegionID = firstNonEmpty(args.Region, cfg.RegionID)
	cfg.ReportName = firstNonEmpty(args.ReportName, cfg.ReportName)
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if len(cfg.ReportType) == 0 {
		cfg.ReportType = []string{DefaultReportType}
	}

	dir, err := resolveDir(firstNonEmpty(args.Dir, cfg.Dir))
	if err != nil {
		return nil, err
	}
	cfg.Dir = dir

	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, types.ErrMissingCredentials
	}
	return cfg, nil
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error resolving output directory: %w", err)
		}
		return cwd, nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error resolving output directory: %w", err)
	}
	return absDir, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
