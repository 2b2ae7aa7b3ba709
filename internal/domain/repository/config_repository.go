package repository

import (
	"github.com/diillson/alicloud-ops/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnvFile(filePath string) error
	LoadCredentialsProfile(filePath, profile string) (*types.Credentials, error)
}
