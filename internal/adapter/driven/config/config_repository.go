package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/alicloud-ops/internal/domain/repository"
	"github.com/diillson/alicloud-ops/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadEnvFile exporta as variáveis de um arquivo .env sem sobrescrever o ambiente.
// Um arquivo inexistente não é erro.
func (r *ConfigRepositoryImpl) LoadEnvFile(filePath string) error {
	if filePath == "" {
		return nil
	}
	if err := godotenv.Load(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", filePath, err)
	}
	return nil
}

// LoadCredentialsProfile lê um perfil do arquivo de credenciais (formato INI).
func (r *ConfigRepositoryImpl) LoadCredentialsProfile(filePath, profile string) (*types.Credentials, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("error accessing credentials file: %w", err)
	}

	cfg, err := ini.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading credentials file: %w", err)
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrProfileNotFound, profile)
	}

	return &types.Credentials{
		AccessKeyID:     section.Key("access_key_id").String(),
		AccessKeySecret: section.Key("access_key_secret").String(),
		RegionID:        section.Key("region_id").String(),
	}, nil
}
