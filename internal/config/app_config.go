package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/sdir/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds defaults that command line flags may override.
// Pointer fields distinguish "unset" from an explicit zero value.
type ApplicationConfiguration struct {
	Output       string            `mapstructure:"output"`
	MaxDepth     *int              `mapstructure:"max_depth"`
	DirsOnly     *bool             `mapstructure:"dirs_only"`
	IncludeLocks *bool             `mapstructure:"include_locks"`
	IncludeFiles string            `mapstructure:"include_files"`
	Copy         *bool             `mapstructure:"copy"`
	Contents     *bool             `mapstructure:"contents"`
	Save         string            `mapstructure:"save"`
	Paths        PathConfiguration `mapstructure:"paths"`
}

// PathConfiguration configures the ignore-aware directory walker.
type PathConfiguration struct {
	UseGitignore  *bool `mapstructure:"use_gitignore"`
	UseIgnoreFile *bool `mapstructure:"use_ignore"`
	IncludeGit    *bool `mapstructure:"include_git"`
	Hidden        *bool `mapstructure:"hidden"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
// The local file overrides the global one key by key.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath
		}
		return filepath.Join(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName)
}

func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.MaxDepth != nil {
		result.MaxDepth = cloneInt(override.MaxDepth)
	}
	if override.DirsOnly != nil {
		result.DirsOnly = cloneBool(override.DirsOnly)
	}
	if override.IncludeLocks != nil {
		result.IncludeLocks = cloneBool(override.IncludeLocks)
	}
	if override.IncludeFiles != "" {
		result.IncludeFiles = override.IncludeFiles
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	if override.Contents != nil {
		result.Contents = cloneBool(override.Contents)
	}
	if override.Save != "" {
		result.Save = override.Save
	}
	result.Paths = result.Paths.merge(override.Paths)
	return result
}

func (config PathConfiguration) merge(override PathConfiguration) PathConfiguration {
	result := config
	if override.UseGitignore != nil {
		result.UseGitignore = cloneBool(override.UseGitignore)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	if override.IncludeGit != nil {
		result.IncludeGit = cloneBool(override.IncludeGit)
	}
	if override.Hidden != nil {
		result.Hidden = cloneBool(override.Hidden)
	}
	return result
}

// BoolOrDefault dereferences value, returning fallback when it is unset.
func BoolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
