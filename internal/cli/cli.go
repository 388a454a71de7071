// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/config"
	"github.com/temirov/sdir/internal/services/clipboard"
	"github.com/temirov/sdir/internal/services/filesink"
	"github.com/temirov/sdir/internal/services/stream"
	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
)

const (
	dirsOnlyFlagName     = "dirs-only"
	maxDepthFlagName     = "max-depth"
	outputFlagName       = "output"
	noCopyFlagName       = "no-copy"
	includeLocksFlagName = "include-locks"
	includeFilesFlagName = "include-files"
	saveFlagName         = "save"
	noContentsFlagName   = "no-contents"
	noGitignoreFlagName  = "no-gitignore"
	noIgnoreFlagName     = "no-ignore"
	includeGitFlagName   = "git"
	noHiddenFlagName     = "no-hidden"
	configFlagName       = "config"
	initConfigFlagName   = "init-config"
	forceFlagName        = "force"
	versionFlagName      = "version"

	dirsOnlyFlagDescription     = "show only directories"
	maxDepthFlagDescription     = "maximum depth to expand (0 lists only the root)"
	outputFlagDescription       = "output format: text or json"
	noCopyFlagDescription       = "do not copy the output to the clipboard"
	includeLocksFlagDescription = "include Cargo.lock files"
	includeFilesFlagDescription = "only include files matching the glob (a leading * is implied)"
	saveFlagDescription         = "write the output to a file"
	noContentsFlagDescription   = "do not append file contents to text output"
	noGitignoreFlagDescription  = "do not use .gitignore"
	noIgnoreFlagDescription     = "do not use .ignore"
	includeGitFlagDescription   = "include git directory"
	noHiddenFlagDescription     = "hide entries whose names start with a dot"
	configFlagDescription       = "configuration file to use instead of ./" + utils.LocalConfigFileName
	initConfigFlagDescription   = "write a default configuration file (--init-config=local or --init-config=global) and exit"
	forceFlagDescription        = "overwrite an existing configuration file"
	versionFlagDescription      = "display application version"

	versionTemplate      = "sdir version: %s\n"
	defaultPath          = "."
	defaultMaxDepthValue = -1
	rootUse              = "sdir [paths...]"
	rootShortDescription = "render files and directory trees for pasting"
	rootLongDescription  = `sdir renders each path either as the content of a file or as a directory tree.
Trees are printed as text (with the contents of the listed files appended) or as JSON.
The plain rendering is copied to the clipboard unless --no-copy is given, and written to a file with --save.`
	rootUsageExample = `  # Tree of the current directory, two levels deep
  sdir --max-depth 2

  # Only Rust sources, as JSON
  sdir --include-files .rs --output json src

  # Print a file without touching the clipboard
  sdir --no-copy README.md`

	fileCopiedNotice             = "File content copied to clipboard."
	invalidFormatMessage         = "invalid output value '%s'; accepted values: text, json"
	invalidMaxDepthMessage       = "invalid --max-depth value %d; depth must not be negative"
	workingDirectoryErrorFormat  = "unable to determine working directory: %w"
	loadConfigurationErrorFormat = "loading configuration: %w"
	initConfigurationErrorFormat = "initializing configuration: %w"
)

// Dependencies are the collaborators of the root command.
type Dependencies struct {
	Stdout           io.Writer
	Logger           *zap.Logger
	Clipboard        clipboard.Copier
	Filesystem       afero.Fs
	WorkingDirectory string
}

// Execute runs the sdir application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{Stdout: os.Stdout, Logger: logger})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// commandOptions stores the raw flag values of one invocation.
type commandOptions struct {
	dirsOnly         bool
	maxDepth         int
	outputFormat     string
	disableCopy      bool
	includeLocks     bool
	includeFiles     string
	savePath         string
	disableContents  bool
	disableGitignore bool
	disableIgnore    bool
	includeGit       bool
	disableHidden    bool
	configPath       string
	initTarget       string
	force            bool
	showVersion      bool
}

// resolvedSettings is the effective configuration after flags, files and defaults are combined.
type resolvedSettings struct {
	format    string
	copy      bool
	savePath  string
	traversal types.TraversalConfig
	walk      types.WalkOptions
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Stdout == nil {
		dependencies.Stdout = os.Stdout
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	var options commandOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, writeError := fmt.Fprintf(dependencies.Stdout, versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			workingDirectory := dependencies.WorkingDirectory
			if workingDirectory == "" {
				currentDirectory, workingDirectoryError := os.Getwd()
				if workingDirectoryError != nil {
					return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
				}
				workingDirectory = currentDirectory
			}
			if command.Flags().Changed(initConfigFlagName) {
				return runInitConfiguration(dependencies.Logger, options, workingDirectory)
			}
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}

			applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: options.configPath,
			})
			if loadError != nil {
				return fmt.Errorf(loadConfigurationErrorFormat, loadError)
			}
			settings, resolveError := resolveSettings(command, options, applicationConfiguration)
			if resolveError != nil {
				return resolveError
			}
			return runTool(command, dependencies, settings, arguments, workingDirectory)
		},
	}

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &options.dirsOnly, dirsOnlyFlagName, false, dirsOnlyFlagDescription)
	flagSet.IntVar(&options.maxDepth, maxDepthFlagName, defaultMaxDepthValue, maxDepthFlagDescription)
	flagSet.StringVar(&options.outputFormat, outputFlagName, types.FormatText, outputFlagDescription)
	registerBooleanFlag(flagSet, &options.disableCopy, noCopyFlagName, false, noCopyFlagDescription)
	registerBooleanFlag(flagSet, &options.includeLocks, includeLocksFlagName, false, includeLocksFlagDescription)
	flagSet.StringVar(&options.includeFiles, includeFilesFlagName, "", includeFilesFlagDescription)
	flagSet.StringVar(&options.savePath, saveFlagName, "", saveFlagDescription)
	registerBooleanFlag(flagSet, &options.disableContents, noContentsFlagName, false, noContentsFlagDescription)
	registerBooleanFlag(flagSet, &options.disableGitignore, noGitignoreFlagName, false, noGitignoreFlagDescription)
	registerBooleanFlag(flagSet, &options.disableIgnore, noIgnoreFlagName, false, noIgnoreFlagDescription)
	registerBooleanFlag(flagSet, &options.includeGit, includeGitFlagName, false, includeGitFlagDescription)
	registerBooleanFlag(flagSet, &options.disableHidden, noHiddenFlagName, false, noHiddenFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.initTarget, initConfigFlagName, string(config.InitTargetLocal), initConfigFlagDescription)
	flagSet.Lookup(initConfigFlagName).NoOptDefVal = string(config.InitTargetLocal)
	registerBooleanFlag(flagSet, &options.force, forceFlagName, false, forceFlagDescription)
	registerBooleanFlag(flagSet, &options.showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.SetOut(dependencies.Stdout)
	return rootCommand
}

// resolveSettings applies the precedence: explicit flag, configuration file, built-in default.
func resolveSettings(command *cobra.Command, options commandOptions, applicationConfiguration config.ApplicationConfiguration) (resolvedSettings, error) {
	flagSet := command.Flags()
	fromFlags := config.ApplicationConfiguration{
		DirsOnly:     explicitBoolean(flagSet, dirsOnlyFlagName, options.dirsOnly),
		IncludeLocks: explicitBoolean(flagSet, includeLocksFlagName, options.includeLocks),
		Copy:         explicitNegatedBoolean(flagSet, noCopyFlagName, options.disableCopy),
		Contents:     explicitNegatedBoolean(flagSet, noContentsFlagName, options.disableContents),
		Paths: config.PathConfiguration{
			UseGitignore:  explicitNegatedBoolean(flagSet, noGitignoreFlagName, options.disableGitignore),
			UseIgnoreFile: explicitNegatedBoolean(flagSet, noIgnoreFlagName, options.disableIgnore),
			IncludeGit:    explicitBoolean(flagSet, includeGitFlagName, options.includeGit),
			Hidden:        explicitNegatedBoolean(flagSet, noHiddenFlagName, options.disableHidden),
		},
	}
	if flagSet.Changed(outputFlagName) {
		fromFlags.Output = options.outputFormat
	}
	if flagSet.Changed(maxDepthFlagName) {
		maxDepth := options.maxDepth
		fromFlags.MaxDepth = &maxDepth
	}
	if flagSet.Changed(includeFilesFlagName) {
		fromFlags.IncludeFiles = options.includeFiles
	}
	if flagSet.Changed(saveFlagName) {
		fromFlags.Save = options.savePath
	}
	effective := applicationConfiguration.Merge(fromFlags)

	format := strings.ToLower(strings.TrimSpace(effective.Output))
	if format == "" {
		format = types.FormatText
	}
	if format != types.FormatText && format != types.FormatJSON {
		return resolvedSettings{}, fmt.Errorf(invalidFormatMessage, effective.Output)
	}
	if effective.MaxDepth != nil && *effective.MaxDepth < 0 {
		return resolvedSettings{}, fmt.Errorf(invalidMaxDepthMessage, *effective.MaxDepth)
	}

	return resolvedSettings{
		format:   format,
		copy:     config.BoolOrDefault(effective.Copy, true),
		savePath: effective.Save,
		traversal: types.TraversalConfig{
			MaxDepth:        effective.MaxDepth,
			DirsOnly:        config.BoolOrDefault(effective.DirsOnly, false),
			IncludeLocks:    config.BoolOrDefault(effective.IncludeLocks, false),
			IncludePattern:  effective.IncludeFiles,
			CollectContents: format == types.FormatText && config.BoolOrDefault(effective.Contents, true),
		},
		walk: types.WalkOptions{
			UseGitignore:  config.BoolOrDefault(effective.Paths.UseGitignore, true),
			UseIgnoreFile: config.BoolOrDefault(effective.Paths.UseIgnoreFile, true),
			IncludeGit:    config.BoolOrDefault(effective.Paths.IncludeGit, false),
			ShowHidden:    config.BoolOrDefault(effective.Paths.Hidden, true),
		},
	}, nil
}

// runTool renders every path and then hands the plain output to the clipboard and save sinks.
// Sink failures are reported but never change the outcome of the command.
func runTool(command *cobra.Command, dependencies Dependencies, settings resolvedSettings, paths []string, workingDirectory string) error {
	logger := dependencies.Logger
	report, runError := stream.NewService(dependencies.Stdout, logger).Run(command.Context(), stream.Options{
		Paths:            paths,
		Format:           settings.format,
		Traversal:        settings.traversal,
		Walk:             settings.walk,
		WorkingDirectory: workingDirectory,
	})
	if runError != nil {
		return runError
	}
	renderedOutput := report.Buffer.String()

	if settings.copy && renderedOutput != "" {
		copier := dependencies.Clipboard
		if copier == nil {
			copier = clipboard.NewService()
		}
		if copyError := copier.Copy(renderedOutput); copyError != nil {
			logger.Warn("clipboard copy failed", zap.Error(copyError))
		} else if report.FileInputs > 0 && report.FileInputs+report.Failed == len(paths) {
			logger.Info(fileCopiedNotice)
		}
	}

	if settings.savePath != "" {
		sink := filesink.NewSink(dependencies.Filesystem, logger)
		if saveError := sink.Save(settings.savePath, renderedOutput); saveError != nil {
			logger.Error("saving output failed", zap.Error(saveError))
		}
	}
	return nil
}

func runInitConfiguration(logger *zap.Logger, options commandOptions, workingDirectory string) error {
	target := config.InitTarget(strings.ToLower(strings.TrimSpace(options.initTarget)))
	destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
		Target:           target,
		Force:            options.force,
		WorkingDirectory: workingDirectory,
	})
	if initError != nil {
		return fmt.Errorf(initConfigurationErrorFormat, initError)
	}
	logger.Info("configuration written", zap.String("path", destinationPath))
	return nil
}
