package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"mlirutils.dev/pkg/mlirutils/internal/domain"
)

const (
	appName = "mlir-utils"

	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = appName
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dryRunFlagName       = "dry-run"
	reportFlagName       = "report"
	plainFlagName        = "plain"
	logFileFlagName      = "log-file"
	verboseFlagName      = "verbose"
	templatePathFlagName = "template-path"
	templateNameFlagName = "template-name"

	dryRunConfigKey       = "dry_run"
	reportConfigKey       = "report"
	plainConfigKey        = "plain"
	templateSubPathKey    = "template.subpath"
	templateNameConfigKey = "template.name"

	defaultDryRun = false
	defaultReport = ""
	defaultPlain  = false

	envPrefix = "MLIR_UTILS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = appName + ".log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(dryRunConfigKey, defaultDryRun)
	viper.SetDefault(reportConfigKey, defaultReport)
	viper.SetDefault(plainConfigKey, defaultPlain)
	viper.SetDefault(templateSubPathKey, domain.DefaultTemplateSubPath)
	viper.SetDefault(templateNameConfigKey, domain.DefaultTemplateName)

	// An empty filename selects the XDG state directory.
	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// defaultLogPath places the log file under the user's XDG state directory,
// falling back to the working directory when that cannot be created.
func defaultLogPath() string {
	path, err := xdg.StateFile(filepath.Join(appName, defaultLogFilename))
	if err != nil {
		return defaultLogFilename
	}

	return path
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogPath()
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
