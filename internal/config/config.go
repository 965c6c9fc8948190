package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/expi-showcase/internal/app"
	"github.com/atomicstack/expi-showcase/internal/device"
	"github.com/atomicstack/expi-showcase/internal/kv"
	"github.com/atomicstack/expi-showcase/internal/media"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth      = "EXPI_SHOWCASE_WIDTH"
	envHeight     = "EXPI_SHOWCASE_HEIGHT"
	envShowFooter = "EXPI_SHOWCASE_FOOTER"
	envSection    = "EXPI_SHOWCASE_SECTION"
	envBreakpoint = "EXPI_SHOWCASE_BREAKPOINT"
	envThreshold  = "EXPI_SHOWCASE_THRESHOLD"
	envContent    = "EXPI_SHOWCASE_CONTENT"
	envPrefs      = "EXPI_SHOWCASE_PREFS"
	envStore      = "EXPI_SHOWCASE_STORE"
	envVerbose    = "EXPI_SHOWCASE_VERBOSE"
	envTrace      = "EXPI_SHOWCASE_TRACE"
	envLogFile    = "EXPI_SHOWCASE_LOG_FILE"
)

const appName = "expi-showcase"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	section := fs.String("section", envOrDefault(env, envSection, "home"), "section shown at startup")
	breakpoint := fs.Int("breakpoint", envOrInt(env, envBreakpoint, device.TerminalBreakpoint), "width below which the compact layout is used")
	threshold := fs.Float64("threshold", envOrFloat(env, envThreshold, media.DefaultThreshold), "visible fraction at which a clip starts playing")
	content := fs.String("content", envOrDefault(env, envContent, ""), "path to a TOML content catalog (empty uses the built-in walkthrough)")
	prefsPath := fs.String("prefs", envOrDefault(env, envPrefs, ""), "path to the preference store (empty uses the user config dir)")
	store := fs.String("store", envOrDefault(env, envStore, string(kv.KindFile)), "preference backend: file, sqlite or memory")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show a controller status row")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	kind, err := kv.ParseKind(*store)
	if err != nil {
		return Config{}, err
	}
	if *prefsPath == "" && kind != kv.KindMemory {
		*prefsPath = defaultPrefsPath(kind)
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Verbose:        *verbose,
			InitialSection: strings.TrimSpace(*section),
			Breakpoint:     *breakpoint,
			Threshold:      *threshold,
			ContentPath:    *content,
			PrefsPath:      *prefsPath,
			StoreKind:      kind,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"section":    *section,
			"breakpoint": strconv.Itoa(*breakpoint),
			"threshold":  strconv.FormatFloat(*threshold, 'f', -1, 64),
			"content":    *content,
			"prefs":      *prefsPath,
			"store":      string(kind),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultPrefsPath places the store under ~/.config/expi-showcase, falling
// back to the working directory when the home directory is unknown.
func defaultPrefsPath(kind kv.Kind) string {
	name := "prefs.toml"
	if kind == kv.KindSQLite {
		name = "prefs.db"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName+"-"+name)
	}
	return filepath.Join(home, ".config", appName, name)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the controller cannot work with.
func Validate(cfg Config) error {
	if t := cfg.App.Threshold; t <= 0 || t > 1 {
		return fmt.Errorf("threshold must be in (0,1] (got %g)", t)
	}
	if cfg.App.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be > 0 (got %d)", cfg.App.Breakpoint)
	}
	if _, err := kv.ParseKind(string(cfg.App.StoreKind)); err != nil {
		return err
	}
	return nil
}
