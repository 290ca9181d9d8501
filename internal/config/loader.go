package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// defaultSearchPaths are tried, in order, when neither HYDROGEN_CONFIG nor
// an explicit command-line path is given.
var defaultSearchPaths = []string{
	"hydrogen.json",
	"/etc/hydrogen/hydrogen.json",
	"/usr/local/etc/hydrogen/hydrogen.json",
}

// knownSections lists every top-level key understood by Hydrogen, in the
// fixed A→P load order the Configuration Loader dispatches in.
var knownSections = []string{
	"Server", "Network", "Databases", "Logging", "WebServer", "API", "Swagger",
	"WebSocket", "Terminal", "mDNSServer", "mDNSClient", "MailRelay", "Print",
	"Resources", "OIDC", "Notify",
}

var (
	mu      sync.RWMutex
	current *AppConfig
)

// Current returns the process-wide AppConfig. It is read-only for every
// caller except the loader itself, which owns the exclusive replace path.
func Current() *AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Cleanup releases the process-wide AppConfig. Call at process shutdown.
func Cleanup() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}

// Load locates the configuration source, parses it, and populates a fresh
// AppConfig by running every section loader in fixed order. Once the
// source has been read and parsed, the new AppConfig replaces any prior one
// as Current() before the section loaders run; if a section loader fails,
// Current() is cleared to nil and the error is returned.
//
// Source precedence: HYDROGEN_CONFIG env var, then cmdlinePath (if
// non-empty), then the first readable path in defaultSearchPaths. If an
// explicitly-named source (env var or cmdlinePath) is unreadable or
// malformed, Load fails. If no source is named and none of the default
// paths is readable, Load proceeds with an empty document.
func Load(cmdlinePath string) (*AppConfig, error) {
	path, explicit, err := resolveSourcePath(cmdlinePath)
	if err != nil {
		return nil, err
	}

	root, err := readSource(path, explicit)
	if err != nil {
		return nil, err
	}

	warnUnknownTopLevel(root)

	cfg := &AppConfig{}
	initializeDefaults(cfg)

	// Install early so section loaders (e.g. Server's log-path decision)
	// can reference the in-progress config.
	mu.Lock()
	current = cfg
	mu.Unlock()

	loaders := []func(tree, *AppConfig) bool{
		loadServer, loadNetwork, loadDatabases, loadLogging, loadWebServer,
		loadAPI, loadSwagger, loadWebSocket, loadTerminal, loadMDNSServer,
		loadMDNSClient, loadMailRelay, loadPrint, loadResources, loadOIDC,
		loadNotify,
	}
	for _, ld := range loaders {
		if !ld(root, cfg) {
			mu.Lock()
			current = nil
			mu.Unlock()
			return nil, ErrSectionLoad
		}
	}

	mu.Lock()
	current = cfg
	mu.Unlock()

	return cfg, nil
}

func resolveSourcePath(cmdlinePath string) (path string, explicit bool, err error) {
	if v := os.Getenv("HYDROGEN_CONFIG"); v != "" {
		return v, true, nil
	}
	if cmdlinePath != "" {
		return cmdlinePath, true, nil
	}
	for _, p := range defaultSearchPaths {
		if info, statErr := os.Stat(p); statErr == nil && !info.IsDir() {
			return p, false, nil
		}
	}
	log.Warn().Strs("attempted", defaultSearchPaths).
		Msg("no configuration file found, proceeding with defaults")
	return "", false, nil
}

func readSource(path string, explicit bool) (tree, error) {
	if path == "" {
		return tree{}, nil
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		if explicit {
			log.Error().Str("path", path).Msg("configuration source unreadable")
			return nil, fmt.Errorf("%w: %s", ErrConfigUnreadable, path)
		}
		return tree{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			log.Error().Str("path", path).Err(err).Msg("configuration source unreadable")
			return nil, fmt.Errorf("%w: %s", ErrConfigUnreadable, path)
		}
		return tree{}, nil
	}

	var root tree
	if err := json.Unmarshal(data, &root); err != nil {
		log.Error().Str("path", path).Err(err).Msg("configuration source malformed")
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}
	return root, nil
}

func warnUnknownTopLevel(root tree) {
	known := make(map[string]bool, len(knownSections))
	for _, k := range knownSections {
		known[k] = true
	}
	for k := range root {
		if !known[k] {
			log.Warn().Str("key", k).Msg("unknown top-level configuration key ignored")
		}
	}
}

// warnUnknownKeys logs a warning for every key in m not present in known,
// per the "unknown keys within a section are ignored with a warning" rule.
func warnUnknownKeys(sectionName string, m tree, known map[string]bool) {
	for k := range m {
		if !known[k] {
			log.Warn().Str("section", sectionName).Str("key", k).Msg("unknown configuration key ignored")
		}
	}
}
