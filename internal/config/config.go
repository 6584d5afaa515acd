package config

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/go-drift/drift/pkg/errors"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// DefaultModulePath is used when the binary carries no build info.
const DefaultModulePath = "github.com/go-drift/hooksdemo"

// Config represents the parts of drift.yaml the app reads. The app section
// is shared with the drift CLI; the demo section is read only by the app.
type Config struct {
	App  AppConfig  `yaml:"app"`
	Demo DemoConfig `yaml:"demo"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// DemoConfig holds the tunables and copy of the demo screen.
type DemoConfig struct {
	Title string      `yaml:"title,omitempty"`
	Timer TimerConfig `yaml:"timer"`
	Memo  MemoConfig  `yaml:"memo"`
	Cards CardsConfig `yaml:"cards"`
}

// TimerConfig configures the effect card.
type TimerConfig struct {
	Period time.Duration `yaml:"period,omitempty"`
}

// MemoConfig configures the memo card. The slow sum runs over
// Initial*Multiplier terms on first build.
type MemoConfig struct {
	Initial    int   `yaml:"initial"`
	Multiplier int64 `yaml:"multiplier,omitempty"`
}

// CardText is the heading of one card.
type CardText struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Hint        string `yaml:"hint,omitempty"`
}

// CardsConfig holds the heading of every card.
type CardsConfig struct {
	State    CardText `yaml:"state"`
	Effect   CardText `yaml:"effect"`
	Ref      CardText `yaml:"ref"`
	Memo     CardText `yaml:"memo"`
	Callback CardText `yaml:"callback"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	ModulePath string
	AppName    string
	AppID      string
	Demo       DemoConfig
}

// DefaultDemo returns the demo settings used when drift.yaml omits them.
func DefaultDemo() DemoConfig {
	return DemoConfig{
		Title: "Top 5 Most Used Hooks",
		Timer: TimerConfig{Period: time.Second},
		Memo:  MemoConfig{Initial: 5, Multiplier: 1_000_000},
		Cards: CardsConfig{
			State: CardText{
				Title:       "1. State",
				Description: "Stores information that can change",
			},
			Effect: CardText{
				Title:       "2. Effect",
				Description: "Does something when things change",
			},
			Ref: CardText{
				Title:       "3. Ref",
				Description: "Reaches elements and keeps values without rebuilding",
			},
			Memo: CardText{
				Title:       "4. Memo",
				Description: "Avoids unnecessary calculations",
				Hint:        "Changing the toggle does not recalculate!",
			},
			Callback: CardText{
				Title:       "5. Callback",
				Description: "Avoids recreating functions unnecessarily",
				Hint:        "Functions are memoized correctly!",
			},
		},
	}
}

// Load parses drift.yaml. Fields absent from data keep their defaults.
func Load(data []byte) (*Config, error) {
	cfg := Config{Demo: DefaultDemo()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse drift.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads drift.yaml and resolves defaults against modulePath.
func Resolve(data []byte, modulePath string) (*Resolved, error) {
	if err := module.CheckPath(modulePath); err != nil {
		return nil, fmt.Errorf("invalid module path: %w", err)
	}

	cfg, err := Load(data)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	if err := validateDemo(cfg.Demo); err != nil {
		return nil, err
	}

	return &Resolved{
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      appID,
		Demo:       cfg.Demo,
	}, nil
}

// Must resolves drift.yaml for app startup. A bad document is reported to
// the Drift error handler and the defaults are used instead.
func Must(data []byte) *Resolved {
	modulePath := ModulePath()
	resolved, err := Resolve(data, modulePath)
	if err == nil {
		return resolved
	}
	errors.Report(&errors.DriftError{
		Op:   "config.Resolve",
		Kind: errors.KindInit,
		Err:  err,
	})
	appName := defaultAppName(modulePath)
	return &Resolved{
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      defaultAppID(modulePath, appName),
		Demo:       DefaultDemo(),
	}
}

// ModulePath returns the main module path recorded in the binary.
func ModulePath() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" || module.CheckPath(info.Main.Path) != nil {
		return DefaultModulePath
	}
	return info.Main.Path
}

func validateDemo(demo DemoConfig) error {
	if demo.Timer.Period <= 0 {
		return fmt.Errorf("demo.timer.period must be positive (got %s)", demo.Timer.Period)
	}
	if demo.Memo.Multiplier <= 0 {
		return fmt.Errorf("demo.memo.multiplier must be positive (got %d)", demo.Memo.Multiplier)
	}
	return nil
}

func defaultAppName(modulePath string) string {
	base := ""
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" {
		return "drift_app"
	}
	return base
}

// defaultAppID builds a reverse-domain id from the module path, for example
// com.github.godrift.hooksdemo for github.com/go-drift/hooksdemo. A module
// path without a domain falls back to com.example.<name>. The result always
// passes validateAppID.
func defaultAppID(modulePath, appName string) string {
	host, rest, _ := strings.Cut(modulePath, "/")
	if rest == "" || !strings.Contains(host, ".") {
		return "com.example." + idSegment(appName)
	}

	labels := strings.Split(host, ".")
	slices.Reverse(labels)
	for _, p := range strings.Split(rest, "/") {
		if p != "" {
			labels = append(labels, p)
		}
	}
	for i, label := range labels {
		labels[i] = idSegment(label)
	}
	return strings.Join(labels, ".")
}

// idSegment lowercases s and keeps only ASCII letters and digits. Hyphens
// and underscores are dropped too, since Apple bundle ids reject them.
func idSegment(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, s)
	switch {
	case s == "":
		return "app"
	case startsWithDigit(s):
		return "a" + s
	}
	return s
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// validateAppID applies the same rules the drift CLI enforces before
// generating platform projects.
func validateAppID(appID string) error {
	segments := strings.Split(appID, ".")
	if len(segments) < 2 {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range segments {
		if err := validateIDSegment(segment); err != nil {
			return fmt.Errorf("app.id %q: %w", appID, err)
		}
	}
	return nil
}

func validateIDSegment(segment string) error {
	switch {
	case segment == "":
		return fmt.Errorf("empty segment")
	case startsWithDigit(segment):
		return fmt.Errorf("segment %q starts with a digit", segment)
	case segment[0] == '_':
		return fmt.Errorf("segment %q starts with '_'", segment)
	}
	if i := strings.IndexFunc(segment, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}); i >= 0 {
		return fmt.Errorf("segment %q contains invalid character %q", segment, segment[i])
	}
	return nil
}
