package config

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/errors"
)

type recordingHandler struct {
	errs []*errors.DriftError
}

func (h *recordingHandler) HandleError(err *errors.DriftError)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)      {}
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) {}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Demo.Timer.Period != time.Second {
		t.Errorf("Expected 1s period, got %v", cfg.Demo.Timer.Period)
	}
	if cfg.Demo.Memo.Initial != 5 || cfg.Demo.Memo.Multiplier != 1_000_000 {
		t.Errorf("Expected initial 5 and multiplier 1000000, got %+v", cfg.Demo.Memo)
	}
	if cfg.Demo.Cards.Memo.Hint != "Changing the toggle does not recalculate!" {
		t.Errorf("Expected default memo hint, got %q", cfg.Demo.Cards.Memo.Hint)
	}
}

func TestLoad_OverridesKeepOtherDefaults(t *testing.T) {
	data := []byte(`
app:
  name: Hooks
demo:
  timer:
    period: 250ms
  memo:
    initial: 0
  cards:
    state:
      title: Counter
`)
	cfg, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Name != "Hooks" {
		t.Errorf("Expected app name Hooks, got %q", cfg.App.Name)
	}
	if cfg.Demo.Timer.Period != 250*time.Millisecond {
		t.Errorf("Expected 250ms period, got %v", cfg.Demo.Timer.Period)
	}
	if cfg.Demo.Memo.Initial != 0 {
		t.Errorf("Expected explicit initial 0, got %d", cfg.Demo.Memo.Initial)
	}
	if cfg.Demo.Memo.Multiplier != 1_000_000 {
		t.Errorf("Expected default multiplier, got %d", cfg.Demo.Memo.Multiplier)
	}
	if cfg.Demo.Cards.State.Title != "Counter" {
		t.Errorf("Expected state title Counter, got %q", cfg.Demo.Cards.State.Title)
	}
	if cfg.Demo.Cards.State.Description != DefaultDemo().Cards.State.Description {
		t.Errorf("Expected default state description, got %q", cfg.Demo.Cards.State.Description)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("demo: [unterminated"))
	if err == nil {
		t.Fatal("Load should fail on invalid YAML")
	}
	if !strings.Contains(err.Error(), "drift.yaml") {
		t.Errorf("Expected error to name drift.yaml, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		modulePath string
		wantName   string
		wantID     string
		wantErr    bool
	}{
		{
			name:       "defaults from module path",
			modulePath: "github.com/go-drift/hooks-demo",
			wantName:   "hooks-demo",
			wantID:     "com.github.godrift.hooksdemo",
		},
		{
			name:       "major version suffix",
			modulePath: "example.com/acme/demo/v2",
			wantName:   "demo",
			wantID:     "com.example.acme.demo.v2",
		},
		{
			name:       "digit-leading path segment",
			modulePath: "example.com/acme/3d-viewer",
			wantName:   "3d-viewer",
			wantID:     "com.example.acme.a3dviewer",
		},
		{
			name:       "module path without domain",
			modulePath: "hooksdemo",
			wantErr:    true,
		},
		{
			name:       "explicit app section",
			data:       "app:\n  name: Hooks Demo\n  id: dev.drift.hooks\n",
			modulePath: DefaultModulePath,
			wantName:   "Hooks Demo",
			wantID:     "dev.drift.hooks",
		},
		{
			name:       "invalid app id",
			data:       "app:\n  id: Dev.Drift\n",
			modulePath: DefaultModulePath,
			wantErr:    true,
		},
		{
			name:       "non-positive period",
			data:       "demo:\n  timer:\n    period: 0s\n",
			modulePath: DefaultModulePath,
			wantErr:    true,
		},
		{
			name:       "non-positive multiplier",
			data:       "demo:\n  memo:\n    multiplier: -3\n",
			modulePath: DefaultModulePath,
			wantErr:    true,
		},
		{
			name:       "invalid module path",
			modulePath: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve([]byte(tt.data), tt.modulePath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}
			if resolved.AppName != tt.wantName {
				t.Errorf("Expected app name %q, got %q", tt.wantName, resolved.AppName)
			}
			if resolved.AppID != tt.wantID {
				t.Errorf("Expected app id %q, got %q", tt.wantID, resolved.AppID)
			}
			if resolved.ModulePath != tt.modulePath {
				t.Errorf("Expected module path %q, got %q", tt.modulePath, resolved.ModulePath)
			}
		})
	}
}

func TestMust_ReportsAndFallsBack(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	resolved := Must([]byte("demo:\n  timer:\n    period: -1s\n"))

	if resolved.Demo.Timer.Period != time.Second {
		t.Errorf("Expected default period after failure, got %v", resolved.Demo.Timer.Period)
	}
	if len(handler.errs) != 1 {
		t.Fatalf("Expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Kind != errors.KindInit {
		t.Errorf("Expected KindInit, got %v", handler.errs[0].Kind)
	}
	if handler.errs[0].Op != "config.Resolve" {
		t.Errorf("Expected op config.Resolve, got %q", handler.errs[0].Op)
	}
}

func TestMust_ValidDocumentReportsNothing(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	resolved := Must([]byte("demo:\n  title: Hooks\n"))

	if resolved.Demo.Title != "Hooks" {
		t.Errorf("Expected title Hooks, got %q", resolved.Demo.Title)
	}
	if len(handler.errs) != 0 {
		t.Errorf("Expected no reported errors, got %d", len(handler.errs))
	}
}

func TestDefaultAppID(t *testing.T) {
	tests := []struct {
		modulePath string
		appName    string
		want       string
	}{
		{"github.com/go-drift/hooksdemo", "hooksdemo", "com.github.godrift.hooksdemo"},
		{"git.Example.ORG/Team_A//app", "app", "org.example.git.teama.app"},
		{"localmod", "My Demo!", "com.example.mydemo"},
		{"localmod", "---", "com.example.app"},
		{"localmod", "2048", "com.example.a2048"},
	}

	for _, tt := range tests {
		got := defaultAppID(tt.modulePath, tt.appName)
		if got != tt.want {
			t.Errorf("Expected %q for %q, got %q", tt.want, tt.modulePath, got)
		}
		if err := validateAppID(got); err != nil {
			t.Errorf("Derived id %q should be valid, got %v", got, err)
		}
	}
}
