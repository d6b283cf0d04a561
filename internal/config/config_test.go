package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wireduck.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.Simulation.TPS != 60 {
		t.Errorf("Expected default TPS 60, got %d", cfg.Simulation.TPS)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides keep other defaults",
			content: `window:
  width: 1024
  height: 768
simulation:
  tps: 120
colors:
  background: 1118481
  hud: false
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
					t.Errorf("Expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Simulation.TPS != 120 {
					t.Errorf("Expected TPS 120, got %d", cfg.Simulation.TPS)
				}
				if cfg.Colors.Background != 0x111111 {
					t.Errorf("Expected background 0x111111, got %#x", cfg.Colors.Background)
				}
				if cfg.Colors.HUD {
					t.Error("Expected HUD disabled")
				}
				if cfg.Window.Title != DefaultConfig().Window.Title {
					t.Errorf("Expected default title, got %q", cfg.Window.Title)
				}
				if cfg.View.FOV != 75 {
					t.Errorf("Expected default FOV 75, got %g", cfg.View.FOV)
				}
			},
		},
		{
			name: "view settings",
			content: `view:
  fov: 60
  eye: [1, 3, 5]
  target: [0, 0.5, 0]
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.View.FOV != 60 {
					t.Errorf("Expected FOV 60, got %g", cfg.View.FOV)
				}
				if cfg.View.Eye != [3]float64{1, 3, 5} {
					t.Errorf("Expected eye [1 3 5], got %v", cfg.View.Eye)
				}
				if cfg.View.Target != [3]float64{0, 0.5, 0} {
					t.Errorf("Expected target [0 0.5 0], got %v", cfg.View.Target)
				}
			},
		},
		{
			name:    "invalid yaml",
			content: "window: [unclosed\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "zero tps",
			content: "simulation:\n  tps: 0\n",
			wantErr: "tps must be positive",
		},
		{
			name:    "bad fov",
			content: "view:\n  fov: 190\n",
			wantErr: "fov must be between",
		},
		{
			name:    "zero window width",
			content: "window:\n  width: 0\n",
			wantErr: "window size must be positive",
		},
		{
			name:    "zero near plane",
			content: "view:\n  near: 0\n",
			wantErr: "clip planes must satisfy",
		},
		{
			name:    "far inside near",
			content: "view:\n  far: 0.05\n",
			wantErr: "clip planes must satisfy",
		},
		{
			name:    "eye on target",
			content: "view:\n  eye: [0, 0, 0]\n  target: [0, 0, 0]\n",
			wantErr: "eye and target must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestTickDelta(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Simulation.TPS = 50
	if cfg.TickDelta() != 0.02 {
		t.Errorf("Expected 0.02s per tick, got %g", cfg.TickDelta())
	}
}
