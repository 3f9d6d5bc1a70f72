package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags provided",
			args: []string{"-p", "8080", "-s", "postgres", "-d", "postgres://localhost/sdoh", "-download-key", "secret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Expected port 8080, got %d", cfg.Port)
				}
				if cfg.Storage != "postgres" {
					t.Errorf("Expected storage postgres, got %s", cfg.Storage)
				}
			},
		},
		{
			name: "sqlite defaults",
			args: []string{"-download-key", "secret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Storage != "sqlite" {
					t.Errorf("Expected default storage sqlite, got %s", cfg.Storage)
				}
				if cfg.DatabaseURL != "file:sdoh.db" {
					t.Errorf("Expected sqlite default DSN, got %s", cfg.DatabaseURL)
				}
				if cfg.Port != 3640 {
					t.Errorf("Expected default port 3640, got %d", cfg.Port)
				}
				if cfg.DataDir != "data" {
					t.Errorf("Expected default data dir, got %s", cfg.DataDir)
				}
			},
		},
		{
			name:    "missing download key",
			args:    []string{"-p", "8080"},
			wantErr: true,
		},
		{
			name:    "postgres without database URL",
			args:    []string{"-s", "postgres", "-download-key", "secret"},
			wantErr: true,
		},
		{
			name:    "unknown storage driver",
			args:    []string{"-s", "mongo", "-download-key", "secret"},
			wantErr: true,
		},
		{
			name: "file sink with data dir",
			args: []string{"-s", "file", "-data-dir", "/var/lib/sdoh", "-download-key", "secret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.DataDir != "/var/lib/sdoh" {
					t.Errorf("Expected data dir /var/lib/sdoh, got %s", cfg.DataDir)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Keep ambient env out of the table cases
			t.Setenv("PORT", "")
			t.Setenv("STORAGE_DRIVER", "")
			t.Setenv("DATABASE_URL", "")
			t.Setenv("DATA_DIR", "")
			t.Setenv("DOWNLOAD_KEY", "")

			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("DATA_DIR", "/srv/intake")
	t.Setenv("DOWNLOAD_KEY", "env-secret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Storage != "file" || cfg.DataDir != "/srv/intake" {
		t.Errorf("expected file storage at /srv/intake, got %s %s", cfg.Storage, cfg.DataDir)
	}
	if cfg.DownloadKey != "env-secret" {
		t.Errorf("expected download key from env, got %q", cfg.DownloadKey)
	}
}

func TestParseFlagsCLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DOWNLOAD_KEY", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "8080", "-download-key", "cli-secret"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DownloadKey != "cli-secret" {
		t.Errorf("CLI should override env: got %q", cfg.DownloadKey)
	}
}
