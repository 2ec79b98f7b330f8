package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SEED_SUBJECTS", "")

	cfg := fromEnv()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected postgres driver, got %s", cfg.DBDriver)
	}
	if len(cfg.SeedSubjects) != 4 {
		t.Fatalf("expected 4 default subjects, got %v", cfg.SeedSubjects)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")
	t.Setenv("ORPHAN_GRACE_MINUTES", "5")
	t.Setenv("SEED_SUBJECTS", " Chemistry , ,Art")

	cfg := fromEnv()
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected lower-cased driver, got %s", cfg.DBDriver)
	}
	if cfg.TokenTTLHours != 24 {
		t.Fatalf("expected fallback ttl 24, got %d", cfg.TokenTTLHours)
	}
	if cfg.OrphanGraceMinutes != 5 {
		t.Fatalf("expected grace 5, got %d", cfg.OrphanGraceMinutes)
	}
	if len(cfg.SeedSubjects) != 2 || cfg.SeedSubjects[0] != "Chemistry" || cfg.SeedSubjects[1] != "Art" {
		t.Fatalf("unexpected subjects %v", cfg.SeedSubjects)
	}
}
