// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "jamcircle.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != StoreSQLite {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Error("expected error when database URL is missing")
	}
}

func TestParseFlags_MemoryNeedsNoURL(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-t", "memory"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != StoreMemory {
		t.Errorf("expected memory type, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_InvalidType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "mysql", "-d", "whatever"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}
