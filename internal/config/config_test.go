package config

import "testing"

func TestLoadServeDefaults(t *testing.T) {
	cfg, err := LoadServe()
	if err != nil {
		t.Fatalf("LoadServe failed: %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadServeFromEnv(t *testing.T) {
	t.Setenv("STRUCTCALC_HOST", "127.0.0.1")
	t.Setenv("STRUCTCALC_PORT", "8080")
	t.Setenv("STRUCTCALC_MATERIALS_FILE", "/etc/structcalc/materials.yaml")

	cfg, err := LoadServe()
	if err != nil {
		t.Fatalf("LoadServe failed: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", cfg.Addr())
	}
	if cfg.MaterialsFile != "/etc/structcalc/materials.yaml" {
		t.Errorf("MaterialsFile = %q", cfg.MaterialsFile)
	}
}

func TestLoadServeInvalidPort(t *testing.T) {
	t.Setenv("STRUCTCALC_PORT", "-1")
	if _, err := LoadServe(); err == nil {
		t.Error("negative port must error")
	}
}
