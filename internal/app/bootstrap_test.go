package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/ikay-store/api/internal/config"
	"github.com/ikay-store/api/internal/models"
)

func setupBootstrapTest(t *testing.T) *config.Config {
	t.Helper()

	dsn := fmt.Sprintf("file:app_bootstrap_%d?mode=memory&cache=shared", time.Now().UnixNano())
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{MaxIdleConns: 1}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Mode: "debug"},
	}
}

func TestBuildRunnerModeAllSkipsDisabledWorker(t *testing.T) {
	cfg := setupBootstrapTest(t)

	runner, err := BuildRunner(cfg, ModeAll)
	if err != nil {
		t.Fatalf("build runner with disabled queue failed: %v", err)
	}
	if runner == nil || len(runner.services) != 1 {
		t.Fatalf("expected exactly the http service, got %+v", runner)
	}
	if runner.services[0].Name() != "http" {
		t.Fatalf("expected http service, got %s", runner.services[0].Name())
	}
}

func TestBuildRunnerModeWorkerRequiresQueue(t *testing.T) {
	cfg := setupBootstrapTest(t)

	if _, err := BuildRunner(cfg, ModeWorker); err == nil {
		t.Fatalf("expected error for worker mode with disabled queue")
	}
}
