package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: 0.0.0.0
  port: 9090
  max_upload_mb: 64
embedding:
  model_path: /models/minilm.onnx
  dimensions: 512
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug: got false")
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("server: got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.MaxUploadMB != 64 {
		t.Errorf("max_upload_mb: got %d", cfg.Server.MaxUploadMB)
	}
	if cfg.Embedding.ModelPath != "/models/minilm.onnx" {
		t.Errorf("model_path: got %s", cfg.Embedding.ModelPath)
	}
	if cfg.Embedding.Dimensions != 512 {
		t.Errorf("dimensions: got %d", cfg.Embedding.Dimensions)
	}
	// Unset fields get defaults
	if cfg.Embedding.MaxTokens != 256 {
		t.Errorf("max_tokens default: got %d", cfg.Embedding.MaxTokens)
	}
}

func TestLoad_defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.MaxUploadMB != 32 {
		t.Errorf("max_upload_mb default: got %d", cfg.Server.MaxUploadMB)
	}
	if cfg.Embedding.Dimensions != 384 || cfg.Embedding.CacheSize != 10000 {
		t.Errorf("embedding defaults: got %d dims, %d cache", cfg.Embedding.Dimensions, cfg.Embedding.CacheSize)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoad_relativeModelPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("embedding:\n  model_path: ./minilm.onnx\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embedding.ModelPath != filepath.Join(dir, "./minilm.onnx") {
		t.Errorf("model_path: got %s", cfg.Embedding.ModelPath)
	}
}
