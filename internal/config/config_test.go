package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":           "gigboard",
		"APP_ENV":            "test",
		"HTTP_PORT":          "8080",
		"DB_HOST":            "localhost",
		"DB_NAME":            "gigboard",
		"DB_USER":            "postgres",
		"JWT_ACCESS_SECRET":  "access",
		"JWT_REFRESH_SECRET": "refresh",
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envFrom(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.DBPort != "5432" {
		t.Fatalf("expected default db port 5432, got %q", cfg.Database.DBPort)
	}
	if cfg.Storage.Type != "local" {
		t.Fatalf("expected local storage, got %q", cfg.Storage.Type)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected access ttl %s", cfg.JWT.AccessExpiresIn)
	}
	if !cfg.Redis.Enabled {
		t.Fatalf("expected redis enabled by default")
	}
	if cfg.WS.PingPeriod >= cfg.WS.PongWait {
		t.Fatalf("ping period must be shorter than pong wait")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	env := baseEnv()
	delete(env, "APP_NAME")
	delete(env, "JWT_ACCESS_SECRET")

	_, err := load(envFrom(env))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "APP_NAME") || !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("expected both keys in error, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["REDIS_TTL"] = "soon"
	env["STORAGE_TYPE"] = "ftp"

	_, err := load(envFrom(env))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "REDIS_TTL") || !strings.Contains(err.Error(), "STORAGE_TYPE") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_ObjectStorageNeedsBucket(t *testing.T) {
	env := baseEnv()
	env["STORAGE_TYPE"] = "r2"

	_, err := load(envFrom(env))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing bucket error, got %v", err)
	}

	env["STORAGE_BUCKET"] = "avatars"
	cfg, err := load(envFrom(env))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage.Bucket != "avatars" {
		t.Fatalf("unexpected bucket %q", cfg.Storage.Bucket)
	}
}
