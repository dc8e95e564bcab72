package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Search: &SearchConfig{MaxRadiusKm: 5, DefaultRadiusKm: 20},
	}

	applyDefaults(cfg)

	if cfg.Storage.Driver != "postgres" {
		t.Fatalf("Storage.Driver = %q, want postgres", cfg.Storage.Driver)
	}
	if cfg.Search.MaxRadiusKm != 5 {
		t.Fatalf("Search.MaxRadiusKm = %v, want 5", cfg.Search.MaxRadiusKm)
	}
	if cfg.Search.DefaultRadiusKm != 5 {
		t.Fatalf("Search.DefaultRadiusKm = %v, want clamped to 5", cfg.Search.DefaultRadiusKm)
	}
	if cfg.Search.MaxResults != defaultMaxResults {
		t.Fatalf("Search.MaxResults = %d, want %d", cfg.Search.MaxResults, defaultMaxResults)
	}
	if cfg.Scheduling.SlotMinutes != defaultSlotMinutes {
		t.Fatalf("Scheduling.SlotMinutes = %d, want %d", cfg.Scheduling.SlotMinutes, defaultSlotMinutes)
	}
	if cfg.Cache.ProviderTTL != defaultProviderCacheTTL {
		t.Fatalf("Cache.ProviderTTL = %s, want %s", cfg.Cache.ProviderTTL, defaultProviderCacheTTL)
	}
}

func TestApplyDefaults_CapsMaxRadius(t *testing.T) {
	cfg := &Config{
		Search: &SearchConfig{MaxRadiusKm: 100, DefaultRadiusKm: 80},
	}

	applyDefaults(cfg)

	if cfg.Search.MaxRadiusKm != 50 {
		t.Fatalf("Search.MaxRadiusKm = %v, want capped to 50", cfg.Search.MaxRadiusKm)
	}
	if cfg.Search.DefaultRadiusKm != defaultSearchRadiusKm {
		t.Fatalf("Search.DefaultRadiusKm = %v, want %v", cfg.Search.DefaultRadiusKm, defaultSearchRadiusKm)
	}
}
