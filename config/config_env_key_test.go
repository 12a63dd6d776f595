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
		"dispatch": map[string]any{
			"sendTimeout": "10s",
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISPATCH_SENDTIMEOUT", want: "dispatch.sendTimeout"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
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

func TestDispatchConfigNormalize_FillsDefaults(t *testing.T) {
	cfg := &DispatchConfig{}
	cfg.Normalize()

	if cfg.QueueSize != DefaultQueueSize {
		t.Fatalf("QueueSize = %d, want %d", cfg.QueueSize, DefaultQueueSize)
	}
	if cfg.SendConcurrency != DefaultSendConcurrency {
		t.Fatalf("SendConcurrency = %d, want %d", cfg.SendConcurrency, DefaultSendConcurrency)
	}
	if cfg.SendTimeout != DefaultSendTimeout {
		t.Fatalf("SendTimeout = %v, want %v", cfg.SendTimeout, DefaultSendTimeout)
	}
	if cfg.DispatchTimeout != DefaultDispatchTimeout {
		t.Fatalf("DispatchTimeout = %v, want %v", cfg.DispatchTimeout, DefaultDispatchTimeout)
	}
}

func TestDispatchConfigNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := &DispatchConfig{QueueSize: 16, SendConcurrency: 4}
	cfg.Normalize()

	if cfg.QueueSize != 16 || cfg.SendConcurrency != 4 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}
