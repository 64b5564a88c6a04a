package utils

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestGenerateApiKeyFormat(t *testing.T) {
	key, err := GenerateApiKey()
	if err != nil {
		t.Fatalf("GenerateApiKey() error: %v", err)
	}

	if !strings.HasPrefix(key, "sk_") {
		t.Errorf("key %q missing sk_ prefix", key)
	}
	if len(key) != 51 {
		t.Errorf("key length = %d, want 51", len(key))
	}
	if _, err := hex.DecodeString(strings.TrimPrefix(key, "sk_")); err != nil {
		t.Errorf("key suffix is not hex: %v", err)
	}
}

func TestGenerateApiKeyIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key, err := GenerateApiKey()
		if err != nil {
			t.Fatalf("GenerateApiKey() error: %v", err)
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = struct{}{}
	}
}
