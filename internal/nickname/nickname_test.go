package nickname

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}

		parts := strings.Split(name, " ")
		if len(parts) != 2 {
			t.Fatalf("expected two words, got %q", name)
		}
		for _, part := range parts {
			if part[:1] != strings.ToUpper(part[:1]) {
				t.Errorf("word %q in %q should be capitalised", part, name)
			}
		}
		seen[name] = true
	}

	// 576 combinations; 50 draws landing on a single name means no randomness
	if len(seen) < 2 {
		t.Errorf("expected varied names, got %v", seen)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{"": "", "otter": "Otter", "a": "A"}
	for in, want := range tests {
		if got := title(in); got != want {
			t.Errorf("title(%q) = %q, want %q", in, got, want)
		}
	}
}
