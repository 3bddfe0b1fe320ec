package pack

import (
	"testing"
)

func testFilterConfig(t *testing.T, mutate func(*Config)) *FilterConfig {
	t.Helper()
	cfg := Config{
		ExcludeDirs: DefaultExcludeDirs(),
		IncludeExts: DefaultIncludeExts(),
		ExcludeExts: DefaultExcludeExts(),
		MaxBytes:    DefaultMaxBytes,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	fc, err := NewFilterConfig(cfg)
	if err != nil {
		t.Fatalf("NewFilterConfig failed: %v", err)
	}
	return fc
}

func TestDecide_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		rel    string
		want   Verdict
	}{
		{
			name: "included extension",
			rel:  "src/main.rs",
			want: VerdictInclude,
		},
		{
			name: "excluded extension",
			rel:  "img/logo.png",
			want: VerdictExtExcluded,
		},
		{
			name: "no rule matches",
			rel:  "notes.bin",
			want: VerdictNoMatch,
		},
		{
			name: "name override beats ignore glob",
			mutate: func(c *Config) {
				c.IgnoreGlobs = []string{"**"}
			},
			rel:  "Cargo.lock",
			want: VerdictInclude,
		},
		{
			name: "name override beats excluded extension",
			rel:  "sub/Cargo.lock", // "lock" is in the default excluded extensions
			want: VerdictInclude,
		},
		{
			name: "name override is case-insensitive",
			rel:  "README",
			want: VerdictInclude,
		},
		{
			name: "ignore glob beats included extension",
			mutate: func(c *Config) {
				c.IgnoreGlobs = []string{"src/**"}
			},
			rel:  "src/main.rs",
			want: VerdictGlobExcluded,
		},
		{
			name: "ignore glob matches case-insensitively",
			mutate: func(c *Config) {
				c.IgnoreGlobs = []string{"src/**"}
			},
			rel:  "SRC/Main.RS",
			want: VerdictGlobExcluded,
		},
		{
			name: "include glob without prefer loses to ignore glob",
			mutate: func(c *Config) {
				c.IncludeGlobs = []string{"**/*.generated.ts"}
				c.IgnoreGlobs = []string{"**/*.ts"}
			},
			rel:  "pkg/api.generated.ts",
			want: VerdictGlobExcluded,
		},
		{
			name: "prefer-include glob beats ignore glob",
			mutate: func(c *Config) {
				c.IncludeGlobs = []string{"**/*.generated.ts"}
				c.IgnoreGlobs = []string{"**/*.ts"}
				c.PreferInclude = true
			},
			rel:  "pkg/api.generated.ts",
			want: VerdictInclude,
		},
		{
			name: "prefer-include leaves non-matching files to ignore glob",
			mutate: func(c *Config) {
				c.IncludeGlobs = []string{"**/*.generated.ts"}
				c.IgnoreGlobs = []string{"**/*.ts"}
				c.PreferInclude = true
			},
			rel:  "pkg/plain.ts",
			want: VerdictGlobExcluded,
		},
		{
			name: "include glob force-includes an unrecognized extension",
			mutate: func(c *Config) {
				c.IncludeGlobs = []string{"**/*.xyz"}
			},
			rel:  "data/blob.xyz",
			want: VerdictInclude,
		},
		{
			name: "prefer-include beats excluded extension",
			mutate: func(c *Config) {
				c.IncludeGlobs = []string{"web/**"}
				c.PreferInclude = true
			},
			rel:  "web/app.png",
			want: VerdictInclude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := testFilterConfig(t, tt.mutate)
			c := NewCandidate("/x/"+tt.rel, tt.rel, 10)
			if got := fc.Decide(&c); got != tt.want {
				t.Errorf("Decide(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

// web/app.ts matches the include glob web/**, but without prefer-include the
// excluded-extension check runs first and wins.
func TestDecide_ExtensionBeforeNonPreferredInclude(t *testing.T) {
	fc := testFilterConfig(t, func(c *Config) {
		c.IncludeGlobs = []string{"web/**"}
		c.IgnoreGlobs = nil
	})
	c := NewCandidate("/x/web/app.ts", "web/app.ts", 10)
	if got := fc.Decide(&c); got != VerdictExtExcluded {
		t.Errorf("Decide(web/app.ts) = %v, want %v", got, VerdictExtExcluded)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	fc := testFilterConfig(t, func(c *Config) {
		c.IncludeGlobs = []string{"**/*.generated.ts"}
		c.IgnoreGlobs = []string{"**/*.ts"}
		c.PreferInclude = true
	})
	c := NewCandidate("/x/pkg/api.generated.ts", "pkg/api.generated.ts", 10)
	first := fc.Decide(&c)
	for i := 0; i < 5; i++ {
		if got := fc.Decide(&c); got != first {
			t.Fatalf("Decide changed between calls: %v then %v", first, got)
		}
	}
}
