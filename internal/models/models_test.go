package models

import "testing"

func TestAudience(t *testing.T) {
	t.Run("ParseAudience", func(t *testing.T) {
		tc := []struct {
			name    string
			input   string
			want    AudienceLevel
			wantErr bool
		}{
			{name: "empty is all", input: "", want: AudienceAll},
			{name: "wildcard", input: "all", want: AudienceAll},
			{name: "teens", input: "teens", want: AudienceTeens},
			{name: "it pros", input: "it-pros", want: AudienceITPros},
			{name: "professional is a category not an audience", input: "professional", wantErr: true},
			{name: "case sensitive", input: "Teens", wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ParseAudience(tt.input)
				if tt.wantErr {
					if err == nil {
						t.Errorf("expected error for %q", tt.input)
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("ParseAudience(%q) = %q, want %q", tt.input, got, tt.want)
				}
			})
		}
	})

	t.Run("AudienceFor", func(t *testing.T) {
		tc := map[string]AudienceLevel{
			"school":       AudienceSchool,
			"college":      AudienceCollege,
			"professional": AudienceITPros,
			"teens":        AudienceTeens,
			"it-pros":      AudienceITPros,
		}
		for category, want := range tc {
			got, ok := AudienceFor(category)
			if !ok {
				t.Errorf("expected mapping for %q", category)
				continue
			}
			if got != want {
				t.Errorf("AudienceFor(%q) = %q, want %q", category, got, want)
			}
		}

		if _, ok := AudienceFor("gardening"); ok {
			t.Error("expected no mapping for unknown category")
		}
	})

	t.Run("AudienceLevels starts with wildcard", func(t *testing.T) {
		levels := AudienceLevels()
		if len(levels) != 5 {
			t.Fatalf("expected 5 levels, got %d", len(levels))
		}
		if levels[0].Value != AudienceAll {
			t.Errorf("expected first level to be all, got %q", levels[0].Value)
		}
		levels[0].Label = "mutated"
		if AudienceLevels()[0].Label != "All Levels" {
			t.Error("AudienceLevels should return a copy")
		}
	})
}

func TestEntities(t *testing.T) {
	t.Run("RelatedContent Label", func(t *testing.T) {
		r := RelatedContent{}
		if r.Label() != "General" {
			t.Errorf("expected General, got %q", r.Label())
		}
		r.Category = StringPtr("AI")
		if r.Label() != "AI" {
			t.Errorf("expected AI, got %q", r.Label())
		}
	})

	t.Run("Video URLs", func(t *testing.T) {
		v := Video{YouTubeID: "abc123"}
		if v.EmbedURL() != "https://www.youtube.com/embed/abc123" {
			t.Errorf("unexpected embed URL %s", v.EmbedURL())
		}
		if v.WatchURL() != "https://www.youtube.com/watch?v=abc123" {
			t.Errorf("unexpected watch URL %s", v.WatchURL())
		}
	})

	t.Run("Deref", func(t *testing.T) {
		if Deref(nil) != "" {
			t.Error("expected empty string for nil")
		}
		if Deref(StringPtr("x")) != "x" {
			t.Error("expected x")
		}
		if StringPtr("") != nil {
			t.Error("expected nil for empty string")
		}
	})

	t.Run("Enum validity", func(t *testing.T) {
		if !CategoryProfessional.Valid() || ArticleCategory("misc").Valid() {
			t.Error("unexpected ArticleCategory validity")
		}
		if CategoryITPros.Label() != "IT Professionals" {
			t.Errorf("unexpected label %q", CategoryITPros.Label())
		}
		if !PriceSubscription.Valid() || PriceType("lifetime").Valid() {
			t.Error("unexpected PriceType validity")
		}
		if !ContentExternal.Valid() || ContentType("podcast").Valid() {
			t.Error("unexpected ContentType validity")
		}
	})
}
