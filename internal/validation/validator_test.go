package validation

import (
	"testing"

	"github.com/news-portal-api/internal/models"
	apperrors "github.com/news-portal-api/pkg/errors"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand and spaces", "Crime & Law News", "crime-law-news"},
		{"bengali preserved", "অপরাধ সংবাদ", "অপরাধ-সংবাদ"},
		{"mixed bengali and ascii", "Dhaka ঢাকা & World", "dhaka-ঢাকা-world"},
		{"punctuation stripped", "Sports: Cricket!", "sports-cricket"},
		{"tabs and newlines", "Local\t\nNews", "local-news"},
		{"line separator", "A\u2028B", "a-b"},
		{"paragraph separator", "A\u2029B", "a-b"},
		{"vertical tab", "A\vB", "a-b"},
		{"byte order mark", "A\uFEFFB", "a-b"},
		{"no-break space", "A\u00A0B", "a-b"},
		{"underscore kept", "snake_case Name", "snake_case-name"},
		{"existing hyphens kept", "Already-Slugged", "already-slugged"},
		{"accents dropped", "Café Culture", "caf-culture"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlug(tt.in)
			if got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateSlug_Idempotent(t *testing.T) {
	inputs := []string{
		"Crime & Law News",
		"অপরাধ সংবাদ",
		"  Leading and trailing  ",
		"A && B",
		"Economy/Business (Daily)",
		"খেলা & বিনোদন",
	}

	for _, in := range inputs {
		once := GenerateSlug(in)
		twice := GenerateSlug(once)
		if once != twice {
			t.Errorf("GenerateSlug not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"crime-law-news", "অপরাধ-সংবাদ", "top_10", "a-b"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "Crime", "crime news", "crime/law", "crime&law", "café"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidator_AddCategoryRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		req        models.AddCategoryRequest
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid",
			req:        models.AddCategoryRequest{Name: "Crime", Slug: "crime", Description: "All crime related news"},
			wantErrors: 0,
		},
		{
			name:       "bengali name and slug",
			req:        models.AddCategoryRequest{Name: "অপরাধ", Slug: "অপরাধ", Description: "অপরাধ বিষয়ক সকল সংবাদ"},
			wantErrors: 0,
		},
		{
			name:       "name too short",
			req:        models.AddCategoryRequest{Name: "C", Slug: "crime", Description: "All crime related news"},
			wantErrors: 1,
			wantFields: []string{"name"},
		},
		{
			name:       "description too short",
			req:        models.AddCategoryRequest{Name: "Crime", Slug: "crime", Description: "short"},
			wantErrors: 1,
			wantFields: []string{"description"},
		},
		{
			name:       "slug not url safe",
			req:        models.AddCategoryRequest{Name: "Crime", Slug: "Crime News", Description: "All crime related news"},
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "everything empty",
			req:        models.AddCategoryRequest{},
			wantErrors: 3,
			wantFields: []string{"name", "slug", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req, "invalid category")
			fields := apperrors.Fields(err)

			if len(fields) != tt.wantErrors {
				t.Fatalf("expected %d errors, got %d: %v", tt.wantErrors, len(fields), err)
			}
			if tt.wantErrors > 0 && !apperrors.IsValidationError(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
			for i, field := range tt.wantFields {
				if fields[i].Field != field {
					t.Errorf("expected error on field %q, got %q", field, fields[i].Field)
				}
			}
		})
	}
}

func TestValidator_AddMediaRequest(t *testing.T) {
	v := NewValidator()

	ok := models.AddMediaRequest{
		Title:    "Flood photo",
		URL:      "https://cdn.example.com/flood.jpg",
		Type:     models.MediaTypeImage,
		Size:     2048,
		MimeType: "image/jpeg",
	}
	if err := v.Struct(ok, "invalid media"); err != nil {
		t.Fatalf("expected valid media, got %v", err)
	}

	bad := ok
	bad.Type = "GIF"
	bad.Size = -1
	err := v.Struct(bad, "invalid media")
	if got := len(apperrors.Fields(err)); got != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", got, err)
	}
}

func TestValidator_NewsStatus(t *testing.T) {
	v := NewValidator()

	req := models.CreateNewsRequest{Title: "Budget passed", Content: "Parliament passed the budget.", Slug: "budget-passed"}
	if err := v.Struct(req, "invalid news"); err != nil {
		t.Fatalf("empty status should be allowed, got %v", err)
	}

	req.Status = "LIVE"
	if err := v.Struct(req, "invalid news"); !apperrors.IsValidationError(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}
