package domain

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	if p.Audience != AudiencePersonal {
		t.Errorf("Expected audience %q, got %q", AudiencePersonal, p.Audience)
	}
	if p.Tone != ToneVisionary {
		t.Errorf("Expected tone %q, got %q", ToneVisionary, p.Tone)
	}
	if len(p.Themes) != 2 || p.Themes[0] != "Growth & Transformation" || p.Themes[1] != "Hope & Resilience" {
		t.Errorf("Unexpected default themes %v", p.Themes)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Default params should be valid, got %v", err)
	}
}

func TestGeneratorParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  GeneratorParams
		wantErr error
	}{
		{
			name:   "valid",
			params: GeneratorParams{Audience: AudienceCreative, Tone: ToneJoyful, Themes: []string{"Inner Peace"}},
		},
		{
			name:    "unknown audience",
			params:  GeneratorParams{Audience: "Aliens", Tone: ToneJoyful, Themes: []string{"Inner Peace"}},
			wantErr: ErrInvalidAudience,
		},
		{
			name:    "unknown tone",
			params:  GeneratorParams{Audience: AudienceCreative, Tone: "Sarcastic", Themes: []string{"Inner Peace"}},
			wantErr: ErrInvalidTone,
		},
		{
			name:    "no themes",
			params:  GeneratorParams{Audience: AudienceCreative, Tone: ToneJoyful},
			wantErr: ErrInvalidThemes,
		},
		{
			name:    "blank theme",
			params:  GeneratorParams{Audience: AudienceCreative, Tone: ToneJoyful, Themes: []string{"Inner Peace", "  "}},
			wantErr: ErrInvalidThemes,
		},
		{
			name: "too many themes",
			params: GeneratorParams{
				Audience: AudienceCreative,
				Tone:     ToneJoyful,
				Themes:   append(append([]string{}, ThemeCatalog...), "Extra"),
			},
			wantErr: ErrInvalidThemes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to wrap ErrValidation, got %v", err)
			}
		})
	}
}

func TestRandomParams(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	seenAudiences := map[Audience]bool{}
	seenTones := map[Tone]bool{}

	for i := 0; i < 500; i++ {
		p := RandomParams(r)
		if err := p.Validate(); err != nil {
			t.Fatalf("Randomized params should be valid, got %v", err)
		}
		if len(p.Themes) != RandomThemeCount {
			t.Fatalf("Expected %d themes, got %d", RandomThemeCount, len(p.Themes))
		}

		unique := map[string]bool{}
		for _, theme := range p.Themes {
			if unique[theme] {
				t.Fatalf("Theme %q drawn twice in %v", theme, p.Themes)
			}
			unique[theme] = true
		}

		seenAudiences[p.Audience] = true
		seenTones[p.Tone] = true
	}

	if len(seenAudiences) != len(Audiences) {
		t.Errorf("Expected every audience to be drawn, saw %v", seenAudiences)
	}
	if len(seenTones) != len(Tones) {
		t.Errorf("Expected every tone to be drawn, saw %v", seenTones)
	}
}

func TestGeneratorParamsCloneAndKey(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	c := p.Clone()
	c.Themes[0] = "Changed"

	if p.Themes[0] != "Growth & Transformation" {
		t.Error("Clone should not share theme storage")
	}
	if p.Key() == c.Key() {
		t.Error("Different themes should yield different keys")
	}
	if p.Key() != DefaultParams().Key() {
		t.Error("Equal params should yield equal keys")
	}
}

func TestGeneratorParamsKeyUnambiguous(t *testing.T) {
	t.Parallel()

	base := GeneratorParams{Audience: AudienceCreative, Tone: ToneJoyful}

	tests := []struct {
		name string
		a, b []string
	}{
		{name: "comma inside theme", a: []string{"a,b"}, b: []string{"a", "b"}},
		{name: "quote inside theme", a: []string{`a""b`}, b: []string{"a", "b"}},
		{name: "pipe inside theme", a: []string{"a|b"}, b: []string{"a", "b"}},
		{name: "order matters", a: []string{"a", "b"}, b: []string{"b", "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pa, pb := base, base
			pa.Themes, pb.Themes = tc.a, tc.b
			if pa.Key() == pb.Key() {
				t.Errorf("Themes %q and %q should yield different keys, both got %s", tc.a, tc.b, pa.Key())
			}
		})
	}
}
