package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Audience is the target audience of a greeting set.
type Audience string

// Possible audience values
const (
	AudienceProfessional Audience = "Professional"
	AudiencePersonal     Audience = "Personal & Emotional"
	AudienceSpiritual    Audience = "Spiritual & Philosophical"
	AudienceCreative     Audience = "Creative & Aesthetic"
)

// Tone is the desired expression of a greeting set. Its string value is
// also the style label fed into the image prompt.
type Tone string

// Possible tone values
const (
	ToneVisionary  Tone = "Inspirational & Visionary"
	ToneMinimalist Tone = "Minimalist & Elegant"
	ToneJoyful     Tone = "Joyful & Celebratory"
	ToneReflective Tone = "Deeply Reflective & Mindful"
)

// Audiences lists every audience in declaration order.
var Audiences = []Audience{AudienceProfessional, AudiencePersonal, AudienceSpiritual, AudienceCreative}

// Tones lists every tone in declaration order.
var Tones = []Tone{ToneVisionary, ToneMinimalist, ToneJoyful, ToneReflective}

// ThemeCatalog is the fixed set of themes randomization draws from.
var ThemeCatalog = []string{
	"Growth & Transformation",
	"Technological Progress",
	"Human Evolution",
	"Hope & Resilience",
	"Inner Peace",
	"Creative Vision",
	"Global Harmony",
	"Digital Connectivity",
}

// RandomThemeCount is how many themes a randomized parameter set carries.
const RandomThemeCount = 3

// MaxThemes bounds a user-supplied theme list.
const MaxThemes = 8

// GeneratorParams is the full input of one generation request. Values are
// treated as immutable; changing any field means building a new value.
type GeneratorParams struct {
	Audience Audience `json:"audience"`
	Tone     Tone     `json:"tone"`
	Themes   []string `json:"themes"`
}

// DefaultParams returns the parameter set the studio starts with.
func DefaultParams() GeneratorParams {
	return GeneratorParams{
		Audience: AudiencePersonal,
		Tone:     ToneVisionary,
		Themes:   []string{"Growth & Transformation", "Hope & Resilience"},
	}
}

// Validate checks that audience and tone are enum members and that the
// theme list is usable.
func (p GeneratorParams) Validate() error {
	if !p.Audience.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidAudience, p.Audience)
	}
	if !p.Tone.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidTone, p.Tone)
	}
	if len(p.Themes) == 0 || len(p.Themes) > MaxThemes {
		return fmt.Errorf("%w: %w: need 1 to %d themes, got %d",
			ErrValidation, ErrInvalidThemes, MaxThemes, len(p.Themes))
	}
	for i, theme := range p.Themes {
		if strings.TrimSpace(theme) == "" {
			return fmt.Errorf("%w: %w: theme %d is blank", ErrValidation, ErrInvalidThemes, i)
		}
	}
	return nil
}

// Clone returns a copy that shares no slice storage with p.
func (p GeneratorParams) Clone() GeneratorParams {
	themes := make([]string, len(p.Themes))
	copy(themes, p.Themes)
	p.Themes = themes
	return p
}

// Key identifies a parameter set; equal params yield equal keys. Every field
// is quoted, so separators inside a theme cannot make two sets collide.
func (p GeneratorParams) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(string(p.Audience)))
	b.WriteString(strconv.Quote(string(p.Tone)))
	for _, theme := range p.Themes {
		b.WriteString(strconv.Quote(theme))
	}
	return b.String()
}

// IsValid reports whether a is one of the declared audiences.
func (a Audience) IsValid() bool {
	for _, known := range Audiences {
		if a == known {
			return true
		}
	}
	return false
}

// IsValid reports whether t is one of the declared tones.
func (t Tone) IsValid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// RandomParams draws audience and tone uniformly and three distinct themes
// from ThemeCatalog.
func RandomParams(r *rand.Rand) GeneratorParams {
	perm := r.Perm(len(ThemeCatalog))
	themes := make([]string, 0, RandomThemeCount)
	for _, idx := range perm[:RandomThemeCount] {
		themes = append(themes, ThemeCatalog[idx])
	}

	return GeneratorParams{
		Audience: Audiences[r.IntN(len(Audiences))],
		Tone:     Tones[r.IntN(len(Tones))],
		Themes:   themes,
	}
}
