package app

import (
	"context"
	"fmt"
	"sync"

	"japan_hotel_booking/internal/domain"
)

type PreferencesService struct {
	store domain.Store
	mu    sync.Mutex
}

func NewPreferencesService(st domain.Store) *PreferencesService {
	return &PreferencesService{store: st}
}

// Get returns the stored preferences, defaulting to English and the light theme.
func (s *PreferencesService) Get(ctx context.Context, u domain.User) (domain.Preferences, error) {
	p := domain.Preferences{Language: domain.LangEnglish, Theme: domain.ThemeLight}
	var lang domain.Language
	if ok, err := s.store.Get(ctx, domain.UserKey(domain.KeyLanguage, u.ID), &lang); err != nil {
		return p, fmt.Errorf("load language: %w", err)
	} else if ok && lang != "" {
		p.Language = lang
	}
	var theme domain.Theme
	if ok, err := s.store.Get(ctx, domain.UserKey(domain.KeyTheme, u.ID), &theme); err != nil {
		return p, fmt.Errorf("load theme: %w", err)
	} else if ok && theme != "" {
		p.Theme = theme
	}
	return p, nil
}

// Set stores the non-empty fields of p and returns the resulting preferences.
func (s *PreferencesService) Set(ctx context.Context, u domain.User, p domain.Preferences) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, u, p)
}

// set expects s.mu to be held.
func (s *PreferencesService) set(ctx context.Context, u domain.User, p domain.Preferences) (domain.Preferences, error) {
	if err := validateStruct(p); err != nil {
		return domain.Preferences{}, err
	}
	if p.Language != "" {
		if err := s.store.Set(ctx, domain.UserKey(domain.KeyLanguage, u.ID), p.Language); err != nil {
			return domain.Preferences{}, fmt.Errorf("save language: %w", err)
		}
	}
	if p.Theme != "" {
		if err := s.store.Set(ctx, domain.UserKey(domain.KeyTheme, u.ID), p.Theme); err != nil {
			return domain.Preferences{}, fmt.Errorf("save theme: %w", err)
		}
	}
	return s.Get(ctx, u)
}

func (s *PreferencesService) ToggleLanguage(ctx context.Context, u domain.User) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.Get(ctx, u)
	if err != nil {
		return cur, err
	}
	next := domain.LangJapanese
	if cur.Language == domain.LangJapanese {
		next = domain.LangEnglish
	}
	return s.set(ctx, u, domain.Preferences{Language: next})
}

func (s *PreferencesService) ToggleTheme(ctx context.Context, u domain.User) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.Get(ctx, u)
	if err != nil {
		return cur, err
	}
	next := domain.ThemeDark
	if cur.Theme == domain.ThemeDark {
		next = domain.ThemeLight
	}
	return s.set(ctx, u, domain.Preferences{Theme: next})
}
