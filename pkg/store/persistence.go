package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

const (
	FavoritesKey = "sitesmith-favorites"
	DraftKey     = "sitesmith-autosave"
)

// Persistence owns the two independent slots: the favorites list and the
// auto-saved draft. Read failures are logged and recovered from here.
type Persistence struct {
	kv  KeyValueStore
	log zerolog.Logger
}

func NewPersistence(kv KeyValueStore, logger zerolog.Logger) *Persistence {
	return &Persistence{
		kv:  kv,
		log: logger.With().Str("component", "store").Logger(),
	}
}

// LoadFavorites returns an empty list when nothing usable is stored
func (p *Persistence) LoadFavorites() []models.Favorite {
	raw, ok, err := p.kv.Get(FavoritesKey)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to read favorites")
		return []models.Favorite{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.Favorite{}
	}

	var favorites []models.Favorite
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		p.log.Error().Err(err).Msg("failed to parse favorites")
		return []models.Favorite{}
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites
}

// SaveFavorites writes the whole list
func (p *Persistence) SaveFavorites(favorites []models.Favorite) error {
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := p.kv.Set(FavoritesKey, string(data)); err != nil {
		p.log.Error().Err(err).Msg("failed to save favorites")
		return err
	}
	return nil
}

// LoadDraft returns the stored draft when it holds non-blank code
func (p *Persistence) LoadDraft() (string, bool) {
	raw, ok, err := p.kv.Get(DraftKey)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to read auto-saved code")
		return "", false
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}

// SaveDraft stores code unless it is blank. It reports whether a write happened.
func (p *Persistence) SaveDraft(code string) (bool, error) {
	if strings.TrimSpace(code) == "" {
		return false, nil
	}
	if err := p.kv.Set(DraftKey, code); err != nil {
		p.log.Error().Err(err).Msg("failed to auto-save code")
		return false, err
	}
	return true, nil
}

func (p *Persistence) ClearDraft() error {
	if err := p.kv.Remove(DraftKey); err != nil {
		p.log.Error().Err(err).Msg("failed to clear auto-saved code")
		return err
	}
	return nil
}
