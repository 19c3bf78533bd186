package controller

import "github.com/sitesmith/sitesmith-cli/pkg/models"

// Status of the generation state machine
type Status int

const (
	StatusIdle Status = iota
	StatusGenerating
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusGenerating:
		return "generating"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// View is the active tab
type View int

const (
	ViewGenerator View = iota
	ViewBuilder
	ViewFavorites
)

var Views = []View{ViewGenerator, ViewBuilder, ViewFavorites}

func (v View) String() string {
	switch v {
	case ViewGenerator:
		return "Generator"
	case ViewBuilder:
		return "Builder"
	case ViewFavorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

type State struct {
	Status     Status
	View       View
	Config     models.WebsiteConfig
	LastConfig *models.WebsiteConfig
	Code       string
	Favorites  []models.Favorite
	Err        string
}

func (s State) clone() State {
	out := s
	out.Config = s.Config.Clone()
	if s.LastConfig != nil {
		last := s.LastConfig.Clone()
		out.LastConfig = &last
	}
	out.Favorites = make([]models.Favorite, len(s.Favorites))
	for i, fav := range s.Favorites {
		out.Favorites[i] = models.Favorite{ID: fav.ID, WebsiteConfig: fav.WebsiteConfig.Clone()}
	}
	return out
}

// HasCode reports whether the builder tab is available
func (s State) HasCode() bool {
	return s.Code != ""
}
