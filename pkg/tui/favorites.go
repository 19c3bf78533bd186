package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// FavoritesModel is the cursor over the saved configurations
type FavoritesModel struct {
	items  []models.Favorite
	cursor int
	offset int
	width  int
	height int
}

func NewFavoritesModel() *FavoritesModel {
	return &FavoritesModel{}
}

func (m *FavoritesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetItems replaces the list, keeping the cursor in range
func (m *FavoritesModel) SetItems(items []models.Favorite) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
}

// Selected returns the favorite under the cursor
func (m *FavoritesModel) Selected() (models.Favorite, bool) {
	if len(m.items) == 0 {
		return models.Favorite{}, false
	}
	return m.items[m.cursor], true
}

func (m *FavoritesModel) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.items)-1, 0)
	}
}

const favoriteRowHeight = 3

func (m *FavoritesModel) visibleRows() int {
	return max(m.height/favoriteRowHeight, 1)
}

func (m *FavoritesModel) View() string {
	if len(m.items) == 0 {
		return EmptyStyle.Render("No favorites yet. Save a configuration from the Generator or Builder tab.")
	}

	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}

	width := uint(max(m.width-8, 20))
	var b strings.Builder
	end := min(m.offset+rows, len(m.items))
	for i := m.offset; i < end; i++ {
		fav := m.items[i]
		name := fav.BusinessName
		if name == "" {
			name = "(unnamed)"
		}
		meta := fmt.Sprintf("%s · %s · %s · %d features", fav.WebsiteType, fav.Tone, fav.Style, len(fav.Features))
		desc := truncate.StringWithTail(strings.ReplaceAll(fav.Description, "\n", " "), width, "…")

		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("▸ " + name))
		} else {
			b.WriteString(NormalStyle.Render("  " + name))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(DescriptionStyle.Render(meta)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(EmptyStyle.Render(desc)))
		b.WriteString("\n")
	}
	if len(m.items) > rows {
		b.WriteString(DescriptionStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.items))))
	}
	return b.String()
}
