package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sitesplit/pkg/convert"
	"github.com/matzehuels/sitesplit/pkg/userdata"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewLines is the number of body lines shown in the detail pane.
const previewLines = 6

// =============================================================================
// SiteListModel - Interactive site browser
// =============================================================================

// SiteListModel is the bubbletea model for browsing the sites of an export.
type SiteListModel struct {
	Sites       []userdata.SiteEntry
	PrefixWidth int
	Cursor      int
	Height      int
	Offset      int
	Detail      bool
}

// NewSiteListModel creates a new site list model. A prefixWidth of zero
// shows file names without the ordering prefix.
func NewSiteListModel(sites []userdata.SiteEntry, prefixWidth int) SiteListModel {
	return SiteListModel{
		Sites:       sites,
		PrefixWidth: prefixWidth,
		Height:      15,
	}
}

func (m SiteListModel) Init() tea.Cmd {
	return nil
}

func (m SiteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Sites)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Detail {
			m.Height -= 2*previewLines + 6
		}
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SiteListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sites"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Sites) == 0 {
		b.WriteString(listDimStyle.Render("  no sites"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Sites))
	for i := m.Offset; i < end; i++ {
		site := m.Sites[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		status := StyleSuccess.Render("●")
		if !site.Options.On {
			status = listDimStyle.Render("○")
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, convert.SiteBaseName(site.ID, i, m.PrefixWidth))
		if site.Name != "" {
			line += "  " + listDimStyle.Render(site.Name)
		}

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case !site.Options.On:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Detail {
		b.WriteString("\n")
		b.WriteString(m.detailView(m.Sites[m.Cursor]))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Sites))))

	return b.String()
}

// detailView renders the options, libs and body previews of a site.
func (m SiteListModel) detailView(site userdata.SiteEntry) string {
	var b strings.Builder

	b.WriteString(StyleHighlight.Render(site.ID))
	b.WriteString("\n")

	opts := []struct {
		name string
		on   bool
	}{
		{"on", site.Options.On},
		{"altCSS", site.Options.AltCSS},
		{"altJS", site.Options.AltJS},
		{"autoImportant", site.Options.AutoImportant},
	}
	var flags []string
	for _, o := range opts {
		if o.on {
			flags = append(flags, StyleSuccess.Render(o.name))
		} else {
			flags = append(flags, listDimStyle.Render(o.name))
		}
	}
	b.WriteString("  " + strings.Join(flags, " ") + "\n")

	if len(site.Libs) > 0 {
		b.WriteString(listDimStyle.Render("  libs: ") + strings.Join(site.Libs, ", ") + "\n")
	}
	b.WriteString(preview("css", site.CSS))
	b.WriteString(preview("js", site.JS))

	return b.String()
}

// preview renders the first lines of a body.
func preview(label, body string) string {
	if body == "" {
		return listDimStyle.Render(fmt.Sprintf("  %s: —", label)) + "\n"
	}
	lines := strings.Split(body, "\n")
	more := len(lines) > previewLines
	if more {
		lines = lines[:previewLines]
	}

	var b strings.Builder
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s (%s):", label, formatSize(len(body)))) + "\n")
	for _, l := range lines {
		b.WriteString("    " + l + "\n")
	}
	if more {
		b.WriteString(listDimStyle.Render("    …") + "\n")
	}
	return b.String()
}
