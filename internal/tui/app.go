package tui

import (
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the active page:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window with Ctrl+V
// 3) delegates all other messages to the page
type RootModel struct {
	current   tea.Model
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

func NewRootModel(page tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		current:   page,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		// пока открыто окно с информацией, клавиши странице не передаются
		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("PDF DECRYPTER", "", "")
	}
	return r.current.View()
}
