package tui

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageStub запоминает последнее полученное сообщение.
type pageStub struct {
	last tea.Msg
}

func (p *pageStub) Init() tea.Cmd                           { return nil }
func (p *pageStub) Update(msg tea.Msg) (tea.Model, tea.Cmd) { p.last = msg; return p, nil }
func (p *pageStub) View() string                            { return "page" }

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(&pageStub{}, models.NewAppBuildInfo("", "", ""))

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	page := &pageStub{}
	root := NewRootModel(page, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"))

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	view := updated.View()
	assert.Contains(t, view, "Version: 1.2.3")
	assert.Contains(t, view, "Commit: abc")

	// клавиши не доходят до страницы, пока окно открыто
	updated, _ = updated.Update(keyRunes("x"))
	assert.Nil(t, page.last)

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "page", updated.View())
}

func TestRootModel_DelegatesToPage(t *testing.T) {
	page := &pageStub{}
	root := NewRootModel(page, models.AppBuildInfo{})

	root.Update(decryptDoneMsg{})

	assert.Equal(t, decryptDoneMsg{}, page.last)
}

func TestRootModel_NilPage(t *testing.T) {
	root := NewRootModel(nil, models.AppBuildInfo{})

	assert.Nil(t, root.Init())
	_, cmd := root.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.Contains(t, root.View(), "PDF DECRYPTER")
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, ".", logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = New(&service.ClientServices{}, ".", logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

func TestHumanizeSaveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no result", service.ErrNoResult, "Nothing to download yet"},
		{"revoked handle", fmt.Errorf("save: %w", store.ErrHandleNotFound), "Nothing to download yet"},
		{"permission", fmt.Errorf("write: %w", os.ErrPermission), "Cannot write to the download directory: permission denied"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeSaveError(tt.err))
		})
	}
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "a", valueOrDash("a"))
	assert.Equal(t, "abcdefg", fitText("abcdefg", 0))
	assert.Equal(t, "ab", fitText("abcdefg", 2))
	assert.Equal(t, "abc...", fitText("abcdefghij", 6))
	assert.Equal(t, "1.0 KiB", humanSize(1024))
	assert.Equal(t, "0 B", humanSize(-1))

	page := renderPage("TITLE", "line", "enter: go")
	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line")
	assert.Contains(t, page, "enter: go")
	assert.Contains(t, page, "ctrl+c: quit")
	assert.Contains(t, renderPage("T", "", ""), "  -")
}
