package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// pdfExtensions is a selection hint: other files are shown dimmed but can
// still be picked.
var pdfExtensions = []string{".pdf", ".PDF"}

// writeClipboard is swapped in tests, where no clipboard is available.
var writeClipboard = clipboard.WriteAll

type focusArea int

const (
	focusPicker focusArea = iota
	focusPassword
)

// DecryptModel is the decrypt page. It collects a file and a password, runs
// the submission through [service.PDFUnlockService] and renders the
// resulting snapshot: the action label, the error text and the download
// affordance.
type DecryptModel struct {
	ctx         context.Context
	unlock      service.PDFUnlockService
	downloadDir string
	logger      *logger.Logger

	picker   filepicker.Model
	password textinput.Model
	spinner  spinner.Model
	focus    focusArea

	snapshot models.DecryptionSnapshot
	fileSize int64
	status   string
	errMsg   string
}

// NewDecryptModel creates the page with the file picker opened in startDir.
func NewDecryptModel(ctx context.Context, unlock service.PDFUnlockService, startDir, downloadDir string, logger *logger.Logger) *DecryptModel {
	picker := filepicker.New()
	picker.AllowedTypes = pdfExtensions
	picker.CurrentDirectory = startDir

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DecryptModel{
		ctx:         ctx,
		unlock:      unlock,
		downloadDir: downloadDir,
		logger:      logger,
		picker:      picker,
		password:    passwordInput,
		spinner:     s,
		snapshot:    unlock.Snapshot(),
	}
}

// Init implements [tea.Model]. Reads the start directory of the file picker.
func (m *DecryptModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements [tea.Model]. Handled messages:
//   - tab / shift+tab   — switches focus between the file picker and the password.
//   - enter on password — submits; ignored while a request is in flight.
//   - ctrl+s            — saves the decrypted document and copies its path.
//
// Other keys go to the focused widget; everything else reaches the picker.
func (m *DecryptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error loading selected file")
			m.errMsg = fmt.Sprintf("Cannot read file: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.fileSize = msg.file.Size()
		m.unlock.SelectFile(msg.file)
		m.snapshot = m.unlock.Snapshot()
		m.setFocus(focusPassword)
		return m, textinput.Blink

	case decryptDoneMsg:
		m.snapshot = msg.snapshot
		if m.snapshot.Loading() {
			return m, m.spinner.Tick
		}
		return m, nil

	case resultSavedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error saving decrypted document")
			m.errMsg = humanizeSaveError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Saved to " + msg.path
		return m, cmdCopyToClipboard(msg.path)

	case copiedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("clipboard is unavailable")
		} else {
			m.status += " (path copied)"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updatePicker(msg)
}

func (m *DecryptModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.focus == focusPicker {
			m.setFocus(focusPassword)
			return m, textinput.Blink
		}
		m.setFocus(focusPicker)
		return m, nil
	case key.Matches(msg, keys.save):
		if m.snapshot.Result == nil {
			return m, nil
		}
		return m, m.cmdSaveResult()
	case key.Matches(msg, keys.enter) && m.focus == focusPassword:
		return m.submit()
	}

	if m.focus == focusPassword {
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		m.unlock.SetPassword(m.password.Value())
		m.snapshot = m.unlock.Snapshot()
		return m, cmd
	}

	return m.updatePicker(msg)
}

func (m *DecryptModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, cmdLoadFile(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return m, tea.Batch(cmd, cmdLoadFile(path))
	}

	return m, cmd
}

func (m *DecryptModel) submit() (tea.Model, tea.Cmd) {
	if m.snapshot.Loading() {
		return m, nil
	}

	m.unlock.SetPassword(m.password.Value())
	done, ok := m.unlock.Submit(m.ctx)
	m.snapshot = m.unlock.Snapshot()
	if !ok {
		return m, nil
	}

	m.status = ""
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, waitForDecryption(done))
}

func (m *DecryptModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusPassword {
		m.password.Focus()
		return
	}
	m.password.Blur()
}

// View implements [tea.Model].
func (m *DecryptModel) View() string {
	var b strings.Builder

	b.WriteString("File      │ ")
	b.WriteString(fitText(valueOrDash(m.snapshot.FileName), 40))
	if m.snapshot.FileName != "" {
		b.WriteString(" (" + humanSize(m.fileSize) + ")")
	}
	b.WriteString("\n")
	if m.focus == focusPicker {
		b.WriteString(helpStyle.Render("Choose a PDF document (.pdf):"))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(m.picker.View(), "\n"))
		b.WriteString("\n")
	}
	b.WriteString("Password  │ [")
	b.WriteString(m.password.View())
	b.WriteString("]\n\n")

	if m.snapshot.Loading() {
		b.WriteString(disabledStyle.Render("[" + m.spinner.View() + " " + m.snapshot.ActionLabel() + "]"))
	} else {
		b.WriteString(actionStyle.Render("[" + m.snapshot.ActionLabel() + "]"))
	}
	b.WriteString("\n")

	if m.snapshot.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.snapshot.ErrorMessage))
		b.WriteString("\n")
	}

	if result := m.snapshot.Result; result != nil {
		b.WriteString("\n")
		b.WriteString(downloadStyle.Render(fmt.Sprintf("Download Decrypted PDF → %s (%s)", result.FileName, humanSize(result.Size))))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PDF DECRYPTER", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *DecryptModel) hotKeys() string {
	parts := []string{"tab: switch field"}
	if m.focus == focusPicker {
		parts = append(parts, "enter: select file")
	} else if !m.snapshot.Loading() {
		parts = append(parts, "enter: "+m.snapshot.ActionLabel())
	}
	if m.snapshot.Result != nil {
		parts = append(parts, "ctrl+s: download")
	}
	return strings.Join(parts, " │ ")
}

func cmdLoadFile(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := models.ReadSelectedFile(path)
		return fileLoadedMsg{file: file, err: err}
	}
}

// waitForDecryption blocks until the submission publishes its final snapshot.
func waitForDecryption(done <-chan models.DecryptionSnapshot) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-done
		if !ok {
			return nil
		}
		return decryptDoneMsg{snapshot: snapshot}
	}
}

func (m *DecryptModel) cmdSaveResult() tea.Cmd {
	svc := m.unlock
	dir := m.downloadDir
	return func() tea.Msg {
		path, err := svc.SaveResult(dir)
		return resultSavedMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
