// Package tui implements the terminal interface of the PDF decrypter client.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services    *service.ClientServices
	downloadDir string
	logger      *logger.Logger
}

// New creates the terminal UI. Decrypted documents are saved to downloadDir.
func New(services *service.ClientServices, downloadDir string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PDFUnlockService == nil || services.AppInfoService == nil {
		return nil, errNoServices
	}

	return &TUI{services: services, downloadDir: downloadDir, logger: logger}, nil
}

// Run shows the decrypt page until the user quits or ctx is cancelled.
// Quitting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	page := NewDecryptModel(ctx, t.services.PDFUnlockService, ".", t.downloadDir, t.logger)
	root := NewRootModel(page, t.services.AppInfoService.GetBuildInfo(ctx))

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
