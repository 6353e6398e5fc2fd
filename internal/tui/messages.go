package tui

import (
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

type fileLoadedMsg struct {
	file models.SelectedFile
	err  error
}

type decryptDoneMsg struct {
	snapshot models.DecryptionSnapshot
}

type resultSavedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
