// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"os"
	"path/filepath"
)

// SelectedFile is the document picked by the user. Content is opaque: no type
// or size checks are made before it is sent to the decryption service.
type SelectedFile struct {
	// Name is the base file name, sent as the multipart file name.
	Name string

	// Content holds the raw bytes of the document.
	Content []byte
}

// Size returns the number of content bytes.
func (f SelectedFile) Size() int64 {
	return int64(len(f.Content))
}

// ReadSelectedFile loads the file at path into a [SelectedFile]. Only the base
// name of path is kept.
func ReadSelectedFile(path string) (SelectedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return SelectedFile{}, fmt.Errorf("read selected file: %w", err)
	}

	return SelectedFile{Name: filepath.Base(path), Content: content}, nil
}
