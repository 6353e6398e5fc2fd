package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSelectedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0o600))

	f, err := ReadSelectedFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sample.pdf", f.Name)
	assert.Equal(t, []byte("%PDF-1.7"), f.Content)
	assert.Equal(t, int64(8), f.Size())
}

func TestReadSelectedFile_Missing(t *testing.T) {
	_, err := ReadSelectedFile(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRequestState_String(t *testing.T) {
	tests := map[RequestState]string{
		RequestIdle:      "idle",
		RequestInFlight:  "in_flight",
		RequestSucceeded: "succeeded",
		RequestFailed:    "failed",
		RequestState(42): "unknown",
	}
	for state, want := range tests {
		assert.Equal(t, want, state.String())
	}
}

func TestDecryptionSnapshot_ActionLabel(t *testing.T) {
	assert.Equal(t, "Decrypt PDF", DecryptionSnapshot{}.ActionLabel())
	assert.Equal(t, "Decrypting...", DecryptionSnapshot{State: RequestInFlight}.ActionLabel())
	assert.Equal(t, "Decrypt PDF", DecryptionSnapshot{State: RequestFailed}.ActionLabel())
	assert.True(t, DecryptionSnapshot{State: RequestInFlight}.Loading())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "")
	assert.Equal(t, "1.0.0", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "N/A", info.Commit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: N/A", info.String())

	assert.Equal(t, "N/A", AppBuildInfo{}.Version())
}
