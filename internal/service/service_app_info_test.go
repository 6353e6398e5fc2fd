package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("2.5.1", "2026-01-02", "abc123"), logger.Nop())

	assert.Equal(t, "2.5.1", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "abc123", svc.GetBuildInfo(context.Background()).Commit())
}

func TestAppInfoService_EmptyVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
