package service

import (
	"testing"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/internal/config"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(newTestSnapshot(t, nil), classname.NewMerger(nil), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.EnvService)
	assert.NotNil(t, services.ClassNameService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_Errors(t *testing.T) {
	_, err := NewServices(nil, nil, config.StructuredConfig{App: config.App{Version: "1.0.0"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilSnapshot)

	_, err = NewServices(newTestSnapshot(t, nil), nil, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
