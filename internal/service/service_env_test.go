package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshot(t *testing.T, vars map[string]string) *env.Snapshot {
	t.Helper()
	snap, err := env.Load(context.Background(), env.MapSource(vars), env.DefaultPrefixes())
	require.NoError(t, err)
	return snap
}

func TestNewEnvService_NilSnapshot(t *testing.T) {
	svc, err := NewEnvService(nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNilSnapshot)
}

func TestEnvService_Namespaces(t *testing.T) {
	svc, err := NewEnvService(newTestSnapshot(t, map[string]string{
		"PUBLIC_API_URL": "https://api.example.com",
		"DATABASE_URL":   "postgres://localhost/db",
	}), logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	public := svc.PublicEnv(ctx)
	assert.Equal(t, []string{"PUBLIC_API_URL"}, public.Keys())
	assert.False(t, public.Has("DATABASE_URL"))

	value, err := svc.Lookup(ctx, env.Private, "DATABASE_URL")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/db", value)

	_, err = svc.Lookup(ctx, env.Private, "PUBLIC_API_URL")
	assert.ErrorIs(t, err, ErrVariableNotFound)
}

func TestEnvService_Lookup(t *testing.T) {
	svc, err := NewEnvService(newTestSnapshot(t, map[string]string{
		"PUBLIC_NAME": "demo",
		"SECRET":      "s3cr3t",
		"EMPTY":       "",
	}), logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name       string
		visibility env.Visibility
		key        string
		want       string
		wantErr    error
	}{
		{name: "public hit", visibility: env.Public, key: "PUBLIC_NAME", want: "demo"},
		{name: "private hit", visibility: env.Private, key: "SECRET", want: "s3cr3t"},
		{name: "empty value is present", visibility: env.Private, key: "EMPTY", want: ""},
		{name: "private key through public", visibility: env.Public, key: "SECRET", wantErr: ErrVariableNotFound},
		{name: "public key through private", visibility: env.Private, key: "PUBLIC_NAME", wantErr: ErrVariableNotFound},
		{name: "missing", visibility: env.Public, key: "PUBLIC_MISSING", wantErr: ErrVariableNotFound},
		{name: "unknown visibility", visibility: env.Visibility(7), key: "SECRET", wantErr: ErrUnknownVisibility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Lookup(ctx, tt.visibility, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
