package env

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-appenv/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadEnv_PrefixFilter(t *testing.T) {
	src := MapSource{"PUBLIC_A": "a", "PUBLIC_B": "b", "SECRET": "s"}

	m, err := LoadEnv(context.Background(), src, "PUBLIC_")
	require.NoError(t, err)
	assert.Equal(t, []string{"PUBLIC_A", "PUBLIC_B"}, m.Keys())

	all, err := LoadEnv(context.Background(), src, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Len())
}

func TestLoadEnv_NilSource(t *testing.T) {
	_, err := LoadEnv(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestLoadEnv_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)

	boom := errors.New("boom")
	src := mock.NewMockSource(ctrl)
	src.EXPECT().Load(gomock.Any()).Return(nil, boom)
	src.EXPECT().Name().Return("broken")

	_, err := LoadEnv(context.Background(), src, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadingSource)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoad_SplitsNamespaces(t *testing.T) {
	src := MapSource{
		"PUBLIC_API_URL": "https://api.example.com",
		"PUBLIC_API-KEY": "x",
		"DATABASE_URL":   "postgres://",
		"npm_command":    "run",
	}

	snap, err := Load(context.Background(), src, DefaultPrefixes())
	require.NoError(t, err)

	// public key is visible in the public dynamic mapping
	v, ok := snap.DynamicPublic().Get("PUBLIC_API_URL")
	assert.True(t, ok)
	assert.Equal(t, "https://api.example.com", v)

	// key without the prefix is private only
	_, ok = snap.DynamicPublic().Get("DATABASE_URL")
	assert.False(t, ok)
	v, ok = snap.DynamicPrivate().Get("DATABASE_URL")
	assert.True(t, ok)
	assert.Equal(t, "postgres://", v)

	// public key never leaks into the private mapping
	assert.False(t, snap.DynamicPrivate().Has("PUBLIC_API_URL"))

	// static namespaces keep only exported Go identifiers
	assert.Equal(t, []string{"PUBLIC_API_URL"}, snap.StaticPublic().Keys())
	assert.Equal(t, []string{"DATABASE_URL"}, snap.StaticPrivate().Keys())
	assert.Equal(t, []string{"PUBLIC_API-KEY"}, snap.Skipped(Public))
	assert.Equal(t, []string{"npm_command"}, snap.Skipped(Private))

	assert.Equal(t, snap.DynamicPublic(), snap.Namespace(Dynamic, Public))
	assert.Equal(t, snap.DynamicPrivate(), snap.Namespace(Dynamic, Private))
	assert.Equal(t, snap.StaticPublic(), snap.Namespace(Static, Public))
	assert.Equal(t, snap.StaticPrivate(), snap.Namespace(Static, Private))
	assert.Equal(t, "map", snap.SourceName())
}

func TestLoad_PrivatePrefix(t *testing.T) {
	src := MapSource{
		"PUBLIC_A": "a",
		"SECRET_B": "b",
		"HOME":     "/root",
	}

	snap, err := Load(context.Background(), src, Prefixes{Public: "PUBLIC_", Private: "SECRET_"})
	require.NoError(t, err)

	assert.Equal(t, []string{"SECRET_B"}, snap.DynamicPrivate().Keys())
	assert.Equal(t, []string{"PUBLIC_A"}, snap.DynamicPublic().Keys())
}

func TestLoad_InvalidPrefixes(t *testing.T) {
	_, err := Load(context.Background(), MapSource{}, Prefixes{Public: "APP_", Private: "APP_"})
	assert.ErrorIs(t, err, ErrPrefixConflict)
}

func TestLoad_SnapshotIsImmutable(t *testing.T) {
	src := MapSource{"PUBLIC_A": "a"}

	snap, err := Load(context.Background(), src, DefaultPrefixes())
	require.NoError(t, err)

	src["PUBLIC_A"] = "changed"
	snap.DynamicPublic().ToMap()["PUBLIC_A"] = "mutated"

	assert.Equal(t, "a", snap.DynamicPublic().Value("PUBLIC_A"))
}

func TestIsExportedIdentifier(t *testing.T) {
	tests := map[string]bool{
		"PUBLIC_API_URL": true,
		"HOME":           true,
		"npm_command":    false,
		"_PRIVATE":       false,
		"1ABC":           false,
		"WITH-DASH":      false,
		"":               false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsExportedIdentifier(name), name)
	}
}
