package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/miku-logger/internal/domain"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

func TestGate_ResolveTarget(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	channels := fakeChannels{100: {55: true, 56: false}}
	gate := NewGate(fakeAllow{100: true}, store, channels)

	// sin settings
	_, ok, err := gate.ResolveTarget(ctx, 100)
	require.NoError(t, err)
	assert.False(t, ok)

	store.settings[100] = domain.GuildSettings{GuildID: 100, LogChannel: 55, Active: true}
	ch, ok, err := gate.ResolveTarget(ctx, 100)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.ChannelID(55), ch)

	// inactivo
	store.settings[100] = domain.GuildSettings{GuildID: 100, LogChannel: 55, Active: false}
	_, ok, _ = gate.ResolveTarget(ctx, 100)
	assert.False(t, ok)

	// activo sin canal cuenta como inactivo
	store.settings[100] = domain.GuildSettings{GuildID: 100, Active: true}
	_, ok, _ = gate.ResolveTarget(ctx, 100)
	assert.False(t, ok)

	// canal que no es de texto / que ya no existe
	store.settings[100] = domain.GuildSettings{GuildID: 100, LogChannel: 56, Active: true}
	_, ok, _ = gate.ResolveTarget(ctx, 100)
	assert.False(t, ok)
	store.settings[100] = domain.GuildSettings{GuildID: 100, LogChannel: 99, Active: true}
	_, ok, _ = gate.ResolveTarget(ctx, 100)
	assert.False(t, ok)
}

func TestGate_ResolveTargetNotAllowlistedReadsNothing(t *testing.T) {
	store := newMemStore()
	store.fail = errors.New("must not be called")
	gate := NewGate(fakeAllow{}, store, fakeChannels{})

	_, ok, err := gate.ResolveTarget(context.Background(), 200)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGate_ResolveTargetStorageError(t *testing.T) {
	store := newMemStore()
	store.fail = &storage.Error{Op: "get", Err: errors.New("io")}
	gate := NewGate(fakeAllow{100: true}, store, fakeChannels{})

	_, _, err := gate.ResolveTarget(context.Background(), 100)
	assert.ErrorIs(t, err, storage.ErrStorage)
}

func TestGate_CheckCommandOrder(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	gate := NewGate(fakeAllow{100: true}, store, fakeChannels{})

	cases := []struct {
		name          string
		inv           Invocation
		requireActive bool
		want          Denial
	}{
		{"dm wins over everything", Invocation{GuildID: 0, IsOwner: false}, true, DenyNoGuild},
		{"owner before allowlist", Invocation{GuildID: 200, IsOwner: false}, true, DenyNotOwner},
		{"allowlist before active", Invocation{GuildID: 200, IsOwner: true}, true, DenyNotAllowlisted},
		{"inactive", Invocation{GuildID: 100, IsOwner: true}, true, DenyInactive},
		{"enable skips active", Invocation{GuildID: 100, IsOwner: true}, false, DenyNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := gate.CheckCommand(ctx, tc.inv, tc.requireActive)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d, d.String())
		})
	}

	store.settings[100] = domain.GuildSettings{GuildID: 100, LogChannel: 55, Active: true}
	d, err := gate.CheckCommand(ctx, Invocation{GuildID: 100, IsOwner: true}, true)
	require.NoError(t, err)
	assert.Equal(t, DenyNone, d)
}
