package password

import (
	"context"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/domain"
)

var testParams = Params{Memory: 1024, Time: 1, Parallelism: 1, KeyLen: 32, SaltLen: 16}

func TestArgon2idHasher_HashAndVerify(t *testing.T) {
	h := NewArgon2idHasher(testParams)
	ctx := context.Background()

	encoded, err := h.Hash(ctx, "s3cret!pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	other, err := h.Hash(ctx, "s3cret!pass")
	require.NoError(t, err)
	assert.NotEqual(t, encoded, other, "salt is random")

	tests := map[string]struct {
		plain    string
		encoded  string
		expected bool
	}{
		"match":         {plain: "s3cret!pass", encoded: encoded, expected: true},
		"wrong-pass":    {plain: "s3cret!pasS", encoded: encoded, expected: false},
		"empty":         {plain: "s3cret!pass", encoded: "", expected: false},
		"wrong-algo":    {plain: "s3cret!pass", encoded: strings.Replace(encoded, "argon2id", "argon2i", 1), expected: false},
		"wrong-version": {plain: "s3cret!pass", encoded: strings.Replace(encoded, "v=19", "v=16", 1), expected: false},
		"bad-salt":      {plain: "s3cret!pass", encoded: "$argon2id$v=19$m=1024,t=1,p=1$***$abcd", expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, h.Verify(ctx, tt.plain, tt.encoded))
		})
	}
}

func TestArgon2idHasher_VerifyRejectsCorruptCost(t *testing.T) {
	h := NewArgon2idHasher(testParams)
	key := strings.Repeat("a2V5", 3)
	longKey := strings.Repeat("a2V5", 60)

	tests := map[string]string{
		"zero-time":        "$argon2id$v=19$m=65536,t=0,p=1$c2FsdHNhbHQ$" + key,
		"zero-parallelism": "$argon2id$v=19$m=65536,t=1,p=0$c2FsdHNhbHQ$" + key,
		"memory-below-8p":  "$argon2id$v=19$m=15,t=1,p=2$c2FsdHNhbHQ$" + key,
		"memory-too-large": "$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHQ$" + key,
		"time-too-large":   "$argon2id$v=19$m=1024,t=4294967295,p=1$c2FsdHNhbHQ$" + key,
		"key-too-long":     "$argon2id$v=19$m=1024,t=1,p=1$c2FsdHNhbHQ$" + longKey,
		"overflowing-p":    "$argon2id$v=19$m=1024,t=1,p=300$c2FsdHNhbHQ$" + key,
	}

	for name, encoded := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify(context.Background(), "pw", encoded))
			})
		})
	}
}

func TestArgon2idHasher_VerifyAcceptsOwnCost(t *testing.T) {
	heavy := Params{Memory: maxVerifyMemory + 8, Time: 1, Parallelism: 1, KeyLen: 16, SaltLen: 8}
	h := NewArgon2idHasher(heavy)
	assert.True(t, h.acceptsCost(heavy.Memory, heavy.Time, heavy.Parallelism, int(heavy.KeyLen)))
	assert.False(t, NewArgon2idHasher(testParams).acceptsCost(heavy.Memory, 1, 1, 16))
}

func TestArgon2idHasher_EmptyPassword(t *testing.T) {
	_, err := NewArgon2idHasher(testParams).Hash(context.Background(), "")
	assert.Error(t, err)
}

func TestInitPasswordHasher_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitPasswordHasher{}.Initialize(context.Background())
	require.NoError(t, err)

	hasher, err := depend.Resolve[domain.PasswordHasher]()
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}
