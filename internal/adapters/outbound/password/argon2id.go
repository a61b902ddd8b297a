// Package password hashes user passwords with argon2id.
package password

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
	"golang.org/x/crypto/argon2"
)

// Params are the argon2id cost parameters.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
	SaltLen     uint32
}

// DefaultParams are the parameters used by InitPasswordHasher.
var DefaultParams = Params{Memory: 64 * 1024, Time: 3, Parallelism: 1, KeyLen: 32, SaltLen: 16}

// Upper bounds accepted when verifying a stored hash. The hasher's own
// parameters are always accepted.
const (
	maxVerifyMemory = 4 * 64 * 1024 // KiB
	maxVerifyTime   = 16
	maxVerifyKeyLen = 128
)

// Argon2idHasher implements domain.PasswordHasher.
// Hashes are PHC strings: $argon2id$v=19$m=<m>,t=<t>,p=<p>$<salt>$<key>
type Argon2idHasher struct {
	params Params
}

// NewArgon2idHasher creates a hasher with the given parameters.
func NewArgon2idHasher(p Params) Argon2idHasher {
	return Argon2idHasher{params: p}
}

// Hash returns the PHC encoded hash of plain.
func (h Argon2idHasher) Hash(ctx context.Context, plain string) (string, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	if plain == "" {
		err := fmt.Errorf("empty password")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	key := argon2.IDKey([]byte(plain), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plain matches the encoded hash. Malformed hashes never match.
func (h Argon2idHasher) Verify(ctx context.Context, plain, encoded string) bool {
	_, span := telemetry.Start(ctx)
	defer span.End()

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	stored, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(stored) == 0 {
		return false
	}
	if !h.acceptsCost(m, t, p, len(stored)) {
		return false
	}
	key := argon2.IDKey([]byte(plain), salt, t, m, p, uint32(len(stored)))
	return subtle.ConstantTimeCompare(key, stored) == 1
}

// acceptsCost rejects cost parameters argon2 cannot run with or that exceed
// the verification bounds.
func (h Argon2idHasher) acceptsCost(m, t uint32, p uint8, keyLen int) bool {
	if t < 1 || p < 1 || m < 8*uint32(p) {
		return false
	}
	return m <= max(maxVerifyMemory, h.params.Memory) &&
		t <= max(maxVerifyTime, h.params.Time) &&
		keyLen <= int(max(maxVerifyKeyLen, h.params.KeyLen))
}

// InitPasswordHasher registers the domain.PasswordHasher.
type InitPasswordHasher struct{}

// Initialize registers an Argon2idHasher with the default parameters.
func (InitPasswordHasher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PasswordHasher](NewArgon2idHasher(DefaultParams))
	return ctx, nil
}
