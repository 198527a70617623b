package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", digest)

	assert.True(t, h.Verify("Passw0rd!", digest))
	assert.False(t, h.Verify("passw0rd!", digest))
	assert.False(t, h.Verify("Passw0rd!", "not-a-hash"))
}
