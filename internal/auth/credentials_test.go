package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticate(t *testing.T) {
	table, err := newTable(map[string]string{"davi": "obra2024"}, bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, table.Authenticate("davi", "obra2024"))
	assert.False(t, table.Authenticate("davi", "wrong"))
	assert.False(t, table.Authenticate("davi", ""))
}

func TestAuthenticate_UnknownUserAlwaysFails(t *testing.T) {
	table, err := newTable(map[string]string{"davi": "obra2024"}, bcrypt.MinCost)
	require.NoError(t, err)

	for _, pass := range []string{"obra2024", "", "anything"} {
		assert.False(t, table.Authenticate("mallory", pass), pass)
	}
}

func TestNewTable_DoesNotKeepPlaintext(t *testing.T) {
	table, err := newTable(map[string]string{"davi": "obra2024"}, bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "obra2024", string(table["davi"]))
}

func TestNewTable_AcceptsPrehashed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	table, err := newTable(map[string]string{"ana": string(hash)}, bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, hash, table["ana"])
	assert.True(t, table.Authenticate("ana", "s3cret"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
