package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/config"
	"mentorhub/internal/domain/entity"
)

func testAccount() *entity.Account {
	return &entity.Account{
		ID:    1,
		Email: "test@example.com",
		Role:  entity.RoleStudent,
	}
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	account := testAccount()

	hash, err := hasher.Hash(account, "my-password")
	require.NoError(t, err)
	assert.NotEqual(t, "my-password", hash)

	ok, err := hasher.Verify(account, hash, "my-password")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(account, hash, "not-my-password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	account := testAccount()

	first, err := hasher.Hash(account, "my-password")
	require.NoError(t, err)
	second, err := hasher.Hash(account, "my-password")
	require.NoError(t, err)

	// Each call mixes in a fresh salt; both must still verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify(account, first, "my-password")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Verify(account, second, "my-password")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_Hash_Guards(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(nil, "my-password")
	require.Error(t, err)

	_, err = hasher.Hash(testAccount(), "")
	require.Error(t, err)

	_, err = hasher.Hash(testAccount(), "   ")
	require.Error(t, err)
}

func TestBcryptHasher_Verify_Guards(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	account := testAccount()

	_, err := hasher.Verify(nil, "some-hash", "password")
	require.Error(t, err)

	_, err = hasher.Verify(account, "", "password")
	require.Error(t, err)

	_, err = hasher.Verify(account, "some-hash", "")
	require.Error(t, err)
}

func TestBcryptHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// A stored value that is not a bcrypt hash fails verification without
	// surfacing an error.
	ok, err := hasher.Verify(testAccount(), "plainly-not-a-bcrypt-hash", "my-password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	})
	account := testAccount()

	hash, err := hasher.Hash(account, "my-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
