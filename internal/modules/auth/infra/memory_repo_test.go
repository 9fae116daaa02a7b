package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/auth/domain"
)

func saveOTP(t *testing.T, repo domain.OTPRepo, email string, expiresAt time.Time) *domain.PasswordResetOTP {
	t.Helper()
	require.NoError(t, repo.Save(domain.PasswordResetOTP{
		Email:     email,
		CodeHash:  "hash",
		ExpiresAt: expiresAt,
	}))
	rec, err := repo.LatestEligible(email, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec
}

func TestOTPRepoLatestEligible(t *testing.T) {
	repo := NewMemOTPRepo()
	now := time.Now().UTC()

	first := saveOTP(t, repo, "user@test.com", now.Add(15*time.Minute))
	time.Sleep(time.Millisecond) // разные created_at
	second := saveOTP(t, repo, "user@test.com", now.Add(15*time.Minute))

	rec, err := repo.LatestEligible("user@test.com", now)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, second.ID, rec.ID)
	assert.NotEqual(t, first.ID, rec.ID)

	rec, err = repo.LatestEligible("other@test.com", now)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestOTPRepoExpiry(t *testing.T) {
	repo := NewMemOTPRepo()
	now := time.Now().UTC()

	require.NoError(t, repo.Save(domain.PasswordResetOTP{
		Email:     "user@test.com",
		CodeHash:  "hash",
		ExpiresAt: now.Add(-time.Minute),
	}))

	rec, err := repo.LatestEligible("user@test.com", now)
	require.NoError(t, err)
	assert.Nil(t, rec, "expired record must not be selected")
}

func TestOTPRepoAttemptsExhaustion(t *testing.T) {
	repo := NewMemOTPRepo()
	now := time.Now().UTC()
	rec := saveOTP(t, repo, "user@test.com", now.Add(15*time.Minute))

	for i := 0; i < domain.MaxOTPAttempts-1; i++ {
		require.NoError(t, repo.IncrementAttempts(rec.ID))
		got, err := repo.LatestEligible("user@test.com", now)
		require.NoError(t, err)
		require.NotNil(t, got, "after %d attempts record must still be eligible", i+1)
		assert.Equal(t, i+1, got.Attempts)
	}

	require.NoError(t, repo.IncrementAttempts(rec.ID))
	got, err := repo.LatestEligible("user@test.com", now)
	require.NoError(t, err)
	assert.Nil(t, got, "record with exhausted attempts must not be selected")
}

func TestOTPRepoConsume(t *testing.T) {
	repo := NewMemOTPRepo()
	now := time.Now().UTC()
	rec := saveOTP(t, repo, "user@test.com", now.Add(15*time.Minute))

	require.NoError(t, repo.Consume(rec.ID, now))

	got, err := repo.LatestEligible("user@test.com", now)
	require.NoError(t, err)
	assert.Nil(t, got, "consumed record must not be selected")
}

func TestUserRepoEmailAndUsernameUniqueness(t *testing.T) {
	repo := NewMemUserRepo()

	_, err := repo.Create(domain.CreateUserParams{
		Email: "user@test.com", Username: "user1", Role: domain.RoleUser, PasswordHash: "h",
	})
	require.NoError(t, err)

	_, err = repo.Create(domain.CreateUserParams{
		Email: "user@test.com", Username: "user2", Role: domain.RoleUser, PasswordHash: "h",
	})
	assert.Error(t, err)

	_, err = repo.Create(domain.CreateUserParams{
		Email: "user2@test.com", Username: "user1", Role: domain.RoleUser, PasswordHash: "h",
	})
	assert.Error(t, err)

	exists, err := repo.ExistsByEmail("user@test.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByUsername("user1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoginRepoHistoryOrder(t *testing.T) {
	repo := NewMemLoginRepo()

	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		_, err := repo.Record(domain.LoginRecord{UserID: "u1", IPAddress: ip, UserAgent: "ua"})
		require.NoError(t, err)
	}

	items, total, err := repo.ListByUser("u1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	// свежие сверху
	assert.Equal(t, "3.3.3.3", items[0].IPAddress)
	assert.Equal(t, "2.2.2.2", items[1].IPAddress)
}
