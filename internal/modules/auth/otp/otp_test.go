package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{"default on zero", 0, DefaultLength},
		{"default on negative", -3, DefaultLength},
		{"six digits", 6, 6},
		{"eight digits", 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCode(tt.n)
			require.NoError(t, err)
			require.Len(t, code, tt.wantLen)
			for _, r := range code {
				assert.True(t, r >= '0' && r <= '9', "non-digit %q in code %q", r, code)
			}
		})
	}
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateCode(6)
		require.NoError(t, err)
		seen[code] = true
	}
	// 20 совпадающих кодов подряд — это сломанный генератор
	assert.Greater(t, len(seen), 1)
}

func TestHashAndVerifyCode(t *testing.T) {
	code, err := GenerateCode(6)
	require.NoError(t, err)

	hash, err := HashCode(code)
	require.NoError(t, err)
	require.NotEqual(t, code, hash)

	assert.True(t, VerifyCode(code, hash))
	assert.False(t, VerifyCode("000000", hash))
	assert.False(t, VerifyCode("", hash))
	assert.False(t, VerifyCode(code, "not-a-hash"))
	assert.False(t, VerifyCode(code, ""))
}

func TestHashCodeSalted(t *testing.T) {
	h1, err := HashCode("123456")
	require.NoError(t, err)
	h2, err := HashCode("123456")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyCode("123456", h1))
	assert.True(t, VerifyCode("123456", h2))
}
