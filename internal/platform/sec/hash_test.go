// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toolshelf/internal/platform/sec"
)

/*
TestHashPassword_Deterministic verifies that identical inputs produce identical digests.
*/
func TestHashPassword_Deterministic(t *testing.T) {
	salt := "0f1e2d3c4b5a69788796a5b4c3d2e1f0"

	first := sec.HashPassword("correct horse", salt)
	second := sec.HashPassword("correct horse", salt)

	assert.Equal(t, first, second)
	// 128-byte key hex encoded.
	assert.Len(t, first, 256)
}

/*
TestHashPassword_SaltSensitivity verifies that different salts yield different digests.
*/
func TestHashPassword_SaltSensitivity(t *testing.T) {
	saltA, err := sec.GenerateSalt()
	require.NoError(t, err)
	saltB, err := sec.GenerateSalt()
	require.NoError(t, err)

	require.NotEqual(t, saltA, saltB)
	assert.NotEqual(t, sec.HashPassword("secret123", saltA), sec.HashPassword("secret123", saltB))
}

func TestHashPassword_PasswordSensitivity(t *testing.T) {
	salt := "abcdef"
	assert.NotEqual(t, sec.HashPassword("secret123", salt), sec.HashPassword("secret124", salt))
}

/*
TestVerifyPassword checks recomputation-based verification.
*/
func TestVerifyPassword(t *testing.T) {
	salt, err := sec.GenerateSalt()
	require.NoError(t, err)
	stored := sec.HashPassword("hunter22", salt)

	assert.True(t, sec.VerifyPassword("hunter22", salt, stored))
	assert.False(t, sec.VerifyPassword("hunter23", salt, stored))
	assert.False(t, sec.VerifyPassword("hunter22", salt+"x", stored))
	assert.False(t, sec.VerifyPassword("hunter22", salt, ""))
}

func TestGenerateSalt_Format(t *testing.T) {
	salt, err := sec.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, salt, sec.SaltLength*2)
	assert.Regexp(t, `^[0-9a-f]+$`, salt)
}
