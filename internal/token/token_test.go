package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/storefront/internal/errors"
)

func TestVerifyToken(t *testing.T) {
	c := context.Background()
	secret := "secret"

	valid, err := NewToken(c, secret, "operator", time.Now())
	require.NoError(t, err)
	expired, err := NewToken(c, secret, "operator", time.Now().Add(-2*TokenTTL))
	require.NoError(t, err)

	tests := []struct {
		name        string
		secret      string
		token       string
		expectedErr error
	}{
		{
			name:        "given valid token should return parsed token",
			secret:      secret,
			token:       valid,
			expectedErr: nil,
		},
		{
			name:        "given token signed with other secret should return invalid token",
			secret:      "other",
			token:       valid,
			expectedErr: errors.ErrTokenInvalid,
		},
		{
			name:        "given expired token should return invalid token",
			secret:      secret,
			token:       expired,
			expectedErr: errors.ErrTokenInvalid,
		},
		{
			name:        "given garbage should return invalid token",
			secret:      secret,
			token:       "not-a-jwt",
			expectedErr: errors.ErrTokenInvalid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := VerifyToken(c, test.secret, test.token)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			subject, err := actual.Claims.GetSubject()
			assert.NoError(t, err)
			assert.Equal(t, "operator", subject)
		})
	}
}

func TestNewTokenEmptySubject(t *testing.T) {
	_, err := NewToken(context.Background(), "secret", "", time.Now())
	assert.ErrorIs(t, err, errors.ErrEmptySubject)
}
