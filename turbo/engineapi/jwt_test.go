// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package engineapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signedToken(t *testing.T, secret []byte, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return "Bearer " + s
}

func TestCheckToken(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	iat := func(d time.Duration) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now.Add(d))}
	}
	tests := []struct {
		name string
		auth string
		ok   bool
	}{
		{"fresh", signedToken(t, testSecret, jwt.SigningMethodHS256, iat(0)), true},
		{"within skew in the past", signedToken(t, testSecret, jwt.SigningMethodHS256, iat(-59*time.Second)), true},
		{"within skew in the future", signedToken(t, testSecret, jwt.SigningMethodHS256, iat(59*time.Second)), true},
		{"stale", signedToken(t, testSecret, jwt.SigningMethodHS256, iat(-2*time.Minute)), false},
		{"future", signedToken(t, testSecret, jwt.SigningMethodHS256, iat(2*time.Minute)), false},
		{"no iat", signedToken(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{}), false},
		{"wrong secret", signedToken(t, []byte("another secret, 32 bytes long!!!"), jwt.SigningMethodHS256, iat(0)), false},
		{"wrong method", signedToken(t, testSecret, jwt.SigningMethodHS512, iat(0)), false},
		{"missing bearer", "", false},
		{"garbage", "Bearer abc.def.ghi", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkToken(tt.auth, testSecret, now)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestHandlerRejectsUnauthenticated(t *testing.T) {
	served := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !CheckJwtSecret(w, r, testSecret) {
			return
		}
		served = true
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, served)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, NewJWTAuth(testSecret)(req.Header))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, served)
}

func TestObtainJWTSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), JwtDefaultFile)

	generated, err := ObtainJWTSecret(path, log.New())
	require.NoError(t, err)
	require.Len(t, generated, 32)

	loaded, err := ObtainJWTSecret(path, log.New())
	require.NoError(t, err)
	require.Equal(t, generated, loaded)

	// surrounding whitespace and a missing 0x prefix are accepted
	require.NoError(t, os.WriteFile(path, []byte("  "+hexutil.Encode(testSecret)[2:]+"\n"), 0600))
	loaded, err = ObtainJWTSecret(path, log.New())
	require.NoError(t, err)
	require.Equal(t, testSecret, loaded)

	require.NoError(t, os.WriteFile(path, []byte("0x1234"), 0600))
	_, err = ObtainJWTSecret(path, log.New())
	require.ErrorIs(t, err, ErrInvalidJWTSecret)
}
