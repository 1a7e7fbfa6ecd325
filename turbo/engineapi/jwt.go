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
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ledgerwatch/log/v3"
)

const (
	JwtDefaultFile = "jwt.hex"
	jwtSecretSize  = 32
	// jwtExpiryTimeout bounds the clock skew allowed for the iat claim.
	jwtExpiryTimeout = 60 * time.Second
)

var ErrInvalidJWTSecret = errors.New("invalid JWT secret")

// ObtainJWTSecret loads the jwt-secret from path, or generates a new one and
// writes it there if the file does not exist.
func ObtainJWTSecret(path string, logger log.Logger) ([]byte, error) {
	if len(path) == 0 {
		path = JwtDefaultFile
	}
	logger.Info("Reading JWT secret", "path", path)
	data, err := os.ReadFile(path)
	if err == nil {
		jwtSecret := common.FromHex(strings.TrimSpace(string(data)))
		if len(jwtSecret) == jwtSecretSize {
			return jwtSecret, nil
		}
		logger.Error("Invalid JWT secret", "path", path, "length", len(jwtSecret))
		return nil, ErrInvalidJWTSecret
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	jwtSecret := make([]byte, jwtSecretSize)
	if _, err := rand.Read(jwtSecret); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(hexutil.Encode(jwtSecret)), 0600); err != nil {
		return nil, err
	}
	logger.Info("Generated JWT secret", "path", path)
	return jwtSecret, nil
}

// CheckJwtSecret validates the bearer token of r, replying 401 and returning
// false if it is not acceptable.
func CheckJwtSecret(w http.ResponseWriter, r *http.Request, jwtSecret []byte) bool {
	if err := checkToken(r.Header.Get("Authorization"), jwtSecret, time.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return false
	}
	return true
}

func checkToken(auth string, jwtSecret []byte, now time.Time) error {
	strToken, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || strToken == "" {
		return errors.New("missing token")
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(strToken, &claims, func(*jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	switch {
	case err != nil:
		return err
	case !token.Valid:
		return errors.New("invalid token")
	case claims.IssuedAt == nil:
		return errors.New("missing issued-at")
	}
	iat := claims.IssuedAt.Time
	if now.Sub(iat) > jwtExpiryTimeout {
		return fmt.Errorf("stale token, issued at %v", iat)
	}
	if iat.Sub(now) > jwtExpiryTimeout {
		return fmt.Errorf("future token, issued at %v", iat)
	}
	return nil
}

// NewJWTAuth signs every outgoing request with a fresh token.
func NewJWTAuth(jwtSecret []byte) func(h http.Header) error {
	return func(h http.Header) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		})
		s, err := token.SignedString(jwtSecret)
		if err != nil {
			return fmt.Errorf("failed to create JWT token: %w", err)
		}
		h.Set("Authorization", "Bearer "+s)
		return nil
	}
}
