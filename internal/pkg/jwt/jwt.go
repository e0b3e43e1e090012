package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

const defaultTokenTTL = 30 * time.Minute

type Generator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
}

func (g *Generator) GenerateConnectToken(userID string) (string, int64, error) {
	now := g.now()
	expiresAt := now.Add(g.ttl)

	claims := model.ConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// GenerateSubscribeToken grants userID a subscription to the community room.
func (g *Generator) GenerateSubscribeToken(userID, communityID string) (string, int64, error) {
	now := g.now()
	expiresAt := now.Add(g.ttl)

	claims := model.SubscribeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Channel:     model.CommunityRoom(communityID),
		UserID:      userID,
		CommunityID: communityID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign subscribe JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.ConnectClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ConnectClaims{}, g.key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connect JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.ConnectClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid connect JWT token")
}

// Subject validates an access token and returns its subject.
func (g *Generator) Subject(tokenString string) (string, error) {
	claims, err := g.ValidateConnectToken(tokenString)
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.Subject, nil
}

func (g *Generator) key(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return g.secret, nil
}
