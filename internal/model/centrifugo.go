package model

import "github.com/golang-jwt/jwt/v5"

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string `json:"channel"`
	Data    Event  `json:"data"`
}

type ConnectClaims struct {
	jwt.RegisteredClaims
}

type SubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID      string `json:"user_id"`
	CommunityID string `json:"community_id"`
}
