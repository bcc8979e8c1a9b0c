package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JoinedLayout - формат даты регистрации (точность до дня)
const JoinedLayout = "2006-01-02"

type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Balance      int64
	JoinedOn     string
}

type AccountClaims struct {
	jwt.RegisteredClaims
}

// JoinedToday - дата регистрации для аккаунта, созданного в момент t
func JoinedToday(t time.Time) string {
	return t.UTC().Format(JoinedLayout)
}
