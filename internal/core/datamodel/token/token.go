package token

import "time"

// AccessToken is the persisted form of an issued bearer token. Only the SHA-256
// of the plaintext token is stored.
type AccessToken struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null"`
	TokenHash string    `json:"-" gorm:"column:token_hash;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (AccessToken) TableName() string {
	return "access_tokens"
}
