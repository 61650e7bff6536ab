package services

import "fmt"

const (
	CLAIM_RATE_LIMIT_PER_MINUTE = 30
	AUTH_RATE_LIMIT_PER_MINUTE  = 10
)

func LimitKeyClaim(userID int64) string {
	return fmt.Sprintf("limit:claim:%d", userID)
}

func LimitKeyAuth(email string) string {
	return fmt.Sprintf("limit:auth:%s", email)
}
