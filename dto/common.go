package dto

// UserInfo is the trimmed user shape embedded in listing and review
// responses.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
