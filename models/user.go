package models

// User is the authenticated operator as returned by POST /user/login.
// AccessToken is the bearer credential sent on every authenticated call.
type User struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

// Empty reports whether no user is signed in. A user restored from the
// durable credential store may carry only the token.
func (u User) Empty() bool {
	return u.ID == "" && u.AccessToken == ""
}
