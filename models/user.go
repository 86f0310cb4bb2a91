package models

// UserProfile is the blob written on login. It is the only thing that
// outlives a session; everything else lives in memory.
type UserProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
	Avatar     string `json:"avatar"`
}
