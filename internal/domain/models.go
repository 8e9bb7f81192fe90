package domain

// Domain contains the records exchanged with the CTRL backend.

// Credentials is the login/signup request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the access token pair returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token" yaml:"access_token"`
	TokenType   string `json:"token_type" yaml:"token_type"`
}

type User struct {
	ID        int       `json:"id" yaml:"id"`
	Email     string    `json:"email" yaml:"email"`
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
}

// MoodInput is a single check-in submitted by the user.
type MoodInput struct {
	MoodScore   int `json:"mood_score" yaml:"mood_score"`
	EnergyLevel int `json:"energy_level" yaml:"energy_level"`
	StressLevel int `json:"stress_level" yaml:"stress_level"`
}

type MoodCreated struct {
	ID string `json:"id" yaml:"id"`
}

// Mood is a stored check-in as listed by the backend.
type Mood struct {
	ID     string `json:"id" yaml:"id"`
	Mood   int    `json:"mood" yaml:"mood"`
	Energy int    `json:"energy" yaml:"energy"`
	Stress int    `json:"stress" yaml:"stress"`
}
