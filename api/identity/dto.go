package identity

// AuthRequest carries registration and login credentials.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	SolveCount int    `json:"solve_count"`
	Token      string `json:"token"`
}
