package user

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Role       Role    `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (u UserResponse) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
	}
}
