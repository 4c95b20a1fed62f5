package auth

type AddressRequest struct {
	City    string `json:"city" binding:"omitempty,max=100"`
	Street  string `json:"street" binding:"omitempty,max=200"`
	Zipcode string `json:"zipcode" binding:"omitempty,zipcode"`
}

type SignupRequest struct {
	Name     string          `json:"name" binding:"required,notblank,max=20"`
	Email    string          `json:"email" binding:"required,email,max=50"`
	Password string          `json:"password" binding:"required,min=8,max=15"`
	Address  *AddressRequest `json:"address"`
}

type SignupResponse struct {
	ID uint32 `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=15"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
