package profileservice

// Profile модель профиля клиента из ProfileService
type Profile struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	IsActive  bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
