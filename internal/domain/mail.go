package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	Email string `json:"email"`
}

type CreateUserMailData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	Email      string `json:"email"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type MaintenanceScheduledMailData struct {
	AssetName string `json:"assetName"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

type AssetAssignedMailData struct {
	AssetName string `json:"assetName"`
}
