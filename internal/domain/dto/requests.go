package dto

type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=64"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10,max=15"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PredictRequest struct {
	PM25 float64 `json:"pm25" validate:"gte=0"`
	PM10 float64 `json:"pm10" validate:"gte=0"`
	NO2  float64 `json:"no2" validate:"gte=0"`
	SO2  float64 `json:"so2" validate:"gte=0"`
	CO   float64 `json:"co" validate:"gte=0"`
	O3   float64 `json:"o3" validate:"gte=0"`

	Strategy string `json:"strategy" validate:"omitempty,oneof=epa-style weighted-sum"`
	Profile  string `json:"profile" validate:"omitempty,oneof=six-tier three-class"`
}

type SettingsRequest struct {
	EmailNotify    bool   `json:"email_notify"`
	SMSNotify      bool   `json:"sms_notify"`
	AlertThreshold int    `json:"alert_threshold" validate:"gte=0,lte=500"`
	Theme          string `json:"theme" validate:"omitempty,oneof=Light Dark"`
	Language       string `json:"language" validate:"omitempty,max=32"`
	ChartType      string `json:"chart_type" validate:"omitempty,oneof=Line Bar Area"`
	ShowGrid       bool   `json:"show_grid"`
}

type StationImportRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}
