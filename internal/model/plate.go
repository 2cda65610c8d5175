package model

import "github.com/AZS-FEFU/camera/internal/plate"

// PlateValidationRequest представляет тело запроса на проверку одного номера.
type PlateValidationRequest struct {
	PlateNumber string `json:"plate_number" binding:"required,min=1,max=20"`
}

// PlateValidationResponse представляет результат проверки одного номера.
// Для невалидного номера plate_type и region_code сериализуются как null.
type PlateValidationResponse struct {
	PlateNumber string      `json:"plate_number"`
	IsValid     bool        `json:"is_valid"`
	PlateType   *plate.Type `json:"plate_type"`
	RegionCode  *string     `json:"region_code"`
	Message     string      `json:"message"`
}

// NewPlateValidationResponse собирает ответ из результата классификации.
func NewPlateValidationResponse(res plate.Result) PlateValidationResponse {
	resp := PlateValidationResponse{
		PlateNumber: res.Plate,
		IsValid:     res.Valid,
		Message:     res.Message,
	}

	if res.Valid {
		plateType := res.Type
		resp.PlateType = &plateType
	}
	if res.RegionCode != "" {
		regionCode := res.RegionCode
		resp.RegionCode = &regionCode
	}

	return resp
}

// ValidationStats содержит накопленные счётчики проверок.
type ValidationStats struct {
	TotalValidated int64 `json:"total_validated"`
	ValidPlates    int64 `json:"valid_plates"`
	InvalidPlates  int64 `json:"invalid_plates"`
}
