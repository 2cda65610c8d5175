package service

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AZS-FEFU/camera/internal/model"
	"github.com/AZS-FEFU/camera/internal/plate"
	"github.com/AZS-FEFU/camera/internal/stats"
)

var (
	ErrEmptyPlate    = errors.New("plate number must not be empty")
	ErrEmptyBatch    = errors.New("at least one plate number is required")
	ErrBatchTooLarge = errors.New("at most 10 plate numbers per request")
)

// MaxBatchSize ограничивает количество номеров в одном пакетном запросе.
const MaxBatchSize = 10

type ValidationService struct {
	counters *stats.Counters
	log      zerolog.Logger
}

func NewValidationService(counters *stats.Counters, log zerolog.Logger) *ValidationService {
	return &ValidationService{
		counters: counters,
		log:      log,
	}
}

// ValidatePlate проверяет один номерной знак и учитывает результат
// в счётчиках. Пустой после обрезки пробелов номер не проверяется.
func (s *ValidationService) ValidatePlate(raw string) (model.PlateValidationResponse, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.PlateValidationResponse{}, ErrEmptyPlate
	}

	result := plate.Classify(trimmed)
	s.counters.Record(result.Valid)

	s.log.Debug().
		Str("plate", result.Plate).
		Bool("is_valid", result.Valid).
		Msg("plate validated")

	return model.NewPlateValidationResponse(result), nil
}

// ValidateBatch проверяет список номеров, сохраняя порядок входа.
// Сбой обработки одного номера не прерывает пакет: такой номер
// возвращается невалидным с текстом ошибки в message.
func (s *ValidationService) ValidateBatch(plates []string) ([]model.PlateValidationResponse, error) {
	if len(plates) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(plates) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	results := make([]model.PlateValidationResponse, 0, len(plates))
	for _, p := range plates {
		resp, err := s.ValidatePlate(p)
		if err != nil {
			s.log.Error().Err(err).Str("plate", p).Msg("failed to validate plate")
			results = append(results, model.PlateValidationResponse{
				PlateNumber: p,
				Message:     "processing error: " + err.Error(),
			})
			continue
		}
		results = append(results, resp)
	}

	return results, nil
}

// Stats возвращает моментальный снимок счётчиков валидации.
func (s *ValidationService) Stats() model.ValidationStats {
	snap := s.counters.Snapshot()

	return model.ValidationStats{
		TotalValidated: snap.Total,
		ValidPlates:    snap.Valid,
		InvalidPlates:  snap.Invalid,
	}
}
