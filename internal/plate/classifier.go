package plate

import (
	"fmt"
	"regexp"
	"strings"
)

// Type представляет тип российского номерного знака.
type Type string

const (
	TypeStandard   Type = "standard"
	TypeTaxi       Type = "taxi"
	TypeTrailer    Type = "trailer"
	TypeMotorcycle Type = "motorcycle"
	TypeTransit    Type = "transit"
	TypeDiplomatic Type = "diplomatic"
)

// Letters перечисляет допустимые буквы на российских номерах:
// кириллические буквы, имеющие латинские аналоги.
const Letters = "АВЕКМНОРСТУХ"

type rule struct {
	plateType Type
	pattern   *regexp.Regexp
}

// Порядок правил фиксирован: выигрывает первое совпадение.
// АВ123456 подходит и под taxi, и под trailer; засчитывается taxi.
var rules = []rule{
	{TypeStandard, regexp.MustCompile(fmt.Sprintf(`^[%s]\d{3}[%s]{2}\d{2,3}$`, Letters, Letters))}, // А123ВС77
	{TypeTaxi, regexp.MustCompile(fmt.Sprintf(`^[%s]{2}\d{3}\d{2,3}$`, Letters))},                  // АВ12377
	{TypeTrailer, regexp.MustCompile(fmt.Sprintf(`^[%s]{2}\d{4}\d{2,3}$`, Letters))},               // АВ1234777
	{TypeMotorcycle, regexp.MustCompile(fmt.Sprintf(`^\d{4}[%s]{2}\d{2,3}$`, Letters))},            // 1234АВ77
	{TypeTransit, regexp.MustCompile(fmt.Sprintf(`^Т\d{5}[%s]$`, Letters))},                        // Т12345А
	{TypeDiplomatic, regexp.MustCompile(`^\d{3,4}Д\d{2,3}$`)},                                      // 123Д77
}

// Result содержит итог классификации одного номерного знака.
type Result struct {
	// Номер после нормализации.
	Plate      string
	Valid      bool
	Type       Type
	RegionCode string
	Message    string
}

// Classify нормализует номер и определяет его тип по фиксированному
// набору форматов. Для любой входной строки возвращается результат.
func Classify(raw string) Result {
	normalized := Normalize(raw)

	for _, r := range rules {
		if !r.pattern.MatchString(normalized) {
			continue
		}
		return Result{
			Plate:      normalized,
			Valid:      true,
			Type:       r.plateType,
			RegionCode: extractRegion(r.plateType, normalized),
			Message:    fmt.Sprintf("valid plate (type: %s)", r.plateType),
		}
	}

	return Result{
		Plate:   normalized,
		Message: "invalid format",
	}
}

// extractRegion возвращает код региона для уже распознанного номера.
// Длина считается в рунах: кириллица в UTF-8 многобайтовая.
func extractRegion(t Type, normalized string) string {
	runes := []rune(normalized)

	switch t {
	case TypeStandard:
		if len(runes) == 8 {
			return string(runes[len(runes)-2:])
		}
		return string(runes[len(runes)-3:])
	case TypeTaxi, TypeTrailer, TypeMotorcycle:
		// Для такси длиной 8 (шесть цифр подряд) берутся последние две
		// цифры, даже если регион записан тремя.
		if len(runes) <= 8 {
			return string(runes[len(runes)-2:])
		}
		return string(runes[len(runes)-3:])
	case TypeDiplomatic:
		// Регион дипломатического номера идёт после буквы Д.
		if _, after, found := strings.Cut(normalized, "Д"); found {
			return after
		}
	}

	// У транзитных номеров кода региона нет.
	return ""
}
