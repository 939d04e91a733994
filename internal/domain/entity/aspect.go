package entity

import "fmt"

// Aspect представляет одно из семи фиксированных измерений моральной
// компетентности (moral intelligence). Значения неизменяемы, порядок
// в AllAspects определяет глобальный порядок прохождения теста.
type Aspect string

const (
	AspectEmpati           Aspect = "empati"
	AspectHatiNurani       Aspect = "hatiNurani"
	AspectPengendalianDiri Aspect = "pengendalianDiri"
	AspectHormat           Aspect = "hormat"
	AspectKebaikanHati     Aspect = "kebaikanHati"
	AspectToleransi        Aspect = "toleransi"
	AspectKeadilan         Aspect = "keadilan"
)

// aspectOrder задаёт канонический порядок аспектов. Этот порядок значим:
// он определяет, какой аспект "первый" и "последний", и сквозную нумерацию вопросов.
var aspectOrder = []Aspect{
	AspectEmpati,
	AspectHatiNurani,
	AspectPengendalianDiri,
	AspectHormat,
	AspectKebaikanHati,
	AspectToleransi,
	AspectKeadilan,
}

// aspectDisplayNames содержит отображаемые имена аспектов (на индонезийском,
// как в клиентском приложении).
var aspectDisplayNames = map[Aspect]string{
	AspectEmpati:           "Empati",
	AspectHatiNurani:       "Hati Nurani",
	AspectPengendalianDiri: "Pengendalian Diri",
	AspectHormat:           "Hormat",
	AspectKebaikanHati:     "Kebaikan Hati",
	AspectToleransi:        "Toleransi",
	AspectKeadilan:         "Keadilan",
}

// AllAspects возвращает аспекты в каноническом порядке прохождения.
// Возвращается копия, чтобы вызывающий код не мог изменить порядок.
func AllAspects() []Aspect {
	out := make([]Aspect, len(aspectOrder))
	copy(out, aspectOrder)
	return out
}

// DisplayName возвращает человекочитаемое имя аспекта.
func (a Aspect) DisplayName() string {
	if name, ok := aspectDisplayNames[a]; ok {
		return name
	}
	return string(a)
}

// IsValid проверяет, что значение входит в фиксированный набор аспектов.
func (a Aspect) IsValid() bool {
	_, ok := aspectDisplayNames[a]
	return ok
}

// ParseAspect преобразует строковый идентификатор в Aspect.
func ParseAspect(s string) (Aspect, error) {
	a := Aspect(s)
	if !a.IsValid() {
		return "", fmt.Errorf("unknown aspect: %q", s)
	}
	return a, nil
}
