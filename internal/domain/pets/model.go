package pets

import (
	"fmt"
	"strings"
)

// Sex define el sexo de la mascota.
// @Enum male, female
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex acepta "male"/"female" (case-insensitive, también MALE/FEMALE).
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SexMale):
		return SexMale, nil
	case string(SexFemale):
		return SexFemale, nil
	default:
		return "", fmt.Errorf("%w: unknown sex %q", ErrInvalidInput, s)
	}
}

// PhotoRef es una referencia opaca a un asset de imagen.
// El core nunca la inspecciona; la resuelve el loader de imágenes del host.
type PhotoRef string

// Pet es un valor inmutable: no se modifica después de creado, se reemplaza.
type Pet struct {
	ID    int
	Photo PhotoRef
	Name  string
	Sex   Sex

	IsSpayedNeutered bool
	Breed            string

	AgeYear  int
	AgeMonth int
}
