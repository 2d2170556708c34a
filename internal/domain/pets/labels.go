package pets

import "strconv"

// DefaultTitle es el título de la app cuando no hay nombre que mostrar.
const DefaultTitle = "Compose Pet Adoption"

// SexLabel devuelve p.ej. "Female/Spayed" o "Male/Not Neutered".
func (p Pet) SexLabel() string {
	sex := "Male"
	procedure := "Neutered"
	if p.Sex == SexFemale {
		sex = "Female"
		procedure = "Spayed"
	}
	if !p.IsSpayedNeutered {
		procedure = "Not " + procedure
	}
	return sex + "/" + procedure
}

func (p Pet) IDLabel() string {
	return strconv.Itoa(p.ID)
}

// Title es el nombre de la mascota, o DefaultTitle si está vacío.
func (p Pet) Title() string {
	if p.Name == "" {
		return DefaultTitle
	}
	return p.Name
}
