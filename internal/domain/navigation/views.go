package navigation

import "pet-adoption/internal/domain/pets"

// NotFoundMessage se muestra en el detalle cuando el id no resuelve.
const NotFoundMessage = "Pet not found"

// PetReader es lo que las vistas necesitan del store.
type PetReader interface {
	Current() []pets.Pet
	GetPet(id int) (pets.Pet, bool)
}

// Card es una mascota lista para dibujar (la foto va como referencia opaca).
type Card struct {
	ID       int    `json:"id"`
	IDLabel  string `json:"id_label"`
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	SexLabel string `json:"sex_label"`
	Breed    string `json:"breed"`
	AgeLabel string `json:"age_label,omitempty"`
}

type ListView struct {
	Screen ScreenName `json:"screen"`
	Title  string     `json:"title"`
	Pets   []Card     `json:"pets"`
}

type DetailView struct {
	Screen  ScreenName `json:"screen"`
	Title   string     `json:"title"`
	PetID   int        `json:"pet_id"`
	Found   bool       `json:"found"`
	Pet     *Card      `json:"pet,omitempty"`
	Message string     `json:"message,omitempty"`
}

func NewCard(p pets.Pet) Card {
	return Card{
		ID:       p.ID,
		IDLabel:  p.IDLabel(),
		Name:     p.Name,
		Photo:    string(p.Photo),
		SexLabel: p.SexLabel(),
		Breed:    p.Breed,
		AgeLabel: p.AgeLabel(),
	}
}

func RenderList(list []pets.Pet) ListView {
	cards := make([]Card, 0, len(list))
	for _, p := range list {
		cards = append(cards, NewCard(p))
	}
	return ListView{
		Screen: ScreenList,
		Title:  pets.DefaultTitle,
		Pets:   cards,
	}
}

// RenderDetail nunca falla: un id que no existe se muestra como NotFoundMessage.
func RenderDetail(reader PetReader, petID int) DetailView {
	p, ok := reader.GetPet(petID)
	if !ok {
		return DetailView{
			Screen:  ScreenDetail,
			Title:   pets.DefaultTitle,
			PetID:   petID,
			Message: NotFoundMessage,
		}
	}

	card := NewCard(p)
	return DetailView{
		Screen: ScreenDetail,
		Title:  p.Title(),
		PetID:  petID,
		Found:  true,
		Pet:    &card,
	}
}

// Render arma la vista de la pantalla pedida (ListView o DetailView).
func Render(reader PetReader, s Screen) any {
	if s.Name == ScreenDetail {
		return RenderDetail(reader, s.PetID)
	}
	return RenderList(reader.Current())
}
