package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ScreenName identifica una pantalla lógica.
// @Enum list, detail
type ScreenName string

const (
	ScreenList   ScreenName = "list"
	ScreenDetail ScreenName = "detail"
)

// ParamPetID es el único parámetro de navegación.
const ParamPetID = "petId"

const (
	routeList   = "petlist"
	routeDetail = "petdetail/"
)

// Screen es el estado de navegación: la lista, o el detalle de un id.
type Screen struct {
	Name  ScreenName
	PetID int // solo para ScreenDetail
}

func ListScreen() Screen { return Screen{Name: ScreenList} }

func DetailScreen(petID int) Screen { return Screen{Name: ScreenDetail, PetID: petID} }

// Params es lo que recibe el host junto con el nombre de pantalla.
func (s Screen) Params() map[string]string {
	if s.Name == ScreenDetail {
		return map[string]string{ParamPetID: strconv.Itoa(s.PetID)}
	}
	return map[string]string{}
}

// Route: "petlist" o "petdetail/{petId}".
func (s Screen) Route() string {
	if s.Name == ScreenDetail {
		return routeDetail + strconv.Itoa(s.PetID)
	}
	return routeList
}

func (s Screen) String() string { return s.Route() }

// ParseRoute es la inversa de Route. El id tiene que ser entero.
func ParseRoute(route string) (Screen, error) {
	route = strings.Trim(strings.TrimSpace(route), "/")

	switch {
	case route == routeList:
		return ListScreen(), nil
	case strings.HasPrefix(route, routeDetail):
		raw := strings.TrimPrefix(route, routeDetail)
		id, err := strconv.Atoi(raw)
		if err != nil {
			return Screen{}, fmt.Errorf("%w: pet id %q", ErrInvalidInput, raw)
		}
		return DetailScreen(id), nil
	default:
		return Screen{}, fmt.Errorf("%w: unknown route %q", ErrInvalidInput, route)
	}
}

// ScreenFromParams reconstruye la pantalla desde (nombre, params) del host.
func ScreenFromParams(name ScreenName, params map[string]string) (Screen, error) {
	switch name {
	case ScreenList:
		return ListScreen(), nil
	case ScreenDetail:
		id, err := strconv.Atoi(strings.TrimSpace(params[ParamPetID]))
		if err != nil {
			return Screen{}, fmt.Errorf("%w: %s param", ErrInvalidInput, ParamPetID)
		}
		return DetailScreen(id), nil
	default:
		return Screen{}, fmt.Errorf("%w: unknown screen %q", ErrInvalidInput, name)
	}
}
