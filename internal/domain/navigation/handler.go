package navigation

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, reader PetReader) {
	// Vistas sueltas (sin sesión), para hosts que manejan su propia pila
	r.Route("/screens", func(sr chi.Router) {
		sr.Get("/list", listScreenHandler(reader))
		sr.Get("/detail/{petID}", detailScreenHandler(reader))
		sr.Get("/route", routeScreenHandler(reader))
	})

	// Sesiones de navegación: el server hace de host con back-stack
	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", openSessionHandler(svc))
		sr.Get("/{sessionID}", getSessionHandler(svc))
		sr.Post("/{sessionID}/select", selectHandler(svc))
		sr.Post("/{sessionID}/back", backHandler(svc))
		sr.Delete("/{sessionID}", closeSessionHandler(svc))
	})
}

type screenResponse struct {
	Name   ScreenName        `json:"name"`
	Route  string            `json:"route"`
	Params map[string]string `json:"params"`
}

type sessionResponse struct {
	SessionID string         `json:"session_id"`
	Screen    screenResponse `json:"screen"`
	CanGoBack bool           `json:"can_go_back"`
	View      any            `json:"view"`
}

type selectRequest struct {
	PetID *int `json:"pet_id"`
}

// listScreenHandler godoc
// @Summary  Render the pet list screen
// @Tags     screens
// @Produce  json
// @Success  200 {object} navigation.ListView
// @Router   /screens/list [get]
func listScreenHandler(reader PetReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RenderList(reader.Current()))
	}
}

// detailScreenHandler godoc
// @Summary  Render the pet detail screen
// @Description Unknown ids render the "Pet not found" message (200).
// @Tags     screens
// @Produce  json
// @Param    petID path int true "Pet ID"
// @Success  200 {object} navigation.DetailView
// @Failure  400 {string} string "invalid pet id"
// @Router   /screens/detail/{petID} [get]
func detailScreenHandler(reader PetReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pets.ParseID(chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, RenderDetail(reader, id))
	}
}

// routeScreenHandler godoc
// @Summary  Render a screen from its route (petlist, petdetail/{petId})
// @Tags     screens
// @Produce  json
// @Param    r query string true "Route"
// @Success  200 {object} object "navigation.ListView for petlist, navigation.DetailView for petdetail/{petId}"
// @Failure  400 {string} string "invalid route"
// @Router   /screens/route [get]
func routeScreenHandler(reader PetReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ParseRoute(r.URL.Query().Get("r"))
		if err != nil {
			http.Error(w, "invalid route", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, Render(reader, s))
	}
}

// openSessionHandler godoc
// @Summary  Open a navigation session on the list screen
// @Tags     sessions
// @Produce  json
// @Success  201 {object} navigation.sessionResponse
// @Router   /sessions [post]
func openSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Open(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(st))
	}
}

// getSessionHandler godoc
// @Summary  Current screen of a session
// @Tags     sessions
// @Produce  json
// @Param    sessionID path string true "Session ID"
// @Success  200 {object} navigation.sessionResponse
// @Failure  404 {string} string "session not found"
// @Router   /sessions/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.State(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(st))
	}
}

// selectHandler godoc
// @Summary  Select a pet (navigate to its detail)
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    sessionID path string true "Session ID"
// @Param    body body navigation.selectRequest true "Selected pet"
// @Success  200 {object} navigation.sessionResponse
// @Failure  400 {string} string "pet_id required"
// @Failure  404 {string} string "session not found"
// @Router   /sessions/{sessionID}/select [post]
func selectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.PetID == nil {
			http.Error(w, "pet_id required", http.StatusBadRequest)
			return
		}

		st, err := svc.Select(r.Context(), chi.URLParam(r, "sessionID"), *req.PetID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(st))
	}
}

// backHandler godoc
// @Summary  Host back navigation
// @Tags     sessions
// @Produce  json
// @Param    sessionID path string true "Session ID"
// @Success  200 {object} navigation.sessionResponse
// @Failure  404 {string} string "session not found"
// @Router   /sessions/{sessionID}/back [post]
func backHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Back(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(st))
	}
}

// closeSessionHandler godoc
// @Summary  Close a navigation session
// @Tags     sessions
// @Param    sessionID path string true "Session ID"
// @Success  204
// @Failure  404 {string} string "session not found"
// @Router   /sessions/{sessionID} [delete]
func closeSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Close(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toSessionResponse(st State) sessionResponse {
	return sessionResponse{
		SessionID: st.SessionID,
		Screen: screenResponse{
			Name:   st.Screen.Name,
			Route:  st.Screen.Route(),
			Params: st.Screen.Params(),
		},
		CanGoBack: st.CanGoBack,
		View:      st.View,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
