package navigation

import "sync"

// BackStack es un Host en memoria con pila de pantallas. Cumple el rol de
// back-navigation por defecto del framework.
type BackStack struct {
	mu      sync.Mutex
	entries []Screen
}

func NewBackStack() *BackStack {
	return &BackStack{}
}

func (b *BackStack) Show(name ScreenName, params map[string]string) {
	s, err := ScreenFromParams(name, params)
	if err != nil {
		// el Controller solo emite pantallas válidas
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, s)
}

// Back saca la pantalla de arriba y devuelve la nueva. En la raíz no hace nada.
func (b *BackStack) Back() (Screen, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) <= 1 {
		return b.topLocked(), false
	}
	b.entries = b.entries[:len(b.entries)-1]
	return b.topLocked(), true
}

func (b *BackStack) Top() Screen {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.topLocked()
}

func (b *BackStack) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *BackStack) topLocked() Screen {
	if len(b.entries) == 0 {
		return ListScreen()
	}
	return b.entries[len(b.entries)-1]
}
