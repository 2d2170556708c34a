package navigation

import "sync"

// Host es el contenedor de navegación externo: recibe (pantalla, params),
// se encarga de dibujarla y de la navegación "atrás".
type Host interface {
	Show(name ScreenName, params map[string]string)
}

// Controller traduce la selección de una mascota en una transición
// ListScreen -> DetailScreen(petId). Su único estado es la pantalla actual.
type Controller struct {
	mu      sync.Mutex
	host    Host
	current Screen
}

// NewController arranca en ListScreen y se lo informa al host.
func NewController(host Host) *Controller {
	c := &Controller{host: host, current: ListScreen()}
	c.show(c.current)
	return c
}

// NavigateToDetail es fire-and-forget: no valida que el id exista.
// Si no existe, la pantalla de detalle muestra "Pet not found" al renderizar.
func (c *Controller) NavigateToDetail(petID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = DetailScreen(petID)
	c.show(c.current)
}

func (c *Controller) Current() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Restore sincroniza la pantalla actual después de que el host navegó por su
// cuenta (p.ej. back). No vuelve a notificar al host.
func (c *Controller) Restore(s Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
}

func (c *Controller) show(s Screen) {
	if c.host == nil {
		return
	}
	c.host.Show(s.Name, s.Params())
}
