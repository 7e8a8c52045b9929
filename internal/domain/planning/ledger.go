package planning

import "github.com/jhoicas/Produccion-api/internal/domain"

// Ledger lleva el stock restante de materias primas durante UNA corrida de
// planificación. Se construye desde un snapshot, lo consume en exclusiva el
// planificador y se descarta al terminar: nunca se persiste ni se comparte
// entre corridas, por eso no necesita locking.
type Ledger struct {
	remaining map[string]int
}

// NewLedger construye el ledger desde un snapshot materialID → cantidad.
// Retorna domain.ErrInvalidStock si alguna cantidad es negativa; nunca se
// ajusta en silencio (upstream ya debería garantizar stock >= 0).
func NewLedger(snapshot map[string]int) (*Ledger, error) {
	remaining := make(map[string]int, len(snapshot))
	for id, qty := range snapshot {
		if qty < 0 {
			return nil, domain.ErrInvalidStock
		}
		remaining[id] = qty
	}
	return &Ledger{remaining: remaining}, nil
}

// Available devuelve el stock restante de una materia prima. Un material
// desconocido para el ledger se trata como agotado (0), no como error: modela
// una línea BOM que referencia un material ausente del snapshot actual.
func (l *Ledger) Available(materialID string) int {
	return l.remaining[materialID]
}

// Reserve descuenta amount unidades del material. Falla con
// domain.ErrInsufficientStock si amount excede lo disponible; esto no debe
// ocurrir si el caller calculó antes una cantidad factible con MaxProducible,
// pero el ledger lo exige para que el invariante stock >= 0 no pueda romperse
// por un bug del caller.
func (l *Ledger) Reserve(materialID string, amount int) error {
	if amount < 0 {
		return domain.ErrInsufficientStock
	}
	available := l.remaining[materialID]
	if amount > available {
		return domain.ErrInsufficientStock
	}
	l.remaining[materialID] = available - amount
	return nil
}
