package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/planning"
)

func TestNewLedger_SnapshotValido(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 10, "madera": 0})
	require.NoError(t, err)
	assert.Equal(t, 10, ledger.Available("acero"))
	assert.Equal(t, 0, ledger.Available("madera"))
}

// Un snapshot con cantidad negativa es fatal: nunca se ajusta en silencio.
func TestNewLedger_CantidadNegativaFalla(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 10, "madera": -1})
	require.ErrorIs(t, err, domain.ErrInvalidStock)
	assert.Nil(t, ledger)
}

// Material ausente del snapshot se trata como agotado, no como error.
func TestLedger_MaterialDesconocidoEsCero(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 5})
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Available("no-existe"))
}

func TestLedger_ReserveDescuenta(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 10})
	require.NoError(t, err)

	require.NoError(t, ledger.Reserve("acero", 4))
	assert.Equal(t, 6, ledger.Available("acero"))

	require.NoError(t, ledger.Reserve("acero", 6))
	assert.Equal(t, 0, ledger.Available("acero"))
}

// Reservar más de lo disponible falla y NO modifica el restante:
// el invariante stock >= 0 se sostiene aunque el caller tenga un bug.
func TestLedger_ReserveExcedenteFalla(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 3})
	require.NoError(t, err)

	err = ledger.Reserve("acero", 4)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, ledger.Available("acero"), "una reserva fallida no debe consumir stock")
}

func TestLedger_ReserveNegativoFalla(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 3})
	require.NoError(t, err)
	assert.ErrorIs(t, ledger.Reserve("acero", -1), domain.ErrInsufficientStock)
}

func TestLedger_ReserveMaterialDesconocidoFalla(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{})
	require.NoError(t, err)
	assert.ErrorIs(t, ledger.Reserve("fantasma", 1), domain.ErrInsufficientStock)
}

func TestLedger_ReserveCeroEsNoOp(t *testing.T) {
	ledger, err := planning.NewLedger(map[string]int{"acero": 3})
	require.NoError(t, err)
	require.NoError(t, ledger.Reserve("acero", 0))
	assert.Equal(t, 3, ledger.Available("acero"))
}

// El ledger copia el snapshot: mutarlo después no afecta al caller.
func TestNewLedger_CopiaElSnapshot(t *testing.T) {
	snapshot := map[string]int{"acero": 10}
	ledger, err := planning.NewLedger(snapshot)
	require.NoError(t, err)

	require.NoError(t, ledger.Reserve("acero", 10))
	assert.Equal(t, 10, snapshot["acero"], "el snapshot del caller debe quedar intacto")
}
