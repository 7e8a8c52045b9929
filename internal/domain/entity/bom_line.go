package entity

// BOMLine es una línea del bill-of-materials de un producto:
// cuántas unidades de una materia prima se consumen por unidad producida.
// QuantityPerUnit debe ser estrictamente positivo; se valida al construir el
// catálogo (use case de asociaciones), nunca dentro del planificador.
type BOMLine struct {
	RawMaterialID   string
	RawMaterialName string // denormalizado para respuestas; puede ir vacío en planning
	QuantityPerUnit int
}
