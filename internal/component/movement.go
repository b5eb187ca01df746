// component/movement.go
package component

// Position — центр сущности на поле
type Position struct {
	X, Y float64
}

// Velocity — смещение за один тик
type Velocity struct {
	DX, DY float64
}
