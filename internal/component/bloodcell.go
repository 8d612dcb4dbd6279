// internal/component/bloodcell.go
package component

// BloodCell — дескриптор одной клетки крови. Создаётся один раз при
// инициализации поля и далее неизменен на всю жизнь компонента.
type BloodCell struct {
	ID            int     // стабильная идентичность, 0..N-1
	Y             float64 // позиция поперёк сосуда, в пределах просвета [70,130]
	PhaseDelay    float64 // сдвиг старта анимации, [0,2)
	Size          float64 // [3,7]
	SpeedVariance float64 // множитель скорости потока, [0.8,1.2]
}
