// component/formation.go
package component

// Formation - весь строй монстров. Убитые монстры остаются в сетке
// с Alive=false, чтобы логические координаты не сдвигались.
type Formation struct {
	Grid        [][]*Monster // Grid[row][col]
	Direction   Direction
	Speed       int
	DescentStep int

	// Кэш крайних живых монстров; nil, когда строй пуст.
	Leftmost  *Monster
	Rightmost *Monster
}

// EachAlive обходит живых монстров построчно (row-major).
// Обход прекращается, если fn вернула false.
func (f *Formation) EachAlive(fn func(m *Monster) bool) {
	for _, row := range f.Grid {
		for _, m := range row {
			if m == nil || !m.Alive {
				continue
			}
			if !fn(m) {
				return
			}
		}
	}
}

// LiveCount возвращает количество живых монстров.
func (f *Formation) LiveCount() int {
	count := 0
	f.EachAlive(func(*Monster) bool {
		count++
		return true
	})
	return count
}

func (f *Formation) Empty() bool {
	empty := true
	f.EachAlive(func(*Monster) bool {
		empty = false
		return false
	})
	return empty
}
