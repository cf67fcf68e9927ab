// component/enemy.go
package component

// Monster - монстр в ячейке строя.
type Monster struct {
	Bounds   Bounds
	Row, Col int    // Логические координаты в сетке строя
	Kind     int    // Вариант монстра (row+1), выбирает спрайт
	Points   int    // Очки за уничтожение
	SpriteID string // Имя картинки в менеджере ассетов
	Alive    bool
}

func (m *Monster) Rect() Bounds   { return m.Bounds }
func (m *Monster) Sprite() string { return m.SpriteID }
func (m *Monster) Kill()          { m.Alive = false }
