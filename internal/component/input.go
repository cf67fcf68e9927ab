package component

// Controls - снимок ввода за один тик.
type Controls struct {
	Left  bool
	Right bool
	Fire  bool
	Quit  bool
	Pause bool
	Start bool // Кнопка старта на стартовом экране
	Any   bool // Нажата любая клавиша (экран конца игры)
}
