package component

// Phase - фаза игровой сессии
type Phase int

const (
	StartScreen Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case StartScreen:
		return "START_SCREEN"
	case Playing:
		return "PLAYING"
	case GameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Outcome - чем закончилась игра
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	}
	return "none"
}

// GameState - компонент для хранения состояния игры
type GameState struct {
	Phase   Phase
	Outcome Outcome
}
