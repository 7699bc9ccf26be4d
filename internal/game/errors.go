package game

import "errors"

// ErrGameOver is returned when a play is requested after the final whistle
var ErrGameOver = errors.New("game over")

// GameOverError carries the reason a play could not be simulated. It matches
// ErrGameOver under errors.Is.
type GameOverError struct {
	Message string
}

func (e *GameOverError) Error() string {
	return "game over: " + e.Message
}

// Is reports whether target is ErrGameOver
func (e *GameOverError) Is(target error) bool {
	return target == ErrGameOver
}
