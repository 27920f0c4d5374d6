package engine

import (
	"fmt"

	"atarigo/game"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two agents on a single machine.
type Local struct {
	State  *game.GameState
	Agents [2]Agent
	Moves  int
}

func NewLocal(state *game.GameState, agent1, agent2 Agent) *Local {
	if state == nil {
		panic("engine needs an initial state")
	}
	if agent1 == nil || agent2 == nil {
		panic("engine needs two agents")
	}
	return &Local{
		State:  state,
		Agents: [2]Agent{agent1, agent2},
	}
}

// Run plays moves until the game is terminal or MaxMoves is reached,
// and returns the outcome.
func (e *Local) Run() string {
	log.Info().Msgf("%s is starting on a %dx%d board", e.State.Player(), e.State.Size, e.State.Size)

	for !e.State.TerminalTest() {
		if e.Moves >= MaxMoves {
			log.Warn().Msgf("stopping after %d moves with no result", e.Moves)
			return Unfinished
		}

		player := e.State.ToMove()
		move := e.Agents[player-1].FindMove(e.State)

		next, err := e.State.Play(move)
		if err != nil {
			panic(fmt.Sprintf("agent for player %d produced an illegal move %+v: %v", player, move, err))
		}
		e.State = next
		e.Moves++

		log.Debug().Msgf("move %d: player %d played (%d,%d)", e.Moves, move.Player, move.Row, move.Col)
	}

	outcome := e.outcome()
	log.Info().Msgf("game over after %d moves: %s", e.Moves, outcome)
	return outcome
}

// outcome reads the result off the terminal state's utility.
func (e *Local) outcome() string {
	switch u := e.State.Utility(1); {
	case u > 0:
		return "Player1"
	case u < 0:
		return "Player2"
	default:
		return Draw
	}
}
