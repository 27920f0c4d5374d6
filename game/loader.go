package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputFormat reports a malformed textual board: a bad header,
// inconsistent row lengths, or cells outside {0,1,2}.
var ErrInputFormat = errors.New("malformed board input")

// LoadBoard reads the textual board format: a header line
// "<size> <player>" naming the board size and the player to move
// first, followed by size rows of size digits in {0,1,2}, top row
// first. It returns the fully labeled starting state.
func LoadBoard(r io.Reader) (*GameState, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing header line", ErrInputFormat)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: header must be \"<size> <player>\"", ErrInputFormat)
	}
	size, err := strconv.Atoi(fields[0])
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("%w: bad board size %q", ErrInputFormat, fields[0])
	}
	player, err := strconv.Atoi(fields[1])
	if err != nil || (player != 1 && player != 2) {
		return nil, fmt.Errorf("%w: player must be 1 or 2, got %q", ErrInputFormat, fields[1])
	}

	board := make([][]Cell, size)
	for row := 0; row < size; row++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInputFormat, size, row)
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInputFormat, row+1, len(line), size)
		}
		board[row] = make([]Cell, size)
		for col, c := range line {
			switch c {
			case '0':
				board[row][col] = Empty
			case '1':
				board[row][col] = 1
			case '2':
				board[row][col] = 2
			default:
				return nil, fmt.Errorf("%w: row %d has invalid cell %q", ErrInputFormat, row+1, c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}

	return NewGameState(player, board), nil
}
