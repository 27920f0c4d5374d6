package game

// Move places a stone for Player at the 1-indexed board coordinates
// (Row, Col), with (1,1) the top-left point. The core translates to
// 0-indexed coordinates internally.
type Move struct {
	Player int
	Row    int
	Col    int
}
