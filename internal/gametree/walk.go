package gametree

import (
	"github.com/lgbarn/pgn-reader-go/internal/chess"
)

// Visitor receives the moves of a game in source order. Level 0 is the
// main line; each nested variation increases the level by one. Ply
// counts half-moves from the game's starting position.
type Visitor interface {
	OnMove(move chess.Move, nags []chess.Nag, preComment, postComment string, ply, level int)
	OnLineStart(level int)
	OnLineEnd(level int)
}

// Walk traverses the game tree in PGN source order: each main-line
// move is visited before the variations branching off it, and each
// variation is bracketed by OnLineStart and OnLineEnd calls.
func Walk(g *Game, v Visitor) {
	walkNode(g.root, v, 0, 0)
}

func walkNode(n *Node, v Visitor, ply, level int) {
	main := n.MainChild()
	if main == nil {
		return
	}
	v.OnMove(main.move, main.nags, main.preComment, main.postComment, ply, level)

	for _, alt := range n.Variations() {
		v.OnLineStart(level + 1)
		v.OnMove(alt.move, alt.nags, alt.preComment, alt.postComment, ply, level+1)
		walkNode(alt, v, ply+1, level+1)
		v.OnLineEnd(level + 1)
	}

	walkNode(main, v, ply+1, level)
}
