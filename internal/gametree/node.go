// Package gametree provides the mutable game representation the PGN
// reader builds: a tag store plus a tree of move nodes where the first
// child of a node is the main continuation and later children are
// variations. A cursor tracks the node whose position the owned board
// currently shows.
package gametree

import (
	"github.com/lgbarn/pgn-reader-go/internal/chess"
)

// Node is one half-move in the game tree. The root node carries no
// move; its post-move comment slot holds any comment preceding the
// first move of the game.
type Node struct {
	move        chess.Move
	nags        []chess.Nag
	preComment  string
	postComment string

	parent   *Node
	children []*Node
}

// Move returns the move leading to this node. The root returns the
// zero Move (class NoMove).
func (n *Node) Move() chess.Move {
	return n.move
}

// Nags returns the numeric annotations attached to this node.
func (n *Node) Nags() []chess.Nag {
	return n.nags
}

// PreComment returns the comment placed before this node's move.
func (n *Node) PreComment() string {
	return n.preComment
}

// PostComment returns the comment placed after this node's move.
func (n *Node) PostComment() string {
	return n.postComment
}

// Parent returns the node this node continues from, or nil for the
// root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether this is the game's root node.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// MainChild returns the main continuation of this node, or nil.
func (n *Node) MainChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Variations returns the alternative continuations of this node (all
// children beyond the main one).
func (n *Node) Variations() []*Node {
	if len(n.children) <= 1 {
		return nil
	}
	return n.children[1:]
}

// NumChildren returns how many continuations this node has.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// onMainPath reports whether every edge from the root down to n
// follows a first child.
func (n *Node) onMainPath() bool {
	for cur := n; cur.parent != nil; cur = cur.parent {
		if cur.parent.children[0] != cur {
			return false
		}
	}
	return true
}

// pathFromRoot returns the nodes from the root (exclusive) down to n
// (inclusive).
func (n *Node) pathFromRoot() []*Node {
	var path []*Node
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
