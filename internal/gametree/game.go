package gametree

import (
	"strings"

	"github.com/lgbarn/pgn-reader-go/internal/chess"
	"github.com/lgbarn/pgn-reader-go/internal/errors"
	"github.com/lgbarn/pgn-reader-go/internal/position"
)

// Game is one parsed chess game: header tags, a move tree and the
// position the tree's cursor currently stands on. The position is
// owned by the game and stays in sync with the cursor at all times.
type Game struct {
	tags map[string]string
	root *Node
	cur  *Node
	pos  *position.Position

	// When set, DoMove always creates a new node, even if an identical
	// continuation already exists. The PGN reader enables this so the
	// parsed tree mirrors the source text, duplicate lines included.
	alwaysAddLine bool

	hasError bool
	result   chess.Result

	startLine uint
	endLine   uint
}

// New creates an empty game standing on the initial position.
func New() *Game {
	root := &Node{}
	return &Game{
		tags: make(map[string]string),
		root: root,
		cur:  root,
		pos:  position.New(),
	}
}

// SetAlwaysAddLine controls whether moves equal to an existing
// continuation still create their own node.
func (g *Game) SetAlwaysAddLine(v bool) {
	g.alwaysAddLine = v
}

// SetTag stores a header tag. Tag names must be non-empty and consist
// of letters, digits and underscores. A FEN tag set before any move
// has been played re-seats the game's position.
func (g *Game) SetTag(name, value string) error {
	if !validTagName(name) {
		return errors.Wrapf(errors.ErrInvalidTag, "%q", name)
	}
	g.tags[name] = value

	if name == "FEN" && g.cur == g.root && len(g.root.children) == 0 {
		if err := g.pos.SetFEN(value); err != nil {
			return err
		}
	}
	return nil
}

// validTagName reports whether name is acceptable as a PGN tag name.
func validTagName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// Tag returns a tag value, or the empty string if not present.
func (g *Game) Tag(name string) string {
	return g.tags[name]
}

// HasTag reports whether the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.tags[name]
	return ok
}

// Tags returns the game's tag store.
func (g *Game) Tags() map[string]string {
	return g.tags
}

// Position returns the game's position, synced to the cursor.
func (g *Game) Position() *position.Position {
	return g.pos
}

// Root returns the game's root node.
func (g *Game) Root() *Node {
	return g.root
}

// CurNode returns the node the cursor stands on.
func (g *Game) CurNode() *Node {
	return g.cur
}

// DoMove applies a resolved move to the position and advances the
// cursor, creating a new node unless an identical continuation exists
// and alwaysAddLine is off.
func (g *Game) DoMove(m chess.Move) error {
	if err := g.pos.DoMove(m); err != nil {
		return err
	}

	if !g.alwaysAddLine {
		for _, child := range g.cur.children {
			if child.move == m {
				g.cur = child
				return nil
			}
		}
	}

	node := &Node{move: m, parent: g.cur}
	g.cur.children = append(g.cur.children, node)
	g.cur = node
	return nil
}

// UndoMove takes back the cursor's move, stepping to its parent.
func (g *Game) UndoMove() error {
	if g.cur == g.root {
		return errors.Wrap(errors.ErrIllegalMove, "no move to undo")
	}
	if err := g.pos.UndoMove(); err != nil {
		return err
	}
	g.cur = g.cur.parent
	return nil
}

// GoBackToMainLine rewinds the cursor out of the innermost variation
// it currently stands in, leaving it on the node the variation
// branched from. On the main line it is a no-op.
func (g *Game) GoBackToMainLine() {
	n := g.cur
	for n.parent != nil && n.parent.children[0] == n {
		n = n.parent
	}
	if n.parent == nil {
		return
	}
	for g.cur != n.parent {
		// Every node above the branch point was reached by DoMove, so
		// the undo stack cannot run dry here.
		_ = g.pos.UndoMove()
		g.cur = g.cur.parent
	}
}

// GotoNode moves the cursor (and the position) to an arbitrary node of
// this game, replaying moves as needed.
func (g *Game) GotoNode(target *Node) error {
	if target == nil {
		return errors.Wrap(errors.ErrNoSuchNode, "nil node")
	}
	for n := target; ; n = n.parent {
		if n == g.root {
			break
		}
		if n.parent == nil {
			return errors.ErrNoSuchNode
		}
	}

	targetPath := target.pathFromRoot()
	curPath := g.cur.pathFromRoot()

	common := 0
	for common < len(targetPath) && common < len(curPath) &&
		targetPath[common] == curPath[common] {
		common++
	}

	for len(curPath) > common {
		if err := g.pos.UndoMove(); err != nil {
			return err
		}
		curPath = curPath[:len(curPath)-1]
	}
	g.cur = g.root
	if common > 0 {
		g.cur = targetPath[common-1]
	}

	for _, n := range targetPath[common:] {
		if err := g.pos.DoMove(n.move); err != nil {
			return err
		}
		g.cur = n
	}
	return nil
}

// AddNag attaches a numeric annotation to the cursor's node.
func (g *Game) AddNag(nag chess.Nag) {
	g.cur.nags = append(g.cur.nags, nag)
}

// AddPreMoveComment attaches a comment before the cursor's move,
// joining with a space if one is already present.
func (g *Game) AddPreMoveComment(text string) {
	g.cur.preComment = joinComment(g.cur.preComment, text)
}

// AddPostMoveComment attaches a comment after the cursor's move. On
// the root node this becomes the game's prefix comment.
func (g *Game) AddPostMoveComment(text string) {
	g.cur.postComment = joinComment(g.cur.postComment, text)
}

// joinComment appends text to an existing comment with a separating
// space.
func joinComment(existing, text string) string {
	if existing == "" {
		return text
	}
	if text == "" {
		return existing
	}
	return existing + " " + text
}

// PrefixComment returns the comment preceding the game's first move.
func (g *Game) PrefixComment() string {
	return g.root.postComment
}

// SetError marks the game as containing a parse error.
func (g *Game) SetError(v bool) {
	g.hasError = v
}

// HasError reports whether the game was marked erroneous.
func (g *Game) HasError() bool {
	return g.hasError
}

// SetResult records the game result. The Result tag is filled in when
// missing or a placeholder, mirroring how PGN producers treat the
// movetext result as authoritative.
func (g *Game) SetResult(r chess.Result) {
	g.result = r
	if r == chess.NoResult {
		return
	}
	if tag := g.tags["Result"]; tag == "" || tag == "?" {
		g.tags["Result"] = r.String()
	}
}

// Result returns the recorded result, falling back to the Result tag.
func (g *Game) Result() chess.Result {
	if g.result != chess.NoResult {
		return g.result
	}
	return chess.ResultFromString(g.tags["Result"])
}

// SetLineRange records the input line numbers the game spans.
func (g *Game) SetLineRange(start, end uint) {
	g.startLine = start
	g.endLine = end
}

// LineRange returns the input line numbers the game spans.
func (g *Game) LineRange() (start, end uint) {
	return g.startLine, g.endLine
}

// Pack compacts the tree once parsing is done: child and annotation
// slices are clipped to their exact lengths and comments are trimmed.
func (g *Game) Pack() {
	packNode(g.root)
}

func packNode(n *Node) {
	if len(n.children) > 0 && len(n.children) < cap(n.children) {
		clipped := make([]*Node, len(n.children))
		copy(clipped, n.children)
		n.children = clipped
	}
	if len(n.nags) > 0 && len(n.nags) < cap(n.nags) {
		clipped := make([]chess.Nag, len(n.nags))
		copy(clipped, n.nags)
		n.nags = clipped
	}
	n.preComment = strings.TrimSpace(n.preComment)
	n.postComment = strings.TrimSpace(n.postComment)
	for _, child := range n.children {
		packNode(child)
	}
}

// MainLine returns the moves of the game's main line in order.
func (g *Game) MainLine() []chess.Move {
	var moves []chess.Move
	for n := g.root.MainChild(); n != nil; n = n.MainChild() {
		moves = append(moves, n.move)
	}
	return moves
}

// PlyCount returns the number of main-line half-moves.
func (g *Game) PlyCount() int {
	count := 0
	for n := g.root.MainChild(); n != nil; n = n.MainChild() {
		count++
	}
	return count
}
