package output

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/document"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// Fragment names, as used in the README markers.
const (
	FragmentBoard       = "BOARD"
	FragmentMoves       = "MOVES"
	FragmentRecent      = "RECENT"
	FragmentLeaderboard = "LEADERBOARD"
	FragmentTurn        = "TURN"
)

// Default limits for the recent-moves and leaderboard tables.
const (
	DefaultRecentLimit      = 5
	DefaultLeaderboardLimit = 10
)

const defaultIssueBody = "Press Submit new issue to play!"

// Fragments holds the rendered Markdown blocks for one game state.
type Fragments struct {
	Board       string
	Moves       string
	Recent      string
	Leaderboard string
	Turn        string
}

// FragmentNames lists the region names Named fills, in the same order.
func FragmentNames() []string {
	return []string{FragmentBoard, FragmentMoves, FragmentRecent, FragmentLeaderboard, FragmentTurn}
}

// Named returns the fragments in splicing order.
func (f Fragments) Named() []document.Fragment {
	return []document.Fragment{
		{Name: FragmentBoard, Text: f.Board},
		{Name: FragmentMoves, Text: f.Moves},
		{Name: FragmentRecent, Text: f.Recent},
		{Name: FragmentLeaderboard, Text: f.Leaderboard},
		{Name: FragmentTurn, Text: f.Turn},
	}
}

// Renderer turns game state into Markdown fragments.
type Renderer struct {
	repository       string
	issueBody        string
	recentLimit      int
	leaderboardLimit int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRepository sets the "owner/name" repository that move links open issues on.
func WithRepository(slug string) RendererOption {
	return func(r *Renderer) {
		r.repository = strings.Trim(slug, "/ ")
	}
}

// WithIssueBody sets the body pre-filled into move issues.
func WithIssueBody(body string) RendererOption {
	return func(r *Renderer) {
		if body != "" {
			r.issueBody = body
		}
	}
}

// WithLimits sets how many recent moves and leaderboard rows are shown.
func WithLimits(recent, leaderboard int) RendererOption {
	return func(r *Renderer) {
		if recent > 0 {
			r.recentLimit = recent
		}
		if leaderboard > 0 {
			r.leaderboardLimit = leaderboard
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		issueBody:        defaultIssueBody,
		recentLimit:      DefaultRecentLimit,
		leaderboardLimit: DefaultLeaderboardLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces every fragment. legal is the move list for the side to
// move, as returned by engine.LegalMoves. None of the fragments depends
// on another.
func (r *Renderer) Render(state *chess.GameState, legal []string, lb stats.Leaderboard) Fragments {
	return Fragments{
		Board:       r.BoardTable(state.Board),
		Moves:       r.MovesTable(legal, state.GameNum),
		Recent:      r.RecentTable(state),
		Leaderboard: r.LeaderboardTable(lb),
		Turn:        r.TurnLabel(state),
	}
}

// BoardTable renders the board with rank labels 8..1 and file labels A..H.
func (r *Renderer) BoardTable(board chess.Board) string {
	var sb strings.Builder
	sb.WriteString("| | A | B | C | D | E | F | G | H |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|---|")

	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "\n| **%d** |", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(board.Get(chess.Square{Row: row, Col: col}).Glyph())
			sb.WriteString(" |")
		}
	}
	return sb.String()
}

// MovesTable groups legal moves by source square. Sources and destinations
// are listed in ascending order; each destination links to a prefilled
// move issue.
func (r *Renderer) MovesTable(legal []string, gameNum int) string {
	bySource := make(map[string][]string)
	for _, mv := range legal {
		if len(mv) != 4 {
			continue
		}
		key := strings.ToUpper(mv[:2])
		bySource[key] = append(bySource[key], mv)
	}

	sources := make([]string, 0, len(bySource))
	for src := range bySource {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	var sb strings.Builder
	sb.WriteString("| FROM | TO (click to play) |\n")
	sb.WriteString("|------|--------------------|")

	if len(sources) == 0 {
		sb.WriteString("\n| - | No legal moves |")
		return sb.String()
	}

	for _, src := range sources {
		moves := bySource[src]
		sort.Strings(moves)
		links := make([]string, 0, len(moves))
		for _, mv := range moves {
			links = append(links, fmt.Sprintf("[%s](%s)", strings.ToUpper(mv[2:]), r.MoveURL(mv, gameNum)))
		}
		fmt.Fprintf(&sb, "\n| **%s** | %s |", src, strings.Join(links, ", "))
	}
	return sb.String()
}

// MoveURL returns the link that opens a move issue for token in game gameNum.
// The issue title has the form chess|move|<token>|<game>.
func (r *Renderer) MoveURL(token string, gameNum int) string {
	base := "issues/new"
	if r.repository != "" {
		base = "https://github.com/" + r.repository + "/issues/new"
	}
	title := fmt.Sprintf("chess|move|%s|%d", strings.ToLower(token), gameNum)
	return base + "?title=" + url.QueryEscape(title) + "&body=" + url.QueryEscape(r.issueBody)
}

// RecentTable lists the latest moves, most recent first.
func (r *Renderer) RecentTable(state *chess.GameState) string {
	recent := state.RecentMoves(r.recentLimit)
	if len(recent) == 0 {
		return "*No moves yet.*"
	}

	var sb strings.Builder
	sb.WriteString("| Move | Player |\n")
	sb.WriteString("|------|--------|")
	for _, m := range recent {
		fmt.Fprintf(&sb, "\n| %s | %s |", escapeCell(m.Move), playerLink(m.Player))
	}
	return sb.String()
}

// LeaderboardTable lists the top players by move count.
func (r *Renderer) LeaderboardTable(lb stats.Leaderboard) string {
	ranked := lb.Ranked(r.leaderboardLimit)
	if len(ranked) == 0 {
		return "*No players yet.*"
	}

	var sb strings.Builder
	sb.WriteString("| # | Player | Moves |\n")
	sb.WriteString("|---|--------|-------|")
	for _, e := range ranked {
		fmt.Fprintf(&sb, "\n| %d | %s | %d |", e.Rank, playerLink(e.Player), e.Moves)
	}
	return sb.String()
}

// TurnLabel names the side to move and the game number.
func (r *Renderer) TurnLabel(state *chess.GameState) string {
	return fmt.Sprintf("**Turn: %s** (Game #%d)", SideLabel(state.ToMove), state.GameNum)
}

// SideLabel returns the upper-case side name with its pawn glyph.
func SideLabel(c chess.Colour) string {
	return strings.ToUpper(c.String()) + " " + chess.MakeColouredPiece(c, chess.Pawn).Glyph()
}

func playerLink(player string) string {
	return fmt.Sprintf("[@%s](https://github.com/%s)", escapeCell(player), url.PathEscape(player))
}

// escapeCell keeps text from breaking out of a Markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
