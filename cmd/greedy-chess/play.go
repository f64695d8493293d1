// play.go - Interactive human-versus-computer loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/greedy-chess-go/internal/chess"
	"github.com/lgbarn/greedy-chess-go/internal/config"
	"github.com/lgbarn/greedy-chess-go/internal/game"
	"github.com/lgbarn/greedy-chess-go/internal/output"
)

// highScoreRows is how many players the score table shows.
const highScoreRows = 5

// session drives one Game from line-based input.
type session struct {
	cfg *config.Config
	g   *game.Game
	in  *bufio.Scanner
	out io.Writer
}

// runInteractive plays games read from in until the player quits, input
// ends, or the player declines to play again.
func runInteractive(cfg *config.Config, in io.Reader) error {
	s := &session{
		cfg: cfg,
		g:   game.New(cfg, nil),
		in:  bufio.NewScanner(in),
		out: cfg.OutputFile,
	}

	fmt.Fprintln(s.out, game.Manual)
	for {
		if quit := s.playOne(); quit {
			return s.in.Err()
		}
		if !s.confirm("Play again? [y/n] ") {
			return s.in.Err()
		}
	}
}

// playOne plays a single game. It returns true when the player asked to
// quit or input ended.
func (s *session) playOne() bool {
	fmt.Fprintf(s.out, "%s (you) play %v, %s plays %v.\n",
		s.g.HumanName(), s.g.HumanSide(), s.g.AIName(), s.g.AISide())

	if m, ok := s.g.Start(); ok {
		s.reportAIMove(m)
	}
	s.showBoard()

	for {
		if name, over := s.g.Winner(); over {
			if name == s.g.HumanName() {
				fmt.Fprintln(s.out, "You win!")
			} else {
				fmt.Fprintln(s.out, "You lose!")
			}
			output.WriteScores(s.out, s.g.Scores().HighScores(highScoreRows))
			return false
		}

		if !s.g.HumanToMove() {
			m, ok, err := s.g.AITurn()
			switch {
			case err != nil:
				fmt.Fprintf(s.out, "Error: %v\n", err)
				return true
			case ok:
				s.reportAIMove(m)
				s.showBoard()
			default:
				fmt.Fprintf(s.out, "%s has no move and passes.\n", s.g.AIName())
			}
			continue
		}

		fmt.Fprintf(s.out, "%s (%v)> ", s.g.HumanName(), s.g.HumanSide())
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return true
		}
		if quit := s.handle(line); quit {
			return true
		}
	}
}

// handle runs one line of player input and reports whether it was "quit".
func (s *session) handle(line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "":
	case "quit", "exit", "q":
		return true
	case "help", "manual", "?":
		fmt.Fprintln(s.out, game.Manual)
	case "board":
		output.WriteBoard(s.out, s.g.Board())
	case "fen":
		output.WriteFEN(s.out, s.g.Board())
	case "scores":
		output.WriteScores(s.out, s.g.Scores().HighScores(highScoreRows))
	case "pause", "p":
		fmt.Fprint(s.out, "Paused. Press Enter to continue.")
		s.readLine()
		fmt.Fprintln(s.out)
	default:
		if err := s.move(cmd); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	return false
}

// move handles a square selection or a full move.
func (s *session) move(text string) error {
	if len(text) == 2 {
		sq, err := chess.ParseSquare(text)
		if err != nil {
			return err
		}
		moved, err := s.g.Select(sq)
		if err != nil {
			return err
		}
		if moved {
			s.showBoard()
		} else if sel, ok := s.g.Selected(); ok {
			fmt.Fprintf(s.out, "Selected %v (%v).\n", sel, s.g.Board().Get(sel))
		} else {
			fmt.Fprintln(s.out, "Selection cleared.")
		}
		return nil
	}

	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if err := s.g.HumanMove(m.From, m.To); err != nil {
		return err
	}
	s.showBoard()
	return nil
}

func (s *session) reportAIMove(m chess.Move) {
	fmt.Fprintf(s.out, "%s plays %v.\n", s.g.AIName(), m)
}

func (s *session) showBoard() {
	if s.cfg.ShowBoard {
		output.WriteBoard(s.out, s.g.Board())
	}
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *session) confirm(prompt string) bool {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
