// Command tichu-cli drives one in-process app.Session from a terminal, for
// manual testing and demonstration of the rule engine without a Nakama
// server. It is a REPL over a spf13/cobra command tree, grounded on
// lamyinia-GoMahjong's cobra-driven service entrypoints.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tichu/internal/app"
	"tichu/internal/config"
	"tichu/internal/domain"
	"tichu/internal/obslog"
)

var (
	session *app.Session
	logger  = obslog.New("tichu-cli", "info")
)

func main() {
	seats := [domain.SeatCount]string{"north", "east", "south", "west"}
	session = app.NewSession(seats, config.DefaultGameConfig(), rand.New(rand.NewSource(time.Now().UnixNano())), logger)

	fmt.Println("tichu-cli — type 'help' for commands, 'exit' to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		root := newRootCmd()
		root.SetArgs(strings.Fields(line))
		if err := root.Execute(); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "tichu-cli", SilenceUsage: true}
	root.AddCommand(dealCmd(), declareCmd(), revealCmd(), exchangeCmd(), playCmd(), passCmd(), bombCmd(), dragonCmd(), statusCmd())
	return root
}

func dealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deal",
		Short: "deal a fresh round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return apply(app.StartRound{})
		},
	}
}

func declareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "declare <seat>",
		Short: "declare grand tichu for seat (before reveal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			return apply(app.DeclareGrandTichu{Seat: seat})
		},
	}
}

func revealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <seat>",
		Short: "reveal seat's hidden six without declaring grand tichu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			return apply(app.RevealHidden6{Seat: seat})
		},
	}
}

func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <seat> <toNext> <toAcross> <toPrev>",
		Short: "submit seat's three exchange cards",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			cards, err := parseCards(args[1:4])
			if err != nil {
				return err
			}
			return apply(app.SubmitExchange{Seat: seat, ToNext: cards[0], ToAcross: cards[1], ToPrev: cards[2]})
		},
	}
}

func playCmd() *cobra.Command {
	var wish string
	cmd := &cobra.Command{
		Use:   "play <seat> <card>...",
		Short: "play a combination from seat",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			cards, err := parseCards(args[1:])
			if err != nil {
				return err
			}
			var wishRank *domain.Rank
			if wish != "" {
				r, err := parseRank(wish)
				if err != nil {
					return err
				}
				wishRank = &r
			}
			return apply(app.Play{Seat: seat, Cards: cards, WishRank: wishRank})
		},
	}
	cmd.Flags().StringVar(&wish, "wish", "", "wished rank, only valid on a leading mah jong single")
	return cmd
}

func passCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <seat>",
		Short: "pass seat's turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			return apply(app.Pass{Seat: seat})
		},
	}
}

func bombCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bomb <seat> <card>...",
		Short: "play an out-of-turn bomb from seat",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			cards, err := parseCards(args[1:])
			if err != nil {
				return err
			}
			return apply(app.BombInterrupt{Seat: seat, Cards: cards})
		},
	}
}

func dragonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dragon <seat> <recipient>",
		Short: "give a pending dragon trick to an opponent seat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			recipient, err := parseSeat(args[1])
			if err != nil {
				return err
			}
			return apply(app.SelectDragonRecipient{Seat: seat, Recipient: recipient})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <seat>",
		Short: "print seat's current redacted view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seat, err := parseSeat(args[0])
			if err != nil {
				return err
			}
			printView(session.View(seat))
			return nil
		},
	}
}

func apply(intent app.Intent) error {
	result, err := session.Apply(intent)
	if err != nil {
		return err
	}
	for _, evt := range result.Events {
		fmt.Printf("event: %s %+v\n", evt.Kind, evt.Payload)
	}
	return nil
}

func printView(v app.SeatView) {
	fmt.Printf("seat=%s phase=%s lead=%s current=%s hand=%v counts=%v\n",
		v.Seat, v.Phase, v.LeadSeat, v.CurrentSeat, v.Hand, v.HandCounts)
	fmt.Printf("scores=%v winner=%d\n", v.TeamScores, v.WinnerTeam)
}

func parseSeat(s string) (domain.Seat, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= domain.SeatCount {
		return 0, fmt.Errorf("invalid seat %q, want 0..3", s)
	}
	return domain.Seat(n), nil
}

func parseRank(s string) (domain.Rank, error) {
	switch strings.ToUpper(s) {
	case "J":
		return domain.RankJ, nil
	case "Q":
		return domain.RankQ, nil
	case "K":
		return domain.RankK, nil
	case "A":
		return domain.RankA, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 || n > 14 {
			return 0, fmt.Errorf("invalid rank %q", s)
		}
		return domain.Rank(n), nil
	}
}

// parseCards parses tokens like "S4" (suit letter + rank) or the special
// tokens MJ/DOG/PHX/DRA.
func parseCards(tokens []string) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(tokens))
	for _, t := range tokens {
		c, err := parseCard(t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(tok string) (domain.Card, error) {
	switch strings.ToUpper(tok) {
	case "MJ":
		return domain.MahJong, nil
	case "DOG":
		return domain.Dog, nil
	case "PHX":
		return domain.Phoenix, nil
	case "DRA":
		return domain.Dragon, nil
	}
	if len(tok) < 2 {
		return domain.Card{}, fmt.Errorf("invalid card %q", tok)
	}
	var suit domain.Suit
	switch strings.ToUpper(tok[:1]) {
	case "C":
		suit = domain.Clubs
	case "D":
		suit = domain.Diamonds
	case "H":
		suit = domain.Hearts
	case "S":
		suit = domain.Spades
	default:
		return domain.Card{}, fmt.Errorf("invalid suit in %q", tok)
	}
	rank, err := parseRank(tok[1:])
	if err != nil {
		return domain.Card{}, fmt.Errorf("invalid card %q: %w", tok, err)
	}
	return domain.Std(suit, rank), nil
}
