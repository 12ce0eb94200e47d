// Package rps implements rock-paper-scissors: the beats relation, choice
// normalization, player settings and the menu-driven session engine.
package rps

import (
	"math/rand"
	"strings"
)

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var choices = []Choice{Rock, Paper, Scissors}

// aliases maps every accepted spelling (numeral, full word, single letter)
// to its choice.
var aliases = map[string]Choice{
	"1": Rock, "rock": Rock, "r": Rock,
	"2": Paper, "paper": Paper, "p": Paper,
	"3": Scissors, "scissors": Scissors, "s": Scissors,
}

// beats holds the cyclic dominance rule: key beats value.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// escapeTokens are honored at every prompt and jump back to the game menu.
var escapeTokens = map[string]struct{}{
	"menu":      {},
	"main menu": {},
}

type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayerOne
	OutcomePlayerTwo
)

func (that Outcome) String() string {
	switch that {
	case OutcomePlayerOne:
		return "player1"
	case OutcomePlayerTwo:
		return "player2"
	default:
		return "tie"
	}
}

// ParseChoice - normalizes raw input through the alias table.
func ParseChoice(raw string) (Choice, bool) {
	choice, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]
	return choice, ok
}

// IsEscapeToken - reports whether the input is the reserved return-to-menu
// token.
func IsEscapeToken(raw string) bool {
	_, ok := escapeTokens[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// Resolve - decides a round: tie on equal choices, otherwise the beats
// relation picks the winner.
func Resolve(first, second Choice) Outcome {
	if first == second {
		return OutcomeTie
	}

	if beats[first] == second {
		return OutcomePlayerOne
	}

	return OutcomePlayerTwo
}

// RandomChoice - draws uniformly from the three options.
func RandomChoice(rng *rand.Rand) Choice {
	return choices[rng.Intn(len(choices))]
}
