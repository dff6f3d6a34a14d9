package model

import "fmt"

// Algebraic square conversion used by history display and by external
// collaborators that communicate moves as two-square strings ("e2e4").

func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, 8-p.Row)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", 'a'+p.Col)
}

// ParseSquare converts an algebraic square like "e2" to a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return Position{Row: 8 - int(rank-'0'), Col: int(file - 'a')}, nil
}

// ParseMove converts a two-square coordinate string like "e2e4" into its
// from and to positions.
func ParseMove(s string) (Position, Position, error) {
	if len(s) != 4 {
		return Position{}, Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Position{}, Position{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}
