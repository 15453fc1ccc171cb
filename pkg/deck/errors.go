package deck

import "fmt"

// ParseError is returned when a card token cannot be parsed
type ParseError struct {
	Token  string
	Reason string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("could not parse card %q: %s", p.Token, p.Reason)
}

// InputError is returned when a hand, or a collection of hands, is malformed
type InputError struct {
	Reason string
}

func (i *InputError) Error() string {
	return "invalid input: " + i.Reason
}
