package core

import "fmt"

// Policy tags the scheduling algorithm to simulate. The set is closed: the
// engine dispatches on the tag, there is no pluggable scheduler interface.
type Policy int

const (
	FirstComeFirstServe Policy = iota
	ShortestJobFirst
	RoundRobin
	PriorityScheduling
)

var policyNames = map[Policy]string{
	FirstComeFirstServe: "fcfs",
	ShortestJobFirst:    "sjf",
	RoundRobin:          "rr",
	PriorityScheduling:  "priority",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps the wire/CLI names onto policy tags.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidPolicy, name)
}

// PolicyConfig selects a policy and carries its parameters. Quantum is used
// by Round Robin only and ignored everywhere else.
type PolicyConfig struct {
	Policy  Policy
	Quantum int
}

// Validate checks the policy tag and, for Round Robin, the time quantum.
func (c PolicyConfig) Validate() error {
	switch c.Policy {
	case RoundRobin:
		if c.Quantum < 1 {
			return fmt.Errorf("%w: round robin requires a positive time quantum, got %d", ErrInvalidPolicy, c.Quantum)
		}
	case FirstComeFirstServe, ShortestJobFirst, PriorityScheduling:
	default:
		return fmt.Errorf("%w: unknown policy tag %d", ErrInvalidPolicy, int(c.Policy))
	}
	return nil
}
