package enums

import "fmt"

// Supervisor is the fixed roster of people allowed to sign off a withdrawal.
type Supervisor string

const (
	SupervisorCarlosOliveira Supervisor = "Carlos Oliveira"
	SupervisorAnaSilva       Supervisor = "Ana Silva"
	SupervisorMarcosPereira  Supervisor = "Marcos Pereira"
	SupervisorJulianaSantos  Supervisor = "Juliana Santos"
	SupervisorRicardoLima    Supervisor = "Ricardo Lima"
)

var validSupervisors = []Supervisor{
	SupervisorCarlosOliveira,
	SupervisorAnaSilva,
	SupervisorMarcosPereira,
	SupervisorJulianaSantos,
	SupervisorRicardoLima,
}

// AllSupervisors returns the roster in display order.
func AllSupervisors() []Supervisor {
	out := make([]Supervisor, len(validSupervisors))
	copy(out, validSupervisors)
	return out
}

// IsValid reports whether the value matches the canonical roster.
func (s Supervisor) IsValid() bool {
	for _, candidate := range validSupervisors {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSupervisor converts the raw string to Supervisor.
func ParseSupervisor(value string) (Supervisor, error) {
	for _, candidate := range validSupervisors {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid supervisor %q", value)
}
