package enums

import "fmt"

// WithdrawalReason is the fixed vocabulary for why stock left inventory.
type WithdrawalReason string

const (
	ReasonDesgasteNatural      WithdrawalReason = "Desgaste Natural"
	ReasonQuebraEmOperacao     WithdrawalReason = "Quebra em Operação"
	ReasonPerdaDeDiametro      WithdrawalReason = "Perda de Diâmetro"
	ReasonTrocaDeFrenteDeLavra WithdrawalReason = "Troca de Frente de Lavra"
	ReasonManutencaoPreventiva WithdrawalReason = "Manutenção Preventiva"
)

var validWithdrawalReasons = []WithdrawalReason{
	ReasonDesgasteNatural,
	ReasonQuebraEmOperacao,
	ReasonPerdaDeDiametro,
	ReasonTrocaDeFrenteDeLavra,
	ReasonManutencaoPreventiva,
}

// AllWithdrawalReasons returns the vocabulary in display order.
func AllWithdrawalReasons() []WithdrawalReason {
	out := make([]WithdrawalReason, len(validWithdrawalReasons))
	copy(out, validWithdrawalReasons)
	return out
}

// IsValid reports whether the value matches the canonical reason vocabulary.
func (r WithdrawalReason) IsValid() bool {
	for _, candidate := range validWithdrawalReasons {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseWithdrawalReason converts the raw string to WithdrawalReason.
func ParseWithdrawalReason(value string) (WithdrawalReason, error) {
	for _, candidate := range validWithdrawalReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid withdrawal reason %q", value)
}
