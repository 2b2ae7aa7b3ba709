package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/diillson/alicloud-ops/internal/shared/types"
)

// BillingCycle é um mês de faturamento no formato YYYY-MM.
type BillingCycle string

var billingCycleRegex = regexp.MustCompile(`^(\d{4})-(0?[1-9]|1[0-2])$`)

// ParseBillingCycle accepts YYYY-MM or YYYY-M and returns the zero-padded cycle.
func ParseBillingCycle(input string) (BillingCycle, error) {
	match := billingCycleRegex.FindStringSubmatch(input)
	if match == nil {
		return "", fmt.Errorf("%w %q, expected YYYY-MM or YYYY-M", types.ErrInvalidBillingCycle, input)
	}

	month := match[2]
	if len(month) == 1 {
		month = "0" + month
	}
	return BillingCycle(match[1] + "-" + month), nil
}

// CurrentBillingCycle retorna o ciclo do mês corrente.
func CurrentBillingCycle(now time.Time) BillingCycle {
	return BillingCycle(now.Format("2006-01"))
}

func (c BillingCycle) String() string {
	return string(c)
}
