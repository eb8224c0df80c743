package salary

import "github.com/shopspring/decimal"

// Overview holds derived payment figures for a set of salary records.
// PendingPayments is a count of unpaid records, not an amount.
type Overview struct {
	TotalOwed       decimal.Decimal
	TotalPaid       decimal.Decimal
	PendingPayments int
}

// ComputeOverview derives the figures from the given records. Like project
// progress, this is recomputed on every read rather than stored.
func ComputeOverview(records []Record) Overview {
	o := Overview{
		TotalOwed: decimal.Zero,
		TotalPaid: decimal.Zero,
	}
	for _, r := range records {
		if r.IsPaid {
			o.TotalPaid = o.TotalPaid.Add(r.TotalAmount)
		} else {
			o.TotalOwed = o.TotalOwed.Add(r.TotalAmount)
			o.PendingPayments++
		}
	}
	return o
}
