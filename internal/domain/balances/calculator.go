// Package balances computes each member's position against an equal split of
// a group's expenses.
//
// The sign convention is owe-positive: a member whose recorded expenses exceed
// the equal share has a positive balance and is reported as owing that amount
// to the group. Settlements are plain negative expense rows attributed to the
// payer, so they reduce only the payer's total.
package balances

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrNoMembers = errors.New("group not found or no friends in the group")

const DefaultCurrencySymbol = "₹"

type Member struct {
	ID   int64
	Name string
}

type MemberBalance struct {
	ID      int64
	Name    string
	Balance float64
}

type Result struct {
	TotalGroupExpense float64
	EqualShare        float64
	Balances          []MemberBalance
}

// Calculate nets every member's summed expense amount against the equal
// share. totals is keyed by friend id; amounts for friends that are not
// members still count towards the group total. Members keep their input
// order. Values are not rounded.
func Calculate(members []Member, totals map[int64]float64) (Result, error) {
	if len(members) == 0 {
		return Result{}, ErrNoMembers
	}

	var total float64
	for _, amount := range totals {
		total += amount
	}
	equalShare := total / float64(len(members))

	balances := make([]MemberBalance, 0, len(members))
	for _, member := range members {
		balances = append(balances, MemberBalance{
			ID:      member.ID,
			Name:    member.Name,
			Balance: totals[member.ID] - equalShare,
		})
	}

	return Result{
		TotalGroupExpense: total,
		EqualShare:        equalShare,
		Balances:          balances,
	}, nil
}

// Round2 rounds half away from zero to cents and folds -0 into 0.
func Round2(value float64) float64 {
	rounded := math.Round(value*100) / 100
	if rounded == 0 {
		return 0
	}
	return rounded
}

// FormatAmount renders a value with exactly two decimals.
func FormatAmount(value float64) string {
	return strconv.FormatFloat(Round2(value), 'f', 2, 64)
}

// Summary describes a single balance using the rounded value, so a balance
// that rounds to zero reads as settled.
func Summary(balance MemberBalance, currencySymbol string) string {
	rounded := Round2(balance.Balance)
	switch {
	case rounded > 0:
		return fmt.Sprintf("%s owes %s%s to the group.", balance.Name, currencySymbol, FormatAmount(rounded))
	case rounded < 0:
		return fmt.Sprintf("%s is owed %s%s by the group.", balance.Name, currencySymbol, FormatAmount(-rounded))
	default:
		return fmt.Sprintf("%s is settled.", balance.Name)
	}
}

func Summaries(result Result, currencySymbol string) []string {
	lines := make([]string, 0, len(result.Balances))
	for _, balance := range result.Balances {
		lines = append(lines, Summary(balance, currencySymbol))
	}
	return lines
}
