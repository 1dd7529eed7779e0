package expenses

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"split-app-go/internal/domain/balances"
	"split-app-go/internal/domain/groups"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type MemberLister interface {
	ListMembers(ctx context.Context, groupID int64) ([]groups.Member, error)
}

type Service struct {
	repo           Repository
	members        MemberLister
	currencySymbol string
}

func NewService(repo Repository, members MemberLister, currencySymbol string) *Service {
	if strings.TrimSpace(currencySymbol) == "" {
		currencySymbol = balances.DefaultCurrencySymbol
	}
	return &Service{repo: repo, members: members, currencySymbol: currencySymbol}
}

func (s *Service) CurrencySymbol() string {
	return s.currencySymbol
}

func (s *Service) RecordExpense(ctx context.Context, input RecordExpenseInput) (*Expense, error) {
	amount := balances.Round2(input.Amount)
	description := strings.TrimSpace(input.Description)
	if input.FriendID == 0 || amount == 0 || description == "" {
		return nil, fmt.Errorf("%w: friend ID, amount, and description are required", ErrInvalidInput)
	}

	expense := Expense{
		GroupID:     input.GroupID,
		FriendID:    input.FriendID,
		Amount:      amount,
		Description: description,
		Kind:        KindExpense,
	}
	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// RecordSettlement stores a payment from payer to payee as a negative expense
// of the payer. The payee's total is left untouched; the payee is kept only
// in PayeeID and the description.
func (s *Service) RecordSettlement(ctx context.Context, input RecordSettlementInput) (*Expense, error) {
	amount := balances.Round2(input.Amount)
	if input.PayerID == 0 || input.PayeeID == 0 || amount == 0 {
		return nil, fmt.Errorf("%w: payerId, payeeId, and amount are required", ErrInvalidInput)
	}

	payeeID := input.PayeeID
	expense := Expense{
		GroupID:     input.GroupID,
		FriendID:    input.PayerID,
		Amount:      -amount,
		Description: settlementDescription(input.PayerID, input.PayeeID, amount, s.currencySymbol),
		Kind:        KindSettlement,
		PayeeID:     &payeeID,
	}
	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// GroupBalances reads the membership list and the per-friend totals
// concurrently. The two reads are not isolated from concurrent writes.
func (s *Service) GroupBalances(ctx context.Context, groupID int64) (*GroupBalances, error) {
	var (
		members []groups.Member
		totals  []FriendTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.members.ListMembers(gctx, groupID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		members = result
		return nil
	})
	g.Go(func() error {
		result, err := s.repo.SumByFriend(gctx, groupID)
		if err != nil {
			return fmt.Errorf("sum expenses: %w", err)
		}
		totals = result
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	calcMembers := make([]balances.Member, 0, len(members))
	for _, member := range members {
		calcMembers = append(calcMembers, balances.Member{ID: member.ID, Name: member.Name})
	}
	totalsByFriend := make(map[int64]float64, len(totals))
	for _, total := range totals {
		totalsByFriend[total.FriendID] += total.Total
	}

	result, err := balances.Calculate(calcMembers, totalsByFriend)
	if err != nil {
		return nil, err
	}

	return &GroupBalances{
		GroupID: groupID,
		Result:  result,
		Summary: balances.Summaries(result, s.currencySymbol),
	}, nil
}

func (s *Service) ListExpenses(ctx context.Context, groupID int64, filter ListFilter) ([]Expense, int64, error) {
	return s.repo.ListExpenses(ctx, groupID, NormalizeListFilter(filter))
}

// NormalizeListFilter applies the default page size and clamps the limit and
// offset into range.
func NormalizeListFilter(filter ListFilter) ListFilter {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}

func settlementDescription(payerID, payeeID int64, amount float64, currencySymbol string) string {
	return fmt.Sprintf("%d paid %s%s to %d to settle the balance",
		payerID, currencySymbol, strconv.FormatFloat(amount, 'f', -1, 64), payeeID)
}
