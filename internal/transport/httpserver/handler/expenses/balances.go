package expenses

import (
	"errors"
	"net/http"

	"split-app-go/internal/domain/balances"
	"split-app-go/internal/transport/httpserver/handler/common"
)

type balanceResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

type balancesResponse struct {
	GroupID           int64             `json:"groupId"`
	TotalGroupExpense string            `json:"totalGroupExpense"`
	EqualShare        string            `json:"equalShare"`
	Balances          []balanceResponse `json:"balances"`
	BalanceSummary    []string          `json:"balanceSummary"`
}

func (h *Handlers) GroupBalances(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	result, err := h.Expenses.GroupBalances(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, balances.ErrNoMembers) {
			h.log.BusinessError("balances.get: no members", err, "group_id", groupID)
			common.WriteError(w, http.StatusNotFound, "Group not found or no friends in the group")
			return
		}
		h.log.InternalError("balances.get: compute balances failed", err, "group_id", groupID)
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]balanceResponse, 0, len(result.Balances))
	for _, balance := range result.Balances {
		items = append(items, balanceResponse{
			ID:      balance.ID,
			Name:    balance.Name,
			Balance: balances.FormatAmount(balance.Balance),
		})
	}

	common.WriteJSON(w, http.StatusOK, balancesResponse{
		GroupID:           result.GroupID,
		TotalGroupExpense: balances.FormatAmount(result.TotalGroupExpense),
		EqualShare:        balances.FormatAmount(result.EqualShare),
		Balances:          items,
		BalanceSummary:    result.Summary,
	})
}
