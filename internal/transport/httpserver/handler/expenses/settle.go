package expenses

import (
	"errors"
	"net/http"

	expensesdomain "split-app-go/internal/domain/expenses"
	"split-app-go/internal/transport/httpserver/handler/common"
)

type settleRequest struct {
	PayerID int64   `json:"payerId"`
	PayeeID int64   `json:"payeeId"`
	Amount  float64 `json:"amount"`
}

type settlementExpenseResponse struct {
	ID          int64   `json:"id"`
	GroupID     int64   `json:"group_id"`
	PayerID     int64   `json:"payerId"`
	PayeeID     int64   `json:"payeeId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type settleResponse struct {
	Message string                    `json:"message"`
	Expense settlementExpenseResponse `json:"expense"`
}

func (h *Handlers) Settle(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req settleRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	expense, err := h.Expenses.RecordSettlement(r.Context(), expensesdomain.RecordSettlementInput{
		GroupID: groupID,
		PayerID: req.PayerID,
		PayeeID: req.PayeeID,
		Amount:  req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, expensesdomain.ErrInvalidInput):
			h.log.BusinessError("expenses.settle: invalid input", err, "group_id", groupID)
			common.WriteError(w, http.StatusBadRequest, "payerId, payeeId, and amount are required")
		case errors.Is(err, expensesdomain.ErrReferenceNotFound):
			h.log.BusinessError("expenses.settle: unknown group or friend", err, "group_id", groupID, "payer_id", req.PayerID)
			common.WriteError(w, http.StatusNotFound, "Group or friend not found")
		default:
			h.log.InternalError("expenses.settle: record settlement failed", err, "group_id", groupID)
			common.WriteError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.recorder.ExpenseRecorded(string(expense.Kind), expense.Amount)
	common.WriteJSON(w, http.StatusOK, settleResponse{
		Message: expense.Description,
		Expense: settlementExpenseResponse{
			ID:          expense.ID,
			GroupID:     expense.GroupID,
			PayerID:     expense.FriendID,
			PayeeID:     req.PayeeID,
			Amount:      expense.Amount,
			Description: expense.Description,
		},
	})
}
