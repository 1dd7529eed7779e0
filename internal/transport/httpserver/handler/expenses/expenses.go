package expenses

import (
	"errors"
	"net/http"
	"time"

	expensesdomain "split-app-go/internal/domain/expenses"
	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/internal/transport/httpserver/handler/common"
)

type createExpenseRequest struct {
	FriendID    int64   `json:"friend_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type expenseResponse struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"group_id"`
	FriendID    int64     `json:"friend_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	PayeeID     *int64    `json:"payee_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type createExpenseResponse struct {
	Message string          `json:"message"`
	Expense expenseResponse `json:"expense"`
}

type expenseListResponse struct {
	Items  []expenseResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req createExpenseRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	expense, err := h.Expenses.RecordExpense(r.Context(), expensesdomain.RecordExpenseInput{
		GroupID:     groupID,
		FriendID:    req.FriendID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, expensesdomain.ErrInvalidInput):
			h.log.BusinessError("expenses.create: invalid input", err, "group_id", groupID)
			common.WriteError(w, http.StatusBadRequest, "Friend ID, amount, and description are required")
		case errors.Is(err, expensesdomain.ErrReferenceNotFound):
			h.log.BusinessError("expenses.create: unknown group or friend", err, "group_id", groupID, "friend_id", req.FriendID)
			common.WriteError(w, http.StatusNotFound, "Group or friend not found")
		default:
			h.log.InternalError("expenses.create: record expense failed", err, "group_id", groupID)
			common.WriteError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.recorder.ExpenseRecorded(string(expense.Kind), expense.Amount)
	common.WriteJSON(w, http.StatusOK, createExpenseResponse{
		Message: "success",
		Expense: toExpenseResponse(*expense),
	})
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	query := r.URL.Query()
	limit, err := common.ParseIntParam(query.Get("limit"), 50)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := common.ParseIntParam(query.Get("offset"), 0)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	if _, err := h.Groups.GetGroup(r.Context(), groupID); err != nil {
		if errors.Is(err, groupsdomain.ErrGroupNotFound) {
			h.log.BusinessError("expenses.list: group not found", err, "group_id", groupID)
			common.WriteError(w, http.StatusNotFound, "Group not found")
			return
		}
		h.log.InternalError("expenses.list: get group failed", err, "group_id", groupID)
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	filter := expensesdomain.NormalizeListFilter(expensesdomain.ListFilter{Limit: limit, Offset: offset})
	items, total, err := h.Expenses.ListExpenses(r.Context(), groupID, filter)
	if err != nil {
		h.log.InternalError("expenses.list: list expenses failed", err, "group_id", groupID)
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	response := make([]expenseResponse, 0, len(items))
	for _, expense := range items {
		response = append(response, toExpenseResponse(expense))
	}

	common.WriteJSON(w, http.StatusOK, expenseListResponse{
		Items:  response,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func toExpenseResponse(expense expensesdomain.Expense) expenseResponse {
	return expenseResponse{
		ID:          expense.ID,
		GroupID:     expense.GroupID,
		FriendID:    expense.FriendID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Kind:        string(expense.Kind),
		PayeeID:     expense.PayeeID,
		CreatedAt:   expense.CreatedAt,
	}
}
