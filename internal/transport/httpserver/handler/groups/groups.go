package groups

import (
	"errors"
	"net/http"
	"strings"

	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/internal/transport/httpserver/handler/common"
)

type groupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type friendResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	GroupID *int64 `json:"group_id"`
}

type membershipResponse struct {
	ID       int64 `json:"id"`
	GroupID  int64 `json:"group_id"`
	FriendID int64 `json:"friend_id"`
}

type getGroupResponse struct {
	Message string           `json:"message"`
	Group   groupResponse    `json:"group"`
	Friends []friendResponse `json:"friends"`
}

type createGroupRequest struct {
	Name string `json:"name"`
}

type addFriendRequest struct {
	Name string `json:"name"`
}

type addMemberRequest struct {
	FriendID int64 `json:"friend_id"`
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	result, err := h.Groups.GetGroupWithFriends(r.Context(), groupID)
	if err != nil {
		h.handleError(w, "groups.get", err, "group_id", groupID)
		return
	}

	friends := make([]friendResponse, 0, len(result.Friends))
	for _, friend := range result.Friends {
		friends = append(friends, toFriendResponse(friend))
	}

	common.WriteJSON(w, http.StatusOK, getGroupResponse{
		Message: "success",
		Group:   toGroupResponse(result.Group),
		Friends: friends,
	})
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	group, err := h.Groups.CreateGroup(r.Context(), req.Name)
	if err != nil {
		h.handleError(w, "groups.create", err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, toGroupResponse(*group))
}

func (h *Handlers) AddFriend(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req addFriendRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	friend, err := h.Groups.AddFriend(r.Context(), groupID, req.Name)
	if err != nil {
		h.handleError(w, "groups.add_friend", err, "group_id", groupID)
		return
	}

	common.WriteJSON(w, http.StatusCreated, toFriendResponse(*friend))
}

func (h *Handlers) AddMember(w http.ResponseWriter, r *http.Request) {
	groupID, err := common.ParseID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req addMemberRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	membership, err := h.Groups.AddMember(r.Context(), groupID, req.FriendID)
	if err != nil {
		h.handleError(w, "groups.add_member", err, "group_id", groupID, "friend_id", req.FriendID)
		return
	}

	common.WriteJSON(w, http.StatusCreated, membershipResponse{
		ID:       membership.ID,
		GroupID:  membership.GroupID,
		FriendID: membership.FriendID,
	})
}

func (h *Handlers) handleError(w http.ResponseWriter, op string, err error, args ...any) {
	switch {
	case errors.Is(err, groupsdomain.ErrInvalidInput):
		h.log.BusinessError(op+": invalid input", err, args...)
		common.WriteError(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), groupsdomain.ErrInvalidInput.Error()+": "))
	case errors.Is(err, groupsdomain.ErrGroupNotFound):
		h.log.BusinessError(op+": group not found", err, args...)
		common.WriteError(w, http.StatusNotFound, "Group not found")
	case errors.Is(err, groupsdomain.ErrFriendNotFound):
		h.log.BusinessError(op+": friend not found", err, args...)
		common.WriteError(w, http.StatusNotFound, "Friend not found")
	case errors.Is(err, groupsdomain.ErrAlreadyMember):
		h.log.BusinessError(op+": already a member", err, args...)
		common.WriteError(w, http.StatusConflict, "Friend is already a member of the group")
	default:
		h.log.InternalError(op+": failed", err, args...)
		common.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toGroupResponse(group groupsdomain.Group) groupResponse {
	return groupResponse{ID: group.ID, Name: group.Name}
}

func toFriendResponse(friend groupsdomain.Friend) friendResponse {
	return friendResponse{ID: friend.ID, Name: friend.Name, GroupID: friend.GroupID}
}
