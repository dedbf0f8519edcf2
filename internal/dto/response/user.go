package response

import "tour-booking/internal/data/entity"

type UserListResponse struct {
	Users      []entity.User  `json:"users"`
	Pagination PaginationMeta `json:"pagination"`
}
