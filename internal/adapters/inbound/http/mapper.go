package http

import (
	"github.com/teamgo/teamgo/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.UnauthorizedErr:
		errResp.Error.Code = UNAUTHORIZED
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	case *domain.ConflictErr:
		errResp.Error.Code = CONFLICT
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toUser(u domain.User) User {
	return User{
		Id:                u.ID,
		Email:             u.Email,
		AccessFailedCount: u.AccessFailedCount,
		LockoutEnd:        u.LockoutEnd,
		Deactivated:       u.IsSoftDeleted(),
		DeactivatedAt:     u.DeletedAt(),
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toRole(r domain.Role) Role {
	return Role{
		Id:     r.ID,
		Name:   r.Name,
		UserId: r.UserID,
	}
}
