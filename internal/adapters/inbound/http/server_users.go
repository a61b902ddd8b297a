package http

import (
	"net/http"
	"strconv"
)

func (api IdentityServer) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsReq
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := api.RegisterUserUseCase.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toUser(user))
}

func (api IdentityServer) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsReq
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := api.AuthenticateUseCase.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, LoginResp{
		AccessToken: token.Value,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
		User:        toUser(user),
	})
}

func (api IdentityServer) ListUsers(w http.ResponseWriter, r *http.Request) {
	deactivated := false
	if v := r.URL.Query().Get("deactivated"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, "invalid deactivated: %v", err)
			return
		}
		deactivated = b
	}

	users, err := api.ListUsersUseCase.Query(r.Context(), deactivated)
	if err != nil {
		api.Logger.Printf("Error listing users: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListUsersResp{Items: []User{}}
	for _, u := range users {
		resp.Items = append(resp.Items, toUser(u))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api IdentityServer) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	user, err := api.GetUserUseCase.Query(r.Context(), id)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toUser(user))
}

func (api IdentityServer) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := api.DeactivateUserUseCase.Execute(r.Context(), id); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api IdentityServer) RestoreUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := api.RestoreUserUseCase.Execute(r.Context(), id); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api IdentityServer) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := api.DeleteUserUseCase.Execute(r.Context(), id); err != nil {
		respondError(w, toError(err))
		return
	}
	if caller, ok := callerID(r.Context()); ok {
		api.Logger.Printf("IdentityServer: user %s purged by %s", id, caller)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api IdentityServer) ListRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	roles, err := api.ListRolesUseCase.Query(r.Context(), id)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ListRolesResp{Items: []Role{}}
	for _, role := range roles {
		resp.Items = append(resp.Items, toRole(role))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api IdentityServer) AssignRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	var req AssignRoleReq
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := api.AssignRoleUseCase.Execute(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toRole(role))
}

func (api IdentityServer) RevokeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roleId")
	if !ok {
		return
	}

	if err := api.RevokeRoleUseCase.Execute(r.Context(), id); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
