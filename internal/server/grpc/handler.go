package grpc

import (
	"context"

	"github.com/dmitrijs2005/dialkeeper/internal/api"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
)

// vaultHandler implements api.VaultServiceServer on top of the services.
type vaultHandler struct {
	server *GRPCServer
}

func (h *vaultHandler) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if api.ReasonOf(st) == api.ReasonStorage {
		h.server.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func (h *vaultHandler) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	h.server.logger.Info(ctx, "Registration request")

	u, err := h.server.auth.Register(ctx, req.Name, req.Email, req.Angles)
	if err != nil {
		return nil, h.fail(ctx, "register", err)
	}

	return &api.RegisterResponse{Success: true, UserID: u.ID}, nil
}

func (h *vaultHandler) Authenticate(ctx context.Context, req *api.AuthenticateRequest) (*api.AuthenticateResponse, error) {
	user, err := h.server.auth.Authenticate(ctx, req.Email, req.Angles)
	if err != nil {
		return nil, h.fail(ctx, "authenticate", err)
	}

	token, err := h.server.auth.IssueToken(user)
	if err != nil {
		return nil, h.fail(ctx, "issue token", err)
	}

	return &api.AuthenticateResponse{
		Success: true,
		Token:   token,
		User:    &api.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (h *vaultHandler) ListSecrets(ctx context.Context, _ *api.ListSecretsRequest) (*api.ListSecretsResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, toStatus(common.ErrorUnauthorized)
	}

	items, err := h.server.secrets.List(ctx, userID)
	if err != nil {
		return nil, h.fail(ctx, "list secrets", err)
	}

	out := make([]api.SecretSummary, 0, len(items))
	for _, s := range items {
		out = append(out, api.SecretSummary{
			ID:           s.ID,
			Title:        s.Title,
			Type:         s.Type,
			LastAccessed: s.LastAccessed.UnixMilli(),
		})
	}
	return &api.ListSecretsResponse{Secrets: out}, nil
}

func (h *vaultHandler) AddSecret(ctx context.Context, req *api.AddSecretRequest) (*api.AddSecretResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, toStatus(common.ErrorUnauthorized)
	}

	s, err := h.server.secrets.Add(ctx, userID, req.Title, req.Type, req.Data)
	if err != nil {
		return nil, h.fail(ctx, "add secret", err)
	}
	return &api.AddSecretResponse{ID: s.ID}, nil
}

func (h *vaultHandler) RevealSecret(ctx context.Context, req *api.RevealSecretRequest) (*api.RevealSecretResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, toStatus(common.ErrorUnauthorized)
	}

	s, err := h.server.secrets.Reveal(ctx, userID, req.ID)
	if err != nil {
		return nil, h.fail(ctx, "reveal secret", err)
	}
	return &api.RevealSecretResponse{Secret: toDetail(s)}, nil
}

func (h *vaultHandler) Ping(context.Context, *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func toDetail(s *models.Secret) api.SecretDetail {
	return api.SecretDetail{
		ID:           s.ID,
		Title:        s.Title,
		Type:         s.Type,
		Data:         s.EncryptedData,
		LastAccessed: s.LastAccessed.UnixMilli(),
	}
}
