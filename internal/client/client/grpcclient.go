package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/dialkeeper/internal/api"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client api.VaultServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.Token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpoint. Extra options are appended after the
// defaults, which lets tests dial an in-memory listener.
func NewGRPCClient(endpoint string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewVaultServiceClient(conn)
	return c, nil
}

// SetToken sets the access token sent with subsequent calls.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func anglesToWire(angles []float64) []any {
	out := make([]any, len(angles))
	for i, a := range angles {
		out[i] = a
	}
	return out
}

// Register creates an account and returns its id.
func (s *GRPCClient) Register(ctx context.Context, name, email string, angles []float64) (string, error) {
	req := &api.RegisterRequest{Name: name, Email: email, Angles: anglesToWire(angles)}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserID, nil
}

// Login authenticates and keeps the issued token for later calls.
func (s *GRPCClient) Login(ctx context.Context, email string, angles []float64) (*api.UserInfo, string, error) {
	req := &api.AuthenticateRequest{Email: email, Angles: anglesToWire(angles)}

	resp, err := s.client.Authenticate(ctx, req)
	if err != nil {
		return nil, "", s.mapError(err)
	}
	if !resp.Success || resp.Token == "" {
		return nil, "", common.ErrAuthFailed
	}

	s.SetToken(resp.Token)
	return resp.User, resp.Token, nil
}

func (s *GRPCClient) List(ctx context.Context) ([]api.SecretSummary, error) {
	resp, err := s.client.ListSecrets(ctx, &api.ListSecretsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Secrets, nil
}

func (s *GRPCClient) Add(ctx context.Context, title, secretType, data string) (string, error) {
	req := &api.AddSecretRequest{Title: title, Type: secretType, Data: data}

	resp, err := s.client.AddSecret(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.ID, nil
}

func (s *GRPCClient) Reveal(ctx context.Context, id string) (*api.SecretDetail, error) {
	resp, err := s.client.RevealSecret(ctx, &api.RevealSecretRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Secret, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		msg := strings.TrimPrefix(st.Message(), common.ErrInvalidInput.Error()+": ")
		return fmt.Errorf("%w: %s", common.ErrInvalidInput, msg)
	case codes.AlreadyExists:
		return common.ErrDuplicateEmail
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated:
		if api.ReasonOf(err) == api.ReasonAuthFailed {
			return common.ErrAuthFailed
		}
		if st.Message() == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %s", ErrServer, st.Message())
	}
}
