// Package auth checks the player tokens presented to the chat gateway.
package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const claimsKey contextKey = "player_claims"

// ClaimsFromContext returns the claims injected by the interceptors, if any.
func ClaimsFromContext(ctx context.Context) (*PlayerClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*PlayerClaims)
	return claims, ok
}

// UnaryInterceptor rejects calls without a valid "authorization: Bearer <token>" header.
func UnaryInterceptor(secret []byte) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		newCtx, err := authenticate(ctx, secret)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

func StreamInterceptor(secret []byte) grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		newCtx, err := authenticate(stream.Context(), secret)
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: stream, ctx: newCtx})
	}
}

func authenticate(ctx context.Context, secret []byte) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	claims, err := ValidateToken(secret, strings.TrimPrefix(values[0], "Bearer "))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return context.WithValue(ctx, claimsKey, claims), nil
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
