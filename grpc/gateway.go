// Package grpc exposes the chat runtime to game clients over gRPC.
// Packets travel as BytesValue messages holding a little-endian opcode followed by the payload.
package grpc

import (
	"context"
	"log/slog"
	"strconv"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"world-chat/auth"
	"world-chat/contract"
	"world-chat/domain"
	"world-chat/errors"
	"world-chat/runtime"
)

const (
	ServiceName = "worldchat.v1.ChatGateway"
	// GUIDHeader carries the identity of the player submitting a packet.
	GUIDHeader = "x-player-guid"
)

type ChatGatewayServer interface {
	Submit(ctx context.Context, req *wrapperspb.BytesValue) (*emptypb.Empty, error)
	Listen(req *structpb.Struct, stream gogrpc.ServerStreamingServer[wrapperspb.BytesValue]) error
}

type ChatGateway struct {
	orchestrator contract.IOrchestrator
	notifier     *runtime.Notifier
	bufferSize   int
	log          *slog.Logger
}

func NewChatGateway(log *slog.Logger, orchestrator contract.IOrchestrator, notifier *runtime.Notifier, bufferSize int) *ChatGateway {
	return &ChatGateway{orchestrator: orchestrator, notifier: notifier, bufferSize: bufferSize, log: log}
}

func (g *ChatGateway) Register(server *gogrpc.Server) {
	server.RegisterService(&chatGatewayDesc, g)
}

// Submit queues one client packet for the player named by the GUID header.
// The result of the pipeline reaches the client through its Listen stream.
func (g *ChatGateway) Submit(ctx context.Context, req *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	id, err := playerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	op, payload, err := UnpackPacket(req.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := g.orchestrator.Submit(ctx, id, op, payload); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// Listen logs the player in and streams every packet addressed to them.
// It blocks until the client goes away or the player is kicked.
func (g *ChatGateway) Listen(req *structpb.Struct, stream gogrpc.ServerStreamingServer[wrapperspb.BytesValue]) error {
	info, err := ParticipantFromStruct(req)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if claims, ok := auth.ClaimsFromContext(stream.Context()); ok {
		if claims.PlayerID != info.ID {
			return status.Errorf(codes.PermissionDenied, "token does not belong to player %d", info.ID)
		}
		info.Security = claims.Security
	}
	session := NewSession(g.bufferSize, g.notifier, g.log)
	participant, err := g.orchestrator.Connect(info, session)
	if err != nil {
		return toStatus(err)
	}
	defer g.orchestrator.Disconnect(participant.ID)
	g.log.Info("Player connected", "guid", participant.ID, "name", participant.Name)

	for {
		select {
		case <-stream.Context().Done():
			g.log.Info("Player disconnected", "guid", participant.ID)
			return nil
		case reason := <-session.kicked:
			g.log.Warn("Player kicked", "guid", participant.ID, "reason", reason)
			return status.Error(codes.PermissionDenied, reason)
		case p := <-session.out:
			if err := stream.Send(wrapperspb.Bytes(PackPacket(p.op, p.payload))); err != nil {
				g.log.Error("Failed to push packet to stream", "guid", participant.ID, "error", err)
				return err
			}
		}
	}
}

// playerFromContext prefers the authenticated token.
// Without one the gateway trusts the GUID header set by the realm proxy.
func playerFromContext(ctx context.Context) (domain.GUID, error) {
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		return claims.PlayerID, nil
	}
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(GUIDHeader)
	if len(values) == 0 {
		return 0, status.Errorf(codes.Unauthenticated, "missing %s header", GUIDHeader)
	}
	id, err := strconv.ParseUint(values[0], 10, 64)
	if err != nil || id == 0 {
		return 0, status.Errorf(codes.Unauthenticated, "invalid %s header %q", GUIDHeader, values[0])
	}
	return domain.GUID(id), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, errors.ErrUnknownSession):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, errors.ErrAlreadyOnline):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, errors.ErrSessionBusy):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, errors.ErrSessionClosed):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var chatGatewayDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChatGatewayServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "Submit", Handler: submitHandler},
	},
	Streams: []gogrpc.StreamDesc{
		{StreamName: "Listen", Handler: listenHandler, ServerStreams: true},
	},
}

func submitHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatGatewayServer).Submit(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Submit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatGatewayServer).Submit(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listenHandler(srv any, stream gogrpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ChatGatewayServer).Listen(in, &gogrpc.GenericServerStream[structpb.Struct, wrapperspb.BytesValue]{ServerStream: stream})
}
