package grpc

import (
	"context"
	"strconv"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"world-chat/domain"
	"world-chat/packet"
)

// ChatGatewayClient plays one player against a remote ChatGateway.
type ChatGatewayClient struct {
	cc    gogrpc.ClientConnInterface
	id    domain.GUID
	token string
}

func NewChatGatewayClient(cc gogrpc.ClientConnInterface, id domain.GUID) *ChatGatewayClient {
	return &ChatGatewayClient{cc: cc, id: id}
}

// WithToken authenticates every call with a player token instead of the GUID header.
func (c *ChatGatewayClient) WithToken(token string) *ChatGatewayClient {
	c.token = token
	return c
}

func (c *ChatGatewayClient) Submit(ctx context.Context, op packet.Opcode, payload []byte) error {
	ctx = c.outgoing(ctx)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/Submit", wrapperspb.Bytes(PackPacket(op, payload)), new(emptypb.Empty))
}

// Listen logs in and returns a receive function yielding one server packet per call.
func (c *ChatGatewayClient) Listen(ctx context.Context, info domain.ParticipantInfo) (func() (packet.Opcode, []byte, error), error) {
	login, err := ParticipantToStruct(info)
	if err != nil {
		return nil, err
	}
	stream, err := c.cc.NewStream(c.outgoing(ctx), &chatGatewayDesc.Streams[0], "/"+ServiceName+"/Listen")
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(login); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return func() (packet.Opcode, []byte, error) {
		msg := new(wrapperspb.BytesValue)
		if err := stream.RecvMsg(msg); err != nil {
			return 0, nil, err
		}
		return UnpackPacket(msg.GetValue())
	}, nil
}

func (c *ChatGatewayClient) outgoing(ctx context.Context) context.Context {
	if c.token != "" {
		return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}
	return metadata.AppendToOutgoingContext(ctx, GUIDHeader, strconv.FormatUint(uint64(c.id), 10))
}
