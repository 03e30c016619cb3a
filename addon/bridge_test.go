package addon

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"world-chat/domain"
	"world-chat/domain/event"
	"world-chat/errors"
	"world-chat/mocks"
	"world-chat/routing"
)

type inbox struct {
	mu     sync.Mutex
	frames []domain.Frame
}

func (i *inbox) SendFrame(frame domain.Frame) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.frames = append(i.frames, frame)
}

func (i *inbox) SendNotice(domain.Notice) {}

func (i *inbox) Kick(string) {}

func (i *inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.frames)
}

func player(id domain.GUID, name string) (*domain.Participant, *inbox) {
	box := &inbox{}
	return domain.NewParticipant(domain.ParticipantInfo{ID: id, Name: name, Level: 80}, box), box
}

type fixture struct {
	players  *mocks.MockPlayerDirectory
	guilds   *mocks.MockGuildDirectory
	observer *mocks.MockChatObserver
	bridge   *Bridge
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := fixture{
		players:  mocks.NewMockPlayerDirectory(ctrl),
		guilds:   mocks.NewMockGuildDirectory(ctrl),
		observer: mocks.NewMockChatObserver(ctrl),
	}
	f.bridge = NewBridge(f.players, f.guilds, routing.NewDeliverer(f.observer, log), log).
		WithClock(func() time.Time { return time.Unix(1_700_000_000, 0) })
	return f
}

func TestBridge_Logs_Before_The_Channel_Switch(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sender, _ := player(1, "Ana")
	policy := domain.DefaultPolicy()
	policy.ChatLogAddon = true
	policy.AddonChannel = false

	// Given logging is on and the channel is off, the payload is still observed
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.ChatObserved) error {
			req.Equal(domain.KindAddon, e.Kind)
			req.Equal(domain.LangAddon, e.Language)
			req.Equal("DBM", e.Prefix)
			return nil
		}).Times(1)

	delivered, err := f.bridge.Handle(context.Background(), policy, sender,
		domain.AddonPayload{Type: domain.KindGuild, Prefix: "DBM", Text: "pull:10"})

	req.ErrorIs(err, errors.ErrAddonChannelDisabled)
	req.Zero(delivered)

	// When the text is empty nothing is logged
	_, err = f.bridge.Handle(context.Background(), policy, sender, domain.AddonPayload{Type: domain.KindGuild, Prefix: "DBM"})
	req.ErrorIs(err, errors.ErrEmptyText)
}

func TestBridge_Party_Excludes_Sender_And_Filters_Prefix(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sender, senderBox := player(1, "Ana")
	listener, listenerBox := player(2, "Bob")
	other, otherBox := player(3, "Cid")
	away, awayBox := player(4, "Dee")
	group := domain.NewGroup(sender, domain.GroupFlagRaid)
	group.AddMember(listener, 0)
	group.AddMember(other, 1)
	group.AddMember(away, 2)
	for _, p := range []*domain.Participant{sender, listener, other} {
		p.SetGroup(group)
	}
	// Given one member only listens to another addon and one sits in a battleground
	other.RegisterAddonPrefix("Skada")
	away.SetGroup(domain.NewGroup(away, domain.GroupFlagBattleground))
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	delivered, err := f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender,
		domain.AddonPayload{Type: domain.KindRaid, Prefix: "DBM", Text: "pull:10"})

	req.NoError(err)
	req.Equal(1, delivered)
	req.Equal(1, listenerBox.Len())
	req.Zero(senderBox.Len())
	req.Zero(otherBox.Len())
	req.Zero(awayBox.Len())
}

func TestBridge_Instance_Needs_Battleground(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sender, senderBox := player(1, "Ana")
	mate, mateBox := player(2, "Bob")
	party := domain.NewGroup(sender, 0)
	party.AddMember(mate, 0)
	sender.SetGroup(party)
	payload := domain.AddonPayload{Type: domain.KindInstanceChat, Prefix: "BG", Text: "flag"}

	_, err := f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender, payload)
	req.ErrorIs(err, errors.ErrNoGroup)

	// When the group is a battleground group everybody hears it, sender included
	party.SetFlags(domain.GroupFlagBattleground)
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	delivered, err := f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender, payload)
	req.NoError(err)
	req.Equal(2, delivered)
	req.Equal(1, senderBox.Len())
	req.Equal(1, mateBox.Len())
}

func TestBridge_Whisper(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sender, _ := player(1, "Ana")
	receiver, receiverBox := player(2, "Bob")
	f.players.EXPECT().FindByName("Bob").Return(receiver, nil).Times(1)
	f.players.EXPECT().FindByName("Zzyx").Return(nil, errors.ErrPlayerNotFound).Times(1)
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	delivered, err := f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender,
		domain.AddonPayload{Type: domain.KindWhisper, Prefix: "DBM", Text: "v1", Target: "bob"})
	req.NoError(err)
	req.Equal(1, delivered)
	req.Equal(1, receiverBox.Len())
	req.Equal("DBM", receiverBox.frames[0].AddonPrefix)
	req.Equal(domain.LangAddon, receiverBox.frames[0].Language)

	// Then an unknown receiver is a silent drop
	_, err = f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender,
		domain.AddonPayload{Type: domain.KindWhisper, Prefix: "DBM", Text: "v1", Target: "Zzyx"})
	req.ErrorIs(err, errors.ErrPlayerNotFound)
	var rejection domain.Rejection
	req.False(errors.As(err, &rejection))
}

func TestBridge_Officer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sender, _ := player(1, "Ana")
	officer, officerBox := player(2, "Bob")
	member, memberBox := player(3, "Cid")
	sender.SetGuildID(9)
	guild := domain.NewGuild(9, "Argent Dawn")
	guild.AddMember(sender, true)
	guild.AddMember(officer, true)
	guild.AddMember(member, false)
	f.guilds.EXPECT().GuildByID(uint32(9)).Return(guild, true).Times(1)
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	delivered, err := f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender,
		domain.AddonPayload{Type: domain.KindOfficer, Prefix: "GRM", Text: "sync"})

	req.NoError(err)
	req.Equal(2, delivered)
	req.Equal(1, officerBox.Len())
	req.Zero(memberBox.Len())
}

func TestBridge_No_Guild(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sender, _ := player(1, "Ana")

	_, err := f.bridge.Handle(context.Background(), domain.DefaultPolicy(), sender,
		domain.AddonPayload{Type: domain.KindGuild, Prefix: "GRM", Text: "sync"})

	req.ErrorIs(err, errors.ErrNoGuild)
}
