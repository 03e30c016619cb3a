package runtime

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
	"world-chat/mocks"
	"world-chat/moderation"
	"world-chat/packet"
)

var now = time.Date(2026, 5, 6, 21, 0, 0, 0, time.UTC)

const commonSkill = 98

// inbox records what a session received.
type inbox struct {
	mu      sync.Mutex
	frames  []domain.Frame
	notices []domain.Notice
	kicks   []string
}

func (i *inbox) SendFrame(frame domain.Frame) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.frames = append(i.frames, frame)
}

func (i *inbox) SendNotice(notice domain.Notice) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.notices = append(i.notices, notice)
}

func (i *inbox) Kick(reason string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.kicks = append(i.kicks, reason)
}

func (i *inbox) Frames() []domain.Frame {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]domain.Frame(nil), i.frames...)
}

func (i *inbox) Notices() []domain.Notice {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]domain.Notice(nil), i.notices...)
}

func speaker(id domain.GUID, name string) (*domain.Participant, *inbox) {
	box := &inbox{}
	p := domain.NewParticipant(domain.ParticipantInfo{
		ID: id, Name: name, Team: domain.TeamAlliance, Level: 80, AcceptWhispers: true,
		Skills: []uint32{commonSkill},
	}, box)
	return p, box
}

type pipelineFixture struct {
	players   *mocks.MockPlayerDirectory
	guilds    *mocks.MockGuildDirectory
	channels  *mocks.MockChannelDirectory
	proximity *mocks.MockProximityBroadcaster
	observer  *mocks.MockChatObserver
	commands  *mocks.MockCommandDispatcher
	criteria  *mocks.MockCriteriaRecorder
}

func newPipeline(t *testing.T, policy domain.Policy) (*Pipeline, pipelineFixture) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := pipelineFixture{
		players:   mocks.NewMockPlayerDirectory(ctrl),
		guilds:    mocks.NewMockGuildDirectory(ctrl),
		channels:  mocks.NewMockChannelDirectory(ctrl),
		proximity: mocks.NewMockProximityBroadcaster(ctrl),
		observer:  mocks.NewMockChatObserver(ctrl),
		commands:  mocks.NewMockCommandDispatcher(ctrl),
		criteria:  mocks.NewMockCriteriaRecorder(ctrl),
	}
	moderator, err := moderation.NewModerator([]string{"idiot"}, '*', log)
	require.NoError(t, err)
	pipeline := NewPipeline(policy, moderator, Collaborators{
		Players:   f.players,
		Guilds:    f.guilds,
		Channels:  f.channels,
		Proximity: f.proximity,
		Observer:  f.observer,
		Commands:  f.commands,
		Criteria:  f.criteria,
	}, log).WithClock(func() time.Time { return now }).WithCommandPrefixes(".")
	return pipeline, f
}

func encode(t *testing.T, env domain.Envelope) (packet.Opcode, []byte) {
	op, payload, err := packet.Encode(env)
	require.NoError(t, err)
	return op, payload
}

func TestPipeline_Say_Is_Censored_And_Delivered(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	pipeline, f := newPipeline(t, domain.DefaultPolicy())
	ana, _ := speaker(1, "Ana")
	var broadcast domain.Frame

	// Given the observer and the broadcaster are called once
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.proximity.EXPECT().Broadcast(gomock.Any(), ana, gomock.Any(), 25.0).
		Do(func(_ context.Context, _ *domain.Participant, frame domain.Frame, _ float64) {
			broadcast = frame
		}).Times(1)

	// When Ana says something rude
	op, payload := encode(t, domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: "you idiot"})
	outcome := pipeline.Handle(ctx, ana, op, payload)

	// Then the censored text reaches the listeners
	req.Equal(OutcomeDelivered, outcome)
	req.Equal("you *****", broadcast.Text)
	req.Equal(domain.LangCommon, broadcast.Language)
	req.Equal(now, ana.LastSpeak())
}

func TestPipeline_Unknown_Language_Notifies_The_Sender(t *testing.T) {
	req := require.New(t)
	pipeline, _ := newPipeline(t, domain.DefaultPolicy())
	ana, box := speaker(1, "Ana")

	op, payload := encode(t, domain.Speech{Type: domain.KindSay, Language: 9999, Text: "hello"})
	outcome := pipeline.Handle(context.Background(), ana, op, payload)

	req.Equal(OutcomeNotified, outcome)
	req.Equal([]domain.Notice{domain.UnknownLanguage()}, box.Notices())
	req.True(ana.LastSpeak().IsZero())
}

func TestPipeline_Language_Not_Learned(t *testing.T) {
	req := require.New(t)
	pipeline, _ := newPipeline(t, domain.DefaultPolicy())
	box := &inbox{}
	// Given a sender who never learned Common
	ana := domain.NewParticipant(domain.ParticipantInfo{ID: 1, Name: "Ana", Level: 80}, box)

	op, payload := encode(t, domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: "hello"})
	outcome := pipeline.Handle(context.Background(), ana, op, payload)

	req.Equal(OutcomeNotified, outcome)
	req.Equal([]domain.Notice{domain.LanguageNotLearned()}, box.Notices())
}

func TestPipeline_AFK_Toggles_Presence(t *testing.T) {
	req := require.New(t)
	pipeline, _ := newPipeline(t, domain.DefaultPolicy())
	ana, box := speaker(1, "Ana")
	op, payload := encode(t, domain.Presence{Type: domain.KindAFK})

	// When Ana goes AFK without a message
	req.Equal(OutcomeDelivered, pipeline.Handle(context.Background(), ana, op, payload))

	// Then the default message is recorded and nothing is broadcast
	idle := ana.Idle()
	req.True(idle.AFK)
	req.Equal("Away from Keyboard", idle.AFKMessage)
	req.Empty(box.Frames())

	// When Ana sends AFK again with a message the flag is cleared
	op, payload = encode(t, domain.Presence{Type: domain.KindAFK, Text: "back"})
	req.Equal(OutcomeDelivered, pipeline.Handle(context.Background(), ana, op, payload))
	req.False(ana.Idle().AFK)
}

func TestPipeline_AFK_In_Combat_Is_Silent(t *testing.T) {
	req := require.New(t)
	pipeline, _ := newPipeline(t, domain.DefaultPolicy())
	ana, box := speaker(1, "Ana")
	ana.SetInCombat(true)

	op, payload := encode(t, domain.Presence{Type: domain.KindAFK})

	req.Equal(OutcomeDropped, pipeline.Handle(context.Background(), ana, op, payload))
	req.False(ana.Idle().AFK)
	req.Empty(box.Notices())
}

func TestPipeline_Command_Short_Circuits_Routing(t *testing.T) {
	req := require.New(t)
	pipeline, f := newPipeline(t, domain.DefaultPolicy())
	ana, _ := speaker(1, "Ana")

	// Given the dispatcher handles the text
	f.commands.EXPECT().TryExecute(gomock.Any(), ana, ".help").Return(true).Times(1)

	op, payload := encode(t, domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: ".help"})
	outcome := pipeline.Handle(context.Background(), ana, op, payload)

	// Then nothing is broadcast
	req.Equal(OutcomeDropped, outcome)
}

func TestPipeline_Invalid_Link_Kicks_The_Sender(t *testing.T) {
	req := require.New(t)
	policy := domain.DefaultPolicy()
	policy.StrictLinkCheckingSeverity = moderation.LinkCheckStructure
	policy.StrictLinkCheckingKick = true
	pipeline, _ := newPipeline(t, policy)
	ana, box := speaker(1, "Ana")

	op, payload := encode(t, domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: "cheap |Hitem:1|h[gold]|h|r"})
	outcome := pipeline.Handle(context.Background(), ana, op, payload)

	req.Equal(OutcomeKicked, outcome)
	req.Len(box.kicks, 1)
	req.Empty(box.Notices())
}

func TestPipeline_Muted_Sender_Waits(t *testing.T) {
	req := require.New(t)
	pipeline, _ := newPipeline(t, domain.DefaultPolicy())
	ana, box := speaker(1, "Ana")
	ana.Mute(now.Add(90 * time.Second))

	op, payload := encode(t, domain.Speech{Type: domain.KindSay, Language: domain.LangCommon, Text: "hello"})
	outcome := pipeline.Handle(context.Background(), ana, op, payload)

	req.Equal(OutcomeNotified, outcome)
	req.Equal([]domain.Notice{domain.WaitBeforeSpeaking(90 * time.Second)}, box.Notices())
}

func TestPipeline_Addon_Language_Logged_But_Dropped_When_Channel_Off(t *testing.T) {
	req := require.New(t)
	policy := domain.DefaultPolicy()
	policy.ChatLogAddon = true
	policy.AddonChannel = false
	pipeline, f := newPipeline(t, policy)
	ana, _ := speaker(1, "Ana")

	// Given the observer logs the addon text once
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.ChatObserved) error {
			req.Equal(domain.KindAddon, e.Kind)
			req.Equal("DBM\tpull", e.Text)
			return nil
		}).Times(1)

	op, payload := encode(t, domain.Speech{Type: domain.KindParty, Language: domain.LangAddon, Text: "DBM\tpull"})
	outcome := pipeline.Handle(context.Background(), ana, op, payload)

	// Then nothing is routed
	req.Equal(OutcomeDropped, outcome)
}

func TestPipeline_Malformed_Packets_Are_Dropped(t *testing.T) {
	tests := []struct {
		name    string
		op      packet.Opcode
		payload []byte
	}{
		{name: "Truncated say", op: packet.CMsgChatMessageSay, payload: []byte{7, 0}},
		{name: "Unknown opcode", op: packet.Opcode(0xFFFF), payload: []byte{1, 2, 3}},
		{name: "Truncated emote", op: packet.CMsgEmote, payload: []byte{1}},
		{name: "Truncated text emote", op: packet.CMsgTextEmote, payload: []byte{1, 0, 0, 0}},
		{name: "Truncated chat ignored", op: packet.CMsgChatIgnored, payload: []byte{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			pipeline, _ := newPipeline(t, domain.DefaultPolicy())
			ana, box := speaker(1, "Ana")

			outcome := pipeline.Handle(context.Background(), ana, tt.op, tt.payload)

			req.Equal(OutcomeDropped, outcome)
			req.Empty(box.Notices())
			req.Empty(box.Frames())
		})
	}
}

func TestPipeline_Text_Emote(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	pipeline, f := newPipeline(t, domain.DefaultPolicy())
	ana, _ := speaker(1, "Ana")
	bob, _ := speaker(2, "Bob")
	var broadcast domain.Frame

	// Given Ana waves at Bob
	f.players.EXPECT().FindByID(domain.GUID(2)).Return(bob, true).Times(1)
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.proximity.EXPECT().Broadcast(gomock.Any(), ana, gomock.Any(), 25.0).
		Do(func(_ context.Context, _ *domain.Participant, frame domain.Frame, _ float64) {
			broadcast = frame
		}).Times(1)
	f.criteria.EXPECT().RecordEmote(gomock.Any(), ana, uint32(101), domain.GUID(2)).Times(1)

	payload := packet.EncodeTextEmote(packet.TextEmoteRequest{EmoteNum: 3, TextEmote: 101, Target: 2})
	outcome := pipeline.Handle(ctx, ana, packet.CMsgTextEmote, payload)

	// Then everyone around sees the wave aimed at Bob
	req.Equal(OutcomeDelivered, outcome)
	req.Equal(domain.KindTextEmote, broadcast.Kind)
	req.Equal("wave", broadcast.Text)
	req.Equal("Bob", broadcast.Target)
	req.Equal(domain.GUID(2), broadcast.EmoteWith)
	req.Equal(now, ana.LastSpeak())
}

func TestPipeline_Text_Emote_Gates(t *testing.T) {
	tests := []struct {
		name      string
		given     func(p *domain.Participant)
		emote     uint32
		expected  Outcome
		notice    bool
		spokeTime bool
	}{
		{name: "Dead senders are ignored", given: func(p *domain.Participant) { p.SetAlive(false) }, emote: 101, expected: OutcomeDropped},
		{name: "Muted senders wait", given: func(p *domain.Participant) { p.Mute(now.Add(time.Minute)) }, emote: 101, expected: OutcomeNotified, notice: true},
		{name: "Unknown emotes are dropped", given: func(*domain.Participant) {}, emote: 9999, expected: OutcomeDropped, spokeTime: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			pipeline, _ := newPipeline(t, domain.DefaultPolicy())
			ana, box := speaker(1, "Ana")
			tt.given(ana)

			payload := packet.EncodeTextEmote(packet.TextEmoteRequest{TextEmote: tt.emote})
			outcome := pipeline.Handle(context.Background(), ana, packet.CMsgTextEmote, payload)

			req.Equal(tt.expected, outcome)
			req.Equal(tt.notice, len(box.Notices()) == 1)
			req.Equal(tt.spokeTime, !ana.LastSpeak().IsZero())
		})
	}
}

func TestPipeline_Emote_Animation(t *testing.T) {
	req := require.New(t)
	pipeline, f := newPipeline(t, domain.DefaultPolicy())
	ana, _ := speaker(1, "Ana")

	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.proximity.EXPECT().Broadcast(gomock.Any(), ana, gomock.Any(), 25.0).
		Do(func(_ context.Context, _ *domain.Participant, frame domain.Frame, _ float64) {
			req.Equal(domain.KindEmote, frame.Kind)
			req.Equal(uint32(10), frame.EmoteID)
			req.Empty(frame.Text)
		}).Times(1)

	outcome := pipeline.Handle(context.Background(), ana, packet.CMsgEmote, packet.EncodeEmote(10))

	req.Equal(OutcomeDelivered, outcome)
}

func TestPipeline_Chat_Ignored_Tells_The_Author(t *testing.T) {
	req := require.New(t)
	pipeline, f := newPipeline(t, domain.DefaultPolicy())
	ana, _ := speaker(1, "Ana")
	bob, bobBox := speaker(2, "Bob")

	f.players.EXPECT().FindByID(domain.GUID(2)).Return(bob, true).Times(1)
	f.observer.EXPECT().OnChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// When Ana reports ignoring Bob
	payload := packet.EncodeChatIgnored(packet.ChatIgnoredRequest{Ignored: 2})
	outcome := pipeline.Handle(context.Background(), ana, packet.CMsgChatIgnored, payload)

	// Then Bob learns who ignored them
	req.Equal(OutcomeDelivered, outcome)
	frames := bobBox.Frames()
	req.Len(frames, 1)
	req.Equal(domain.KindIgnored, frames[0].Kind)
	req.Equal("Ana", frames[0].SenderName)
}

func TestPipeline_Chat_Ignored_Unknown_Author(t *testing.T) {
	req := require.New(t)
	pipeline, f := newPipeline(t, domain.DefaultPolicy())
	ana, box := speaker(1, "Ana")

	f.players.EXPECT().FindByID(domain.GUID(42)).Return(nil, false).Times(1)

	payload := packet.EncodeChatIgnored(packet.ChatIgnoredRequest{Ignored: 42})
	outcome := pipeline.Handle(context.Background(), ana, packet.CMsgChatIgnored, payload)

	req.Equal(OutcomeDropped, outcome)
	req.Empty(box.Notices())
}

func TestPipeline_Addon_Packet_Disabled(t *testing.T) {
	req := require.New(t)
	policy := domain.DefaultPolicy()
	policy.AddonChannel = false
	pipeline, _ := newPipeline(t, policy)
	ana, _ := speaker(1, "Ana")

	op, payload, err := packet.EncodeAddon(domain.AddonPayload{Type: domain.KindParty, Prefix: "DBM", Text: "pull"})
	req.NoError(err)

	req.Equal(OutcomeDropped, pipeline.Handle(context.Background(), ana, op, payload))
}

func TestOutcome_String(t *testing.T) {
	req := require.New(t)
	req.Equal("delivered", OutcomeDelivered.String())
	req.Equal("notified", OutcomeNotified.String())
	req.Equal("kicked", OutcomeKicked.String())
	req.Equal("dropped", OutcomeDropped.String())
}
