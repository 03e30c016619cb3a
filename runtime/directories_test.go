package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"world-chat/domain"
)

func TestChannelManager_Names_Are_Case_Insensitive_Per_Faction(t *testing.T) {
	req := require.New(t)
	manager := NewChannelManager(false)

	trade := manager.Open(domain.TeamAlliance, "Trade")

	found, ok := manager.Channel(domain.TeamAlliance, "trade", nil)
	req.True(ok)
	req.Same(trade, found)
	req.Same(trade, manager.Open(domain.TeamAlliance, "TRADE"))

	// The other faction has its own channels
	_, ok = manager.Channel(domain.TeamHorde, "Trade", nil)
	req.False(ok)
}

func TestChannelManager_Cross_Faction(t *testing.T) {
	req := require.New(t)
	manager := NewChannelManager(true)

	world := manager.Open(domain.TeamAlliance, "world")

	found, ok := manager.Channel(domain.TeamHorde, "World", nil)
	req.True(ok)
	req.Same(world, found)
}

func TestGuildRoster(t *testing.T) {
	req := require.New(t)
	roster := NewGuildRoster()
	roster.Register(domain.NewGuild(7, "Knights"))

	guild, ok := roster.GuildByID(7)
	req.True(ok)
	req.Equal("Knights", guild.Name)

	_, ok = roster.GuildByID(8)
	req.False(ok)
}

func TestZoneBroadcaster_Range_And_Map(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	zone := NewZoneBroadcaster(registry, log)

	ana, anaBox := speaker(1, "Ana")
	near, nearBox := speaker(2, "Near")
	far, farBox := speaker(3, "Far")
	elsewhere, elsewhereBox := speaker(4, "Elsewhere")
	rude, rudeBox := speaker(5, "Rude")
	for _, p := range []*domain.Participant{ana, near, far, elsewhere, rude} {
		req.NoError(registry.Subscribe(p))
	}
	rude.Ignore(ana.ID)

	// Given listeners spread around Ana
	zone.Move(ana.ID, Position{MapID: 1, X: 0, Y: 0})
	zone.Move(near.ID, Position{MapID: 1, X: 3, Y: 4})
	zone.Move(far.ID, Position{MapID: 1, X: 30, Y: 40})
	zone.Move(elsewhere.ID, Position{MapID: 2, X: 0, Y: 0})
	zone.Move(rude.ID, Position{MapID: 1, X: 1, Y: 1})

	// When Ana says something with a 25 yards range
	frame := domain.NewFrame(domain.KindSay, domain.LangCommon, ana, "hello", time.Now())
	zone.Broadcast(context.Background(), ana, frame, 25)

	// Then only listeners on the same map within range hear it, Ana included
	req.Len(anaBox.Frames(), 1)
	req.Len(nearBox.Frames(), 1)
	req.Empty(farBox.Frames())
	req.Empty(elsewhereBox.Frames())
	req.Empty(rudeBox.Frames())

	// And a forgotten listener no longer stands next to Ana
	zone.Forget(near.ID)
	zone.Broadcast(context.Background(), ana, frame, 25)
	req.Len(nearBox.Frames(), 1)
	req.Len(anaBox.Frames(), 2)
}
