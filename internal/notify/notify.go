// Package notify sends desktop notifications over D-Bus.
package notify

import (
	"strings"

	"github.com/llehouerou/fitbar/internal/player"
)

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // optional
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its ID. A disabled or unavailable
	// notifier returns 0 and no error.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying builds the notification shown when a track starts.
// withArt looks for a cover image next to the track.
func NowPlaying(info *player.TrackInfo, timeout int32, withArt bool) Notification {
	n := Notification{
		Title:   info.Title,
		Body:    joinNonEmpty(" · ", info.Artist, info.Album),
		Timeout: timeout,
		Urgency: UrgencyLow,
	}
	if withArt {
		n.Icon = player.FindCover(info.Path)
	}
	return n
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
