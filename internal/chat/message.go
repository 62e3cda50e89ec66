package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitgenius/internal/profile"
)

const (
	// RoleModel matches the gateway's wire format for assistant turns.
	RoleUser  = "user"
	RoleModel = "model"
)

type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Greeting is the coach's opening message, seeded from the profile.
func Greeting(p *profile.UserProfile, now time.Time) Message {
	return Message{
		Role: RoleModel,
		Text: fmt.Sprintf(
			"Hi %s! I'm Titan, your AI coach. I see you're aiming to %s. How can I help you today?",
			p.Name, strings.ToLower(string(p.Goal)),
		),
		Timestamp: now,
	}
}
