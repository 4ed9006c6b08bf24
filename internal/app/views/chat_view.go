package views

import (
	"sort"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/session"
)

// BuildChatPanel composes the event chat payload. Messages arrive newest-first
// from the store and are re-sorted ascending by creation time so the panel
// always reads top to bottom chronologically, whatever order the fetch
// returned. An unresolved session disables the composer without showing the
// login prompt; only a known-anonymous session shows it.
func BuildChatPanel(sess session.Session, messages []models.Message, users map[string]models.User) *dto.ChatPanelResponse {
	ordered := make([]models.Message, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedDate.Before(ordered[j].CreatedDate)
	})

	var userID string
	if sess.IsAuthenticated() {
		userID = sess.User.ID
	}

	rendered := make([]dto.ChatMessage, 0, len(ordered))
	for _, msg := range ordered {
		chat := dto.ChatMessage{
			ID:          msg.ID,
			SenderID:    msg.SenderID,
			SenderName:  "Member",
			Initial:     "M",
			Body:        msg.Body,
			CreatedDate: msg.CreatedDate,
			Own:         userID != "" && msg.SenderID == userID,
		}
		if sender, ok := users[msg.SenderID]; ok {
			chat.SenderName = sender.DisplayName()
			chat.Initial = sender.Initial()
		}
		rendered = append(rendered, chat)
	}

	resp := &dto.ChatPanelResponse{Messages: rendered}
	switch sess.State {
	case session.StateAuthenticated:
		resp.State = dto.ChatStateIdle
		resp.CanPost = true
	case session.StateAnonymous:
		resp.State = dto.ChatStateLoggedOut
	default:
		resp.State = dto.ChatStateResolving
	}
	return resp
}
