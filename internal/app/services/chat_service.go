package services

import (
	"context"
	"strings"
	gosync "sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/app/views"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/sync"
)

// ChatService defines the interface for event chat operations
type ChatService interface {
	Panel(ctx context.Context, sess session.Session, eventID string) (*dto.ChatPanelResponse, error)
	Send(ctx context.Context, sess session.Session, eventID, body string) (*models.Message, error)
}

type chatServiceImpl struct {
	repos        *repositories.Repositories
	syncer       *sync.Syncer
	pollInterval time.Duration
	logger       zerolog.Logger
}

// NewChatService creates a new ChatService. pollInterval is the thread's
// refresh cadence; the panel's perceived liveness contract is this interval,
// so it is configured, not hardcoded, and stays a poll rather than a push.
func NewChatService(repos *repositories.Repositories, syncer *sync.Syncer, pollInterval time.Duration, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		repos:        repos,
		syncer:       syncer,
		pollInterval: pollInterval,
		logger:       logger.With().Str("service", "chat").Logger(),
	}
}

type chatData struct {
	Messages []models.Message
	Users    map[string]models.User
}

// Panel returns the chat panel payload for the event's thread.
func (s *chatServiceImpl) Panel(ctx context.Context, sess session.Session, eventID string) (*dto.ChatPanelResponse, error) {
	key := KeyChat(eventID)
	s.syncer.Register(sync.Binding{
		Key:      key,
		Interval: s.pollInterval,
		Fetch: func(ctx context.Context) (interface{}, error) {
			return s.fetchThread(ctx, eventID)
		},
	})

	result, ok := s.syncer.Get(key)
	if !ok {
		value, err := s.syncer.Refresh(ctx, key)
		if err != nil {
			return nil, err
		}
		result = sync.Result{Value: value, FetchedAt: time.Now()}
	}

	data := result.Value.(*chatData)
	resp := views.BuildChatPanel(sess, data.Messages, data.Users)
	resp.RefreshedAt = result.FetchedAt
	return resp, nil
}

// Send posts one message to the event's thread. The body is trimmed first; a
// body that trims to nothing is dropped without a store call or an error, and
// sending requires a resolved identity, never an assumed one.
func (s *chatServiceImpl) Send(ctx context.Context, sess session.Session, eventID, body string) (*models.Message, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, nil
	}
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("sending a message requires signing in")
	}

	created, err := s.repos.MessageRepository.Create(ctx, &models.Message{
		ThreadID:   eventID,
		ThreadType: models.ThreadTypeEvent,
		SenderID:   sess.User.ID,
		Body:       trimmed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("messageID", created.ID).Str("eventID", eventID).Msg("Message sent")
	s.syncer.Invalidate(KeyChat(eventID))
	return created, nil
}

// fetchThread loads the thread and the user directory together; the two
// fetches run concurrently and neither waits on the other.
func (s *chatServiceImpl) fetchThread(ctx context.Context, eventID string) (interface{}, error) {
	data := &chatData{}
	var wg gosync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data.Messages, errs[0] = s.repos.MessageRepository.ListThread(ctx, eventID, models.ThreadTypeEvent)
	}()
	go func() {
		defer wg.Done()
		data.Users, errs[1] = s.repos.UserRepository.Directory(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
