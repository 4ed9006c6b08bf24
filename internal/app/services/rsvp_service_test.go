package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
)

func TestRSVPPreCheckIssuesNoCreate(t *testing.T) {
	svc, fs := newTestServices(t)
	fs.seed("RSVP", map[string]interface{}{"id": "r1", "event_id": "e1", "user_id": "u1", "status": "going"})

	rsvp, err := svc.RSVPService.RSVP(context.Background(), fighterSession("u1"), "e1", &dto.RSVPRequest{Status: "going"})
	require.NoError(t, err)
	assert.Equal(t, "r1", rsvp.ID, "the existing RSVP is returned")
	assert.Equal(t, 0, fs.createCount("RSVP"), "a duplicate RSVP must not issue a create")
}

func TestRSVPCreatesWhenNoneExists(t *testing.T) {
	svc, fs := newTestServices(t)
	fs.seed("RSVP", map[string]interface{}{"id": "r1", "event_id": "other", "user_id": "u1", "status": "going"})

	rsvp, err := svc.RSVPService.RSVP(context.Background(), fighterSession("u1"), "e1", &dto.RSVPRequest{Status: "maybe"})
	require.NoError(t, err)
	assert.Equal(t, "e1", rsvp.EventID)
	assert.Equal(t, models.RSVPMaybe, rsvp.Status)
	assert.Equal(t, models.RoleFighter, rsvp.RoleAtEvent, "role defaults to the user's league role")
	assert.Equal(t, 1, fs.createCount("RSVP"))
}

func TestRSVPRequiresResolvedIdentity(t *testing.T) {
	svc, fs := newTestServices(t)

	_, err := svc.RSVPService.RSVP(context.Background(), anonymousSession(), "e1", &dto.RSVPRequest{Status: "going"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthenticated))
	assert.Equal(t, 0, fs.createCount("RSVP"))
}

func TestRSVPRejectsUnknownStatus(t *testing.T) {
	svc, fs := newTestServices(t)

	_, err := svc.RSVPService.RSVP(context.Background(), fighterSession("u1"), "e1", &dto.RSVPRequest{Status: "attending"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, 0, fs.createCount("RSVP"))
}
