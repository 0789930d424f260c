package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/logging"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/dmitrijs2005/tunedeck/internal/server/queue"
	"github.com/google/uuid"
)

// ExportService validates export requests and hands them to the job queue.
// It never reads playlist contents: the consumer resolves the current song
// list at processing time, so an export reflects state at consumption, not
// at request.
type ExportService struct {
	access    *AccessService
	publisher queue.Publisher
	queueName string
	logger    logging.Logger
}

// NewExportService builds an ExportService publishing to queueName.
func NewExportService(access *AccessService, publisher queue.Publisher, queueName string, logger logging.Logger) *ExportService {
	return &ExportService{
		access:    access,
		publisher: publisher,
		queueName: queueName,
		logger:    logger.With("module", "exports"),
	}
}

// RequestExport publishes an export job for the playlist and returns the
// job identifier. Requires at least collaborator access. A failed publish
// surfaces common.ErrDispatch and leaves no residue, so the caller may
// safely retry.
func (s *ExportService) RequestExport(ctx context.Context, userID, playlistID, targetAddress string) (string, error) {
	if err := s.access.RequireAtLeast(ctx, models.LevelCollaborator, userID, playlistID); err != nil {
		return "", err
	}

	job := models.ExportJob{
		ID:            uuid.NewString(),
		PlaylistID:    playlistID,
		RequestedBy:   userID,
		TargetAddress: targetAddress,
		RequestedAt:   time.Now().UTC(),
	}

	body, err := json.Marshal(job)
	if err != nil {
		return "", common.ErrInternal
	}

	if err := s.publisher.Publish(ctx, s.queueName, body); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "export job published", "job_id", job.ID, "playlist_id", playlistID)
	return job.ID, nil
}
