// internal/assistant/service.go
package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"police-assistant/internal/assistant/composer"
	"police-assistant/internal/assistant/intent"
	"police-assistant/internal/assistant/memory"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/common/metrics"
	"police-assistant/internal/common/observability"
	"police-assistant/internal/models"
	"police-assistant/internal/notify"
	"police-assistant/internal/records"
)

// Reply is the outcome of one conversation turn.
type Reply struct {
	MessageID  string          `json:"messageId"`
	Text       string          `json:"text"`
	Intent     models.Intent   `json:"intent"`
	Confidence float64         `json:"confidence"`
	Entities   models.Entities `json:"entities"`
}

// Service is the conversation core's caller boundary: it runs the
// classify, recall, compose cycle for chat turns and files complaints.
// A turn never fails outward; any composition panic or error degrades to
// the fixed bilingual apology.
type Service struct {
	sessions   *memory.Store
	snapshots  *memory.SnapshotStore
	composer   *composer.Composer
	complaints records.ComplaintStore
	notifier   notify.Notifier
	obs        *observability.Observability
	log        logger.Logger
}

type Options struct {
	Sessions   *memory.Store
	Snapshots  *memory.SnapshotStore // optional
	Composer   *composer.Composer
	Complaints records.ComplaintStore
	Notifier   notify.Notifier
	Obs        *observability.Observability
	Logger     logger.Logger
}

func NewService(opts Options) *Service {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Service{
		sessions:   opts.Sessions,
		snapshots:  opts.Snapshots,
		composer:   opts.Composer,
		complaints: opts.Complaints,
		notifier:   notifier,
		obs:        opts.Obs,
		log:        opts.Logger.WithFields(map[string]interface{}{"component": "assistant"}),
	}
}

// Respond runs one conversation turn: parse the text, compose a response
// against the session's memory, then record the exchange.
func (s *Service) Respond(ctx context.Context, sessionID, text string, lang models.Language) *Reply {
	start := time.Now()
	if !lang.Valid() {
		lang = models.LangEnglish
	}

	if s.snapshots != nil && !s.sessions.Has(sessionID) {
		s.RestoreSession(ctx, sessionID)
	}
	sess := s.sessions.Get(sessionID, lang)
	parsed := intent.Parse(text)

	responseText := s.composeSafe(ctx, sess, parsed, lang, text)

	now := time.Now()
	sess.AddMessage(models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: now,
		Language:  lang,
		Intent:    parsed.Intent,
		Entities:  &parsed.Entities,
	})
	reply := &Reply{
		MessageID:  uuid.NewString(),
		Text:       responseText,
		Intent:     parsed.Intent,
		Confidence: parsed.Confidence,
		Entities:   parsed.Entities,
	}
	sess.AddMessage(models.Message{
		ID:        reply.MessageID,
		Text:      responseText,
		Sender:    models.SenderBot,
		Timestamp: now,
		Language:  lang,
	})

	s.snapshot(ctx, sessionID, sess)

	metrics.QueriesProcessed.WithLabelValues(string(parsed.Intent), string(lang)).Inc()
	metrics.QueryDuration.WithLabelValues(string(parsed.Intent)).Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordQueryProcessed(ctx, string(parsed.Intent))
		s.obs.RecordQueryDuration(ctx, time.Since(start), string(parsed.Intent))
	}
	return reply
}

// composeSafe shields the turn from composition bugs: a panic becomes the
// apology response.
func (s *Service) composeSafe(ctx context.Context, sess *memory.Session, parsed models.ParsedQuery, lang models.Language, text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("composition panicked, serving apology", map[string]interface{}{
				"intent": string(parsed.Intent),
				"panic":  r,
			})
			metrics.FallbackResponses.Inc()
			out = composer.ApologyText(lang)
		}
	}()
	return s.composer.Compose(ctx, sess, parsed, lang, text)
}

// ClearSession wipes a session's memory and drops its snapshot.
func (s *Service) ClearSession(ctx context.Context, sessionID string) {
	s.sessions.Clear(sessionID)
	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, sessionID); err != nil {
			s.log.Warn("session snapshot delete failed", map[string]interface{}{
				"sessionId": sessionID,
				"error":     err.Error(),
			})
		}
	}
}

// RestoreSession loads a persisted session snapshot, if one exists.
func (s *Service) RestoreSession(ctx context.Context, sessionID string) bool {
	if s.snapshots == nil {
		return false
	}
	cctx, ok, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		s.log.Warn("session snapshot load failed", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return false
	}
	if !ok {
		return false
	}
	s.sessions.Restore(sessionID, cctx)
	return true
}

// FileComplaint registers a complaint and sends a best-effort
// acknowledgement. The complaint stands even when the acknowledgement
// cannot be delivered.
func (s *Service) FileComplaint(ctx context.Context, category models.ComplaintCategory, description, location, contact string, lang models.Language) (*models.ComplaintRecord, error) {
	rec, err := s.complaints.Create(ctx, category, description, location, contact)
	if err != nil {
		return nil, err
	}
	metrics.ComplaintsFiled.WithLabelValues(string(category)).Inc()

	if err := s.notifier.ComplaintAck(ctx, rec, lang); err != nil {
		s.log.Warn("complaint acknowledgement not delivered", map[string]interface{}{
			"complaintId": rec.ID,
			"error":       err.Error(),
		})
	}
	return rec, nil
}

func (s *Service) snapshot(ctx context.Context, sessionID string, sess *memory.Session) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, sessionID, sess.Context()); err != nil {
		s.log.Warn("session snapshot save failed", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
	}
}
