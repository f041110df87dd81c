// internal/notify/notify.go
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"police-assistant/internal/common/config"
	stderrors "police-assistant/internal/common/errors"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/models"
)

// Notifier sends a complaint acknowledgement to the complainant. Sends
// are best-effort: the complaint is already filed when this runs, so a
// delivery failure is logged and reported but never undoes the filing.
type Notifier interface {
	ComplaintAck(ctx context.Context, rec *models.ComplaintRecord, lang models.Language) error
}

// SNSService is the slice of the SNS API the notifier uses.
type SNSService interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// SESService is the slice of the SES API the notifier uses.
type SESService interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// AWSNotifier delivers acknowledgements over SNS (SMS) and SES (email),
// whichever channels are enabled.
type AWSNotifier struct {
	sns SNSService
	ses SESService
	cfg config.NotificationConfig
	log logger.Logger
}

func NewAWSNotifier(snsSvc SNSService, sesSvc SESService, cfg config.NotificationConfig, log logger.Logger) *AWSNotifier {
	return &AWSNotifier{
		sns: snsSvc,
		ses: sesSvc,
		cfg: cfg,
		log: log.WithFields(map[string]interface{}{"component": "notify"}),
	}
}

func (n *AWSNotifier) ComplaintAck(ctx context.Context, rec *models.ComplaintRecord, lang models.Language) error {
	var lastErr error

	if n.cfg.SMS.Enabled && rec.ContactNumber != "" {
		if err := n.sendSMS(ctx, rec, lang); err != nil {
			n.log.Error("complaint SMS acknowledgement failed", map[string]interface{}{
				"complaintId": rec.ID,
				"error":       err.Error(),
			})
			lastErr = err
		}
	}

	if n.cfg.Email.Enabled {
		if err := n.sendEmail(ctx, rec, lang); err != nil {
			n.log.Error("complaint email acknowledgement failed", map[string]interface{}{
				"complaintId": rec.ID,
				"error":       err.Error(),
			})
			lastErr = err
		}
	}

	if lastErr != nil {
		return stderrors.NewNotificationFailedError(lastErr)
	}
	return nil
}

func (n *AWSNotifier) sendSMS(ctx context.Context, rec *models.ComplaintRecord, lang models.Language) error {
	_, err := n.sns.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String("+91" + rec.ContactNumber),
		Message:     aws.String(ackText(rec).Get(lang)),
	})
	return err
}

func (n *AWSNotifier) sendEmail(ctx context.Context, rec *models.ComplaintRecord, lang models.Language) error {
	subject := models.Localized{
		EN: fmt.Sprintf("Complaint %s registered", rec.ID),
		TE: fmt.Sprintf("ఫిర్యాదు %s నమోదైంది", rec.ID),
	}
	_, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(n.cfg.Email.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.cfg.Email.FromEmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject.Get(lang))},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(ackText(rec).Get(lang))},
			},
		},
	})
	return err
}

func ackText(rec *models.ComplaintRecord) models.Localized {
	return models.Localized{
		EN: fmt.Sprintf(
			"Your complaint %s (%s) has been registered with AP Police. Track it with this id at your nearest police station.",
			rec.ID, rec.Category,
		),
		TE: fmt.Sprintf(
			"మీ ఫిర్యాదు %s (%s) ఏపీ పోలీస్ వద్ద నమోదైంది. ఈ ఐడీతో మీ సమీప పోలీస్ స్టేషన్‌లో ట్రాక్ చేయండి.",
			rec.ID, rec.Category,
		),
	}
}

// NopNotifier drops acknowledgements. Used when no channel is enabled.
type NopNotifier struct{}

func (NopNotifier) ComplaintAck(context.Context, *models.ComplaintRecord, models.Language) error {
	return nil
}
