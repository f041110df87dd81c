// internal/assistant/composer/composer.go
package composer

import (
	"context"
	"errors"
	"fmt"

	"police-assistant/internal/assistant/memory"
	"police-assistant/internal/assistant/search"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/models"
	"police-assistant/internal/records"
)

// RecordStore is the slice of the record store the composer reads.
type RecordStore interface {
	FindByNumber(ctx context.Context, caseNumber string) (*models.CaseRecord, error)
	VerifyAccess(ctx context.Context, caseNumber, phone string) (bool, error)
	StatsByLocation(ctx context.Context, location string) ([]models.CrimeStat, error)
}

// Composer turns a parsed query plus session context into the final
// bilingual response text. Lookup misses and search failures degrade to
// templated answers; Compose itself never returns an error.
type Composer struct {
	store    RecordStore
	provider search.Provider
	log      logger.Logger
}

func New(store RecordStore, provider search.Provider, log logger.Logger) *Composer {
	return &Composer{
		store:    store,
		provider: provider,
		log:      log.WithFields(map[string]interface{}{"component": "composer"}),
	}
}

func (c *Composer) Compose(ctx context.Context, sess *memory.Session, parsed models.ParsedQuery, lang models.Language, originalText string) string {
	contextPrefix := c.contextPrefix(sess, lang, originalText)
	results := c.searchIfUseful(ctx, parsed.Intent, lang, originalText)
	userCtx := sess.Context()

	switch parsed.Intent {
	case models.IntentGreeting:
		return greetingText(lang, userCtx.SessionData.TotalUserQueries+1)

	case models.IntentHelp:
		return helpText(lang)

	case models.IntentFIRStatus:
		return c.composeCaseStatus(ctx, parsed.Entities, userCtx, lang)

	case models.IntentCrimeStats:
		return c.composeCrimeStats(ctx, parsed.Entities.Location, contextPrefix, results, lang)

	case models.IntentFileFIR:
		return fileFIRText(lang)

	case models.IntentEmergency:
		return emergencyText(lang)

	case models.IntentPoliceContact:
		return policeContactText(lang)

	default:
		// file_complaint, traffic_rules, lost_documents, and general
		// queries all share the guidance template, enriched with the top
		// search result when one exists.
		if len(results) > 0 {
			top := results[0]
			intro := models.Localized{
				EN: "I found some relevant information about your query:",
				TE: "మీ ప్రశ్నకు సంబంధించిన కొంత సమాచారం నేను కనుగొన్నాను:",
			}.Get(lang)
			return fmt.Sprintf("%s\n\n📖 **%s**\n%s\n\n%s", intro, top.Title, top.Snippet, defaultText(lang))
		}
		return contextPrefix + defaultText(lang)
	}
}

// contextPrefix recalls earlier discussion when the query points back at
// it; otherwise empty.
func (c *Composer) contextPrefix(sess *memory.Session, lang models.Language, originalText string) string {
	if !sess.ShouldReferToPrevious(originalText) {
		return ""
	}
	history := sess.RelevantHistory(originalText)
	if len(history) == 0 {
		return ""
	}
	return models.Localized{
		EN: fmt.Sprintf("Based on our previous discussion:\n%s\n\n", history[0]),
		TE: fmt.Sprintf("మా మునుపటి చర్చ ఆధారంగా:\n%s\n\n", history[0]),
	}.Get(lang)
}

// searchIfUseful runs search augmentation for queries that earn it. Any
// provider error degrades to no results.
func (c *Composer) searchIfUseful(ctx context.Context, in models.Intent, lang models.Language, originalText string) []models.SearchResult {
	if c.provider == nil || !search.IsSearchable(originalText, in) {
		return nil
	}
	results, err := c.provider.Search(ctx, originalText, lang)
	if err != nil {
		c.log.Warn("search augmentation degraded", map[string]interface{}{
			"intent": string(in),
			"error":  err.Error(),
		})
		return nil
	}
	return results
}

func (c *Composer) composeCaseStatus(ctx context.Context, entities models.Entities, userCtx models.ConversationContext, lang models.Language) string {
	caseNumber := entities.CaseNumber
	if caseNumber == "" {
		return askCaseNumberText(lang)
	}

	rec, err := c.store.FindByNumber(ctx, caseNumber)
	if err == nil {
		body := caseFoundText(lang, rec)
		if entities.PhoneNumber != "" {
			body += c.verificationNote(ctx, rec.CaseNumber, entities.PhoneNumber, lang)
		}
		return body
	}
	if !errors.Is(err, records.ErrNotFound) {
		c.log.Error("case lookup failed, answering as not found", map[string]interface{}{
			"caseNumber": caseNumber,
			"error":      err.Error(),
		})
	}

	// Offer the most recent other case the user asked about before.
	var previousCase string
	for _, prev := range userCtx.UserProfile.PreviousCaseNumbers {
		if prev != caseNumber {
			previousCase = prev
			break
		}
	}
	return caseNotFoundText(lang, caseNumber, previousCase)
}

// verificationNote checks the supplied phone number against the
// complainant on record. Verification errors are reported as a mismatch
// rather than blocking the status answer.
func (c *Composer) verificationNote(ctx context.Context, caseNumber, phone string, lang models.Language) string {
	ok, err := c.store.VerifyAccess(ctx, caseNumber, phone)
	if err != nil {
		c.log.Warn("access verification failed", map[string]interface{}{
			"caseNumber": caseNumber,
			"error":      err.Error(),
		})
	}
	if ok {
		return models.Localized{
			EN: "\n\n✅ Phone number verified against the complainant on record.",
			TE: "\n\n✅ ఫోన్ నంబర్ రికార్డులోని ఫిర్యాదుదారుతో ధృవీకరించబడింది.",
		}.Get(lang)
	}
	return models.Localized{
		EN: "\n\n⚠️ The phone number you shared does not match the complainant on record.",
		TE: "\n\n⚠️ మీరు ఇచ్చిన ఫోన్ నంబర్ రికార్డులోని ఫిర్యాదుదారుతో సరిపోలడం లేదు.",
	}.Get(lang)
}

func (c *Composer) composeCrimeStats(ctx context.Context, location, contextPrefix string, results []models.SearchResult, lang models.Language) string {
	if location != "" {
		stats, err := c.store.StatsByLocation(ctx, location)
		if err != nil {
			c.log.Error("stats lookup failed, falling back to city prompt", map[string]interface{}{
				"location": location,
				"error":    err.Error(),
			})
		}
		if len(stats) > 0 {
			body := contextPrefix + statsText(lang, location, stats)
			if len(results) > 0 {
				body += models.Localized{
					EN: fmt.Sprintf("\n\n**Latest Updates:**\n%s", results[0].Snippet),
					TE: fmt.Sprintf("\n\n**తాజా అప్‌డేట్‌లు:**\n%s", results[0].Snippet),
				}.Get(lang)
			}
			return body
		}
	}

	body := contextPrefix + pickCityText(lang)
	if len(results) > 0 {
		body += models.Localized{
			EN: fmt.Sprintf("\n\n**Latest Information:**\n%s\n\nSource: %s", results[0].Snippet, results[0].Title),
			TE: fmt.Sprintf("\n\n**తాజా సమాచారం:**\n%s\n\nమూలం: %s", results[0].Snippet, results[0].Title),
		}.Get(lang)
	}
	return body
}
