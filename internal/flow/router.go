package flow

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/itsmoein/ledgerbot/internal/domain"
	"github.com/itsmoein/ledgerbot/internal/session"
)

// PartnerDirectory is the shared counterparty name list. Implementations
// must degrade rather than fail: an unreachable directory yields an empty
// list and false appends.
type PartnerDirectory interface {
	ListNames(ctx context.Context) []string
	Add(ctx context.Context, name string) bool
	Hint(ctx context.Context, cell string) string
}

// Ledger commits a finalized draft to the external store.
type Ledger interface {
	Commit(ctx context.Context, d *domain.Draft, recordedAt time.Time) error
}

// hintCells maps each variant to the directory cell holding the last
// recorded receipt number for that variant.
var hintCells = map[domain.Variant]string{
	domain.VariantReceipt: "A2",
	domain.VariantPayment: "B2",
	domain.VariantDeal:    "C2",
}

type handlerFunc func(ctx context.Context, s *session.Session, ev Event) []Reply

// Router drives the conversation. One handler per state, collected in a
// lookup table so the state graph stays auditable.
type Router struct {
	sessions  *session.Store
	directory PartnerDirectory
	ledger    Ledger
	log       zerolog.Logger
	now       func() time.Time

	handlers map[domain.State]handlerFunc
}

// NewRouter creates a router over the given session store and adapters.
func NewRouter(sessions *session.Store, directory PartnerDirectory, ledger Ledger, log zerolog.Logger) *Router {
	r := &Router{
		sessions:  sessions,
		directory: directory,
		ledger:    ledger,
		log:       log,
		now:       time.Now,
	}
	r.handlers = map[domain.State]handlerFunc{
		domain.StateMainMenu:            r.handleMainMenu,
		domain.StateChoosingVariant:     r.handleChoosingVariant,
		domain.StateReceiptNum:          r.captureHandler(domain.FieldReceiptNum),
		domain.StatePackNum:             r.captureHandler(domain.FieldPackNum),
		domain.StateIDNum:               r.captureHandler(domain.FieldIDNum),
		domain.StatePurity:              r.captureHandler(domain.FieldPurity),
		domain.StateWeight:              r.captureHandler(domain.FieldWeight),
		domain.StateDescription:         r.captureHandler(domain.FieldDescription),
		domain.StateAmount:              r.captureHandler(domain.FieldAmount),
		domain.StateRate:                r.captureHandler(domain.FieldRate),
		domain.StateDealDirection:       r.handleDealDirection,
		domain.StateDealType:            r.handleDealType,
		domain.StatePartnerName:         r.partnerHandler(domain.FieldPartnerName, cbPartner),
		domain.StateGiverPartnerName:    r.partnerHandler(domain.FieldGiverPartner, cbGiverPartner),
		domain.StateReceiverPartnerName: r.partnerHandler(domain.FieldReceiverPartner, cbRecvPartner),
		domain.StateConfirmation:        r.handleConfirmation,
		domain.StateEditField:           r.handleEditField,
		domain.StateEditValue:           r.handleEditValue,
	}
	return r
}

// Handle processes one inbound event to completion. Events for the same
// user are serialized by the session store; events for different users
// run concurrently.
func (r *Router) Handle(ctx context.Context, ev Event) []Reply {
	var replies []Reply
	r.sessions.Do(ev.UserID, func(s *session.Session) {
		before := s.State
		replies = r.dispatch(ctx, s, ev)
		r.log.Debug().
			Int64("user_id", ev.UserID).
			Str("state", before.String()).
			Str("next", s.State.String()).
			Bool("choice", ev.IsChoice()).
			Msg("Handled event")
	})
	return replies
}

func (r *Router) dispatch(ctx context.Context, s *session.Session, ev Event) []Reply {
	// Reserved commands preempt every field capture: the in-progress
	// value is abandoned, never written. The menu keyboard carries the
	// commands as button data, so they arrive as either event kind.
	cmd := ev.Text
	if ev.IsChoice() {
		cmd = ev.Choice
	}
	if isMenuCommand(cmd) {
		return r.handleMenuCommand(ctx, s, cmd)
	}

	h, ok := r.handlers[s.State]
	if !ok {
		r.log.Error().Int64("user_id", s.UserID).Str("state", s.State.String()).Msg("No handler for state")
		s.Reset()
		return []Reply{{Text: msgWelcome, Choices: mainMenuChoices()}}
	}
	return h(ctx, s, ev)
}

func (r *Router) handleMenuCommand(ctx context.Context, s *session.Session, text string) []Reply {
	switch text {
	case CmdNew:
		return r.startTransaction(s)
	case CmdCancel, SlashCancel:
		s.Reset()
		return []Reply{{Text: msgCancelled, Choices: mainMenuChoices()}}
	case CmdHome:
		s.Reset()
		return []Reply{{Text: msgWentHome, Choices: mainMenuChoices()}}
	default: // CmdStart, SlashStart
		s.Reset()
		return []Reply{{Text: msgWelcome, Choices: mainMenuChoices()}}
	}
}

func (r *Router) handleMainMenu(ctx context.Context, s *session.Session, ev Event) []Reply {
	// Reserved commands were handled in dispatch; anything else is an
	// input we cannot use.
	return []Reply{{Text: msgPickOption, Choices: mainMenuChoices()}}
}

// startTransaction discards any in-flight draft and opens the variant
// menu.
func (r *Router) startTransaction(s *session.Session) []Reply {
	s.Reset()
	s.State = domain.StateChoosingVariant
	return []Reply{{Text: msgPickVariant, Choices: variantChoices()}}
}

func (r *Router) handleChoosingVariant(ctx context.Context, s *session.Session, ev Event) []Reply {
	key, ok := payload(ev, cbVariant)
	if !ok {
		return []Reply{{Text: msgPickVariant, Choices: variantChoices()}}
	}
	variant, ok := domain.VariantFromKey(key)
	if !ok {
		return []Reply{{Text: msgPickVariant, Choices: variantChoices()}}
	}

	s.Draft = domain.NewDraft(variant, civil.DateOf(r.now()))
	r.log.Info().Int64("user_id", s.UserID).Str("variant", string(variant)).Msg("Transaction started")

	if variant == domain.VariantTransfer {
		s.State = domain.StateDealType
		return []Reply{{Text: msgAskBillType, Choices: dealTypeChoices(cbDealType)}}
	}

	s.State = domain.StateReceiptNum
	prompt := msgAskReceiptNum
	// Best effort: show the last recorded receipt number next to the ask.
	if hint := r.directory.Hint(ctx, hintCells[variant]); hint != "" {
		prompt = msgLastReceiptHint(hint)
	}
	return []Reply{{Text: prompt}}
}

// payload extracts a choice payload value for the given prefix.
func payload(ev Event, prefix string) (string, bool) {
	if !ev.IsChoice() || len(ev.Choice) <= len(prefix) || ev.Choice[:len(prefix)] != prefix {
		return "", false
	}
	return ev.Choice[len(prefix):], true
}
