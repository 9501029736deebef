package flow

import (
	"context"

	"github.com/itsmoein/ledgerbot/internal/digits"
	"github.com/itsmoein/ledgerbot/internal/domain"
	"github.com/itsmoein/ledgerbot/internal/schema"
	"github.com/itsmoein/ledgerbot/internal/session"
	"github.com/itsmoein/ledgerbot/internal/summary"
)

// captureHandler builds the transition for a plain free-text field state:
// normalize when numeric, write into the draft, advance along the
// variant's path.
func (r *Router) captureHandler(field domain.FieldKey) handlerFunc {
	return func(ctx context.Context, s *session.Session, ev Event) []Reply {
		if s.Draft == nil {
			return r.recover(s)
		}
		if ev.IsChoice() {
			// No buttons are offered in this state; stale presses are
			// dropped.
			return nil
		}

		value := ev.Text
		if schema.Numeric(field) {
			value = digits.Normalize(value)
		}
		if err := s.Draft.Set(field, value); err != nil {
			r.log.Error().Err(err).Int64("user_id", s.UserID).Msg("Rejected field write")
			return r.recover(s)
		}
		return r.afterField(ctx, s, field)
	}
}

// afterField advances to the state following the just-captured field on
// the draft's path.
func (r *Router) afterField(ctx context.Context, s *session.Session, field domain.FieldKey) []Reply {
	switch field {
	case domain.FieldReceiptNum:
		switch s.Draft.Variant {
		case domain.VariantReceipt:
			s.State = domain.StatePackNum
			return []Reply{{Text: msgAskPackNum}}
		case domain.VariantPayment:
			s.State = domain.StatePurity
			return []Reply{{Text: msgAskPurity}}
		default: // deal
			s.State = domain.StateDealDirection
			return []Reply{{Text: msgAskDirection, Choices: directionChoices(cbDealDirection)}}
		}
	case domain.FieldPackNum:
		s.State = domain.StateIDNum
		return []Reply{{Text: msgAskIDNum}}
	case domain.FieldIDNum:
		s.State = domain.StatePurity
		return []Reply{{Text: msgAskPurity}}
	case domain.FieldPurity:
		s.State = domain.StateWeight
		return []Reply{{Text: msgAskWeight}}
	case domain.FieldWeight:
		return r.promptPartner(ctx, s, domain.FieldPartnerName)
	case domain.FieldAmount:
		if s.Draft.Variant == domain.VariantDeal {
			s.State = domain.StateRate
			return []Reply{{Text: msgAskRate}}
		}
		return r.promptPartner(ctx, s, domain.FieldGiverPartner)
	case domain.FieldRate:
		return r.promptPartner(ctx, s, domain.FieldPartnerName)
	case domain.FieldDescription:
		return r.confirmationReply(s)
	default:
		return r.recover(s)
	}
}

func (r *Router) handleDealDirection(ctx context.Context, s *session.Session, ev Event) []Reply {
	if s.Draft == nil {
		return r.recover(s)
	}
	direction, ok := payload(ev, cbDealDirection)
	if !ok {
		return []Reply{{Text: msgAskDirection, Choices: directionChoices(cbDealDirection)}}
	}
	if err := s.Draft.Set(domain.FieldDealDirection, direction); err != nil {
		return r.recover(s)
	}
	s.State = domain.StateDealType
	return []Reply{{Text: msgAskDealType, Choices: dealTypeChoices(cbDealType)}}
}

func (r *Router) handleDealType(ctx context.Context, s *session.Session, ev Event) []Reply {
	if s.Draft == nil {
		return r.recover(s)
	}
	dealType, ok := payload(ev, cbDealType)
	if !ok {
		prompt := msgAskDealType
		if s.Draft.Variant == domain.VariantTransfer {
			prompt = msgAskBillType
		}
		return []Reply{{Text: prompt, Choices: dealTypeChoices(cbDealType)}}
	}
	if err := s.Draft.Set(domain.FieldDealType, dealType); err != nil {
		return r.recover(s)
	}
	s.State = domain.StateAmount
	return []Reply{{Text: msgAskAmount(dealType)}}
}

// promptPartner moves the session into a partner-capture state. With a
// reachable directory the user picks from the known names or asks to add
// a new one; otherwise capture degrades to free text.
func (r *Router) promptPartner(ctx context.Context, s *session.Session, field domain.FieldKey) []Reply {
	s.State = partnerState(field)
	s.PendingNewPartner = false

	title := partnerTitle(field)
	names := r.directory.ListNames(ctx)
	if len(names) == 0 {
		return []Reply{{Text: title + " را وارد کنید:"}}
	}
	return []Reply{{
		Text:    title + " را انتخاب کنید یا نام جدید اضافه کنید:",
		Choices: partnerChoices(names, partnerPrefix(field)),
	}}
}

// partnerHandler builds the transition for one partner-valued field: a
// button press selects an existing name or requests free-text entry of a
// new one; free text names a new partner which is also offered to the
// directory.
func (r *Router) partnerHandler(field domain.FieldKey, prefix string) handlerFunc {
	return func(ctx context.Context, s *session.Session, ev Event) []Reply {
		if s.Draft == nil {
			return r.recover(s)
		}

		if ev.IsChoice() {
			selection, ok := payload(ev, prefix)
			if !ok {
				return nil
			}
			if selection == addNewSentinel {
				s.PendingNewPartner = true
				return []Reply{{Text: msgAskNewPartner(partnerTitle(field))}}
			}
			if err := s.Draft.Set(field, selection); err != nil {
				return r.recover(s)
			}
			return r.afterPartner(ctx, s, field)
		}

		name := ev.Text
		if err := s.Draft.Set(field, name); err != nil {
			return r.recover(s)
		}
		requested := s.PendingNewPartner
		s.PendingNewPartner = false

		// A typed name is always offered to the shared directory and the
		// conversation advances no matter the outcome. The notice is
		// shown only when the user explicitly asked for the addition.
		var replies []Reply
		if added := r.directory.Add(ctx, name); added && requested {
			replies = append(replies, Reply{Text: msgPartnerAdded(name)})
		}
		return append(replies, r.afterPartner(ctx, s, field)...)
	}
}

func (r *Router) afterPartner(ctx context.Context, s *session.Session, field domain.FieldKey) []Reply {
	if field == domain.FieldGiverPartner {
		return r.promptPartner(ctx, s, domain.FieldReceiverPartner)
	}
	s.State = domain.StateDescription
	return []Reply{{Text: msgAskDescription}}
}

func (r *Router) handleConfirmation(ctx context.Context, s *session.Session, ev Event) []Reply {
	if s.Draft == nil {
		return r.recover(s)
	}

	switch ev.Choice {
	case cbConfirm:
		var result string
		if err := r.ledger.Commit(ctx, s.Draft, r.now()); err != nil {
			r.log.Error().Err(err).Int64("user_id", s.UserID).Msg("Commit failed")
			result = msgCommitFailed(err)
		} else {
			result = msgCommitOK
		}
		s.Reset()
		return []Reply{
			{Text: result},
			{Text: msgBackToMenu, Choices: mainMenuChoices()},
		}
	case cbEdit:
		s.State = domain.StateEditField
		return []Reply{{Text: msgAskEditField, Choices: editFieldChoices(s.Draft.Variant)}}
	case cbCancel:
		s.Reset()
		return []Reply{
			{Text: msgTxCancelled},
			{Text: msgBackToMenu, Choices: mainMenuChoices()},
		}
	default:
		return r.confirmationReply(s)
	}
}

func (r *Router) handleEditField(ctx context.Context, s *session.Session, ev Event) []Reply {
	if s.Draft == nil {
		return r.recover(s)
	}

	if ev.Choice == cbBackToConfirm {
		return r.confirmationReply(s)
	}

	// Enumerated fields resolve their new value inline from this state.
	if value, ok := payload(ev, cbEditValue); ok {
		if s.Edit == nil {
			return r.confirmationReply(s)
		}
		if err := s.Draft.Set(s.Edit.Field, value); err != nil {
			return r.recover(s)
		}
		return r.confirmationReply(s)
	}

	key, ok := payload(ev, cbEditField)
	if !ok {
		return []Reply{{Text: msgAskEditField, Choices: editFieldChoices(s.Draft.Variant)}}
	}
	field := domain.FieldKey(key)
	if !domain.Reachable(s.Draft.Variant, field) {
		return []Reply{{Text: msgAskEditField, Choices: editFieldChoices(s.Draft.Variant)}}
	}

	s.Edit = &session.EditContext{Field: field, Return: domain.StateConfirmation}

	switch field {
	case domain.FieldDealDirection:
		return []Reply{{Text: msgPickEditValue(field), Choices: directionChoices(cbEditValue)}}
	case domain.FieldDealType:
		return []Reply{{Text: msgPickEditValue(field), Choices: dealTypeChoices(cbEditValue)}}
	default:
		s.State = domain.StateEditValue
		return []Reply{{Text: msgAskEditValue(field)}}
	}
}

func (r *Router) handleEditValue(ctx context.Context, s *session.Session, ev Event) []Reply {
	if s.Draft == nil || s.Edit == nil {
		return r.recover(s)
	}
	if ev.IsChoice() {
		return nil
	}

	value := ev.Text
	if schema.Numeric(s.Edit.Field) {
		value = digits.Normalize(value)
	}
	if err := s.Draft.Set(s.Edit.Field, value); err != nil {
		return r.recover(s)
	}
	// Back to confirmation unconditionally: an edit never resumes the
	// original capture path.
	return r.confirmationReply(s)
}

// confirmationReply renders the summary and arms the confirmation
// keyboard.
func (r *Router) confirmationReply(s *session.Session) []Reply {
	s.State = domain.StateConfirmation
	s.Edit = nil
	return []Reply{{Text: summary.Render(s.Draft), Choices: confirmChoices()}}
}

// recover handles sessions whose state no longer matches their data, e.g.
// a capture state without a draft. The session restarts at the menu.
func (r *Router) recover(s *session.Session) []Reply {
	r.log.Warn().Int64("user_id", s.UserID).Str("state", s.State.String()).Msg("Resetting inconsistent session")
	s.Reset()
	return []Reply{{Text: msgWelcome, Choices: mainMenuChoices()}}
}

func partnerState(field domain.FieldKey) domain.State {
	switch field {
	case domain.FieldGiverPartner:
		return domain.StateGiverPartnerName
	case domain.FieldReceiverPartner:
		return domain.StateReceiverPartnerName
	default:
		return domain.StatePartnerName
	}
}

func partnerPrefix(field domain.FieldKey) string {
	switch field {
	case domain.FieldGiverPartner:
		return cbGiverPartner
	case domain.FieldReceiverPartner:
		return cbRecvPartner
	default:
		return cbPartner
	}
}
