package domain

// State identifies where a session currently is in the conversation graph.
type State int

const (
	// StateMainMenu is the initial and terminal state.
	StateMainMenu State = iota
	// StateChoosingVariant awaits the transaction type selection.
	StateChoosingVariant
	// StateReceiptNum awaits the receipt (document) number.
	StateReceiptNum
	// StatePackNum awaits the pack number (Receipt only).
	StatePackNum
	// StateIDNum awaits the assay name (Receipt only).
	StateIDNum
	// StatePurity awaits the purity value.
	StatePurity
	// StateWeight awaits the weight value.
	StateWeight
	// StatePartnerName awaits the counterparty selection or free text.
	StatePartnerName
	// StateDealDirection awaits Buy/Sell (Deal only).
	StateDealDirection
	// StateDealType awaits the deal unit (Deal and Transfer).
	StateDealType
	// StateAmount awaits the amount.
	StateAmount
	// StateRate awaits the rate (Deal only).
	StateRate
	// StateGiverPartnerName awaits the paying counterparty (Transfer only).
	StateGiverPartnerName
	// StateReceiverPartnerName awaits the receiving counterparty (Transfer only).
	StateReceiverPartnerName
	// StateDescription awaits the optional description, always last.
	StateDescription
	// StateConfirmation shows the summary and awaits confirm/edit/cancel.
	StateConfirmation
	// StateEditField awaits the choice of which field to edit.
	StateEditField
	// StateEditValue awaits the replacement value for the chosen field.
	StateEditValue
)

var stateNames = map[State]string{
	StateMainMenu:            "main_menu",
	StateChoosingVariant:     "choosing_variant",
	StateReceiptNum:          "receipt_num",
	StatePackNum:             "pack_num",
	StateIDNum:               "id_num",
	StatePurity:              "purity",
	StateWeight:              "weight",
	StatePartnerName:         "partner_name",
	StateDealDirection:       "deal_direction",
	StateDealType:            "deal_type",
	StateAmount:              "amount",
	StateRate:                "rate",
	StateGiverPartnerName:    "giver_partner_name",
	StateReceiverPartnerName: "receiver_partner_name",
	StateDescription:         "description",
	StateConfirmation:        "confirmation",
	StateEditField:           "edit_field",
	StateEditValue:           "edit_value",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
