package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"tipbot/internal/core/domain"
	"tipbot/pkg/apperror"
)

// atomicUnitsPerCoin converts display amounts to ledger atomic units.
const atomicUnitsPerCoin = 100

var mentionPattern = regexp.MustCompile(`\B@[a-zA-Z0-9_-]+`)

const (
	msgNoRecipient   = "No tip recipient defined."
	msgInvalidAmount = "Invalid tip amount."
)

// parseTipCommand extracts a TipCommand from a comment body that is
// known to start with the command token. The first @mention is the
// recipient; the token after the command token and the mention is the
// amount, converted to atomic units with ceiling rounding so the sender
// absorbs fractional sub-units.
func parseTipCommand(commandToken, body string, senderID int64, senderHandle string) (*domain.TipCommand, error) {
	mentions := mentionPattern.FindAllString(body, -1)
	if len(mentions) == 0 {
		return nil, apperror.InvalidArgument(msgNoRecipient)
	}
	recipient := strings.TrimPrefix(mentions[0], "@")

	rest := strings.TrimPrefix(body, commandToken)
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return nil, apperror.InvalidArgument(msgInvalidAmount)
	}

	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, apperror.InvalidArgument(msgInvalidAmount)
	}

	amount := int64(math.Ceil(value * atomicUnitsPerCoin))
	if amount <= 0 {
		return nil, apperror.InvalidArgument(msgInvalidAmount)
	}

	return &domain.TipCommand{
		SenderUsername:    senderHandle,
		SenderExternalID:  senderID,
		RecipientUsername: recipient,
		Amount:            amount,
	}, nil
}
