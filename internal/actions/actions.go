// Package actions parses inline-button callback payloads into tagged
// variants once, at the transport boundary, so handlers can switch
// exhaustively instead of comparing payload strings.
package actions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clubgate/clubgate-bot/internal/plans"
)

type Kind int

const (
	KindShowSubs Kind = iota
	KindShowPlans
	KindSelectPlan
	KindConfirmPaid
	KindApprove
	KindReject
)

// Action is a parsed callback payload. Plan is set for KindSelectPlan and
// KindConfirmPaid, UserID for KindApprove and KindReject.
type Action struct {
	Kind   Kind
	Plan   plans.ID
	UserID int64
}

var ErrMalformedPayload = errors.New("malformed callback payload")

const (
	dataShowSubs  = "subs"
	dataShowPlans = "plans"

	paidPrefix    = "paid_"
	approvePrefix = "approve_"
	rejectPrefix  = "reject_"
)

func Parse(data string) (Action, error) {
	data = strings.TrimSpace(data)
	switch data {
	case dataShowSubs:
		return Action{Kind: KindShowSubs}, nil
	case dataShowPlans:
		return Action{Kind: KindShowPlans}, nil
	}

	if id, ok := plans.Parse(data); ok {
		return Action{Kind: KindSelectPlan, Plan: id}, nil
	}
	if rest, ok := strings.CutPrefix(data, paidPrefix); ok {
		id, ok := plans.Parse(rest)
		if !ok {
			return Action{}, fmt.Errorf("%w: %q", ErrMalformedPayload, data)
		}
		return Action{Kind: KindConfirmPaid, Plan: id}, nil
	}
	if rest, ok := strings.CutPrefix(data, approvePrefix); ok {
		userID, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %q", ErrMalformedPayload, data)
		}
		return Action{Kind: KindApprove, UserID: userID}, nil
	}
	if rest, ok := strings.CutPrefix(data, rejectPrefix); ok {
		userID, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %q", ErrMalformedPayload, data)
		}
		return Action{Kind: KindReject, UserID: userID}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrMalformedPayload, data)
}

// Encoders produce the payload strings Parse understands. Keyboards must
// never build payloads by hand.

func ShowSubsData() string { return dataShowSubs }

func ShowPlansData() string { return dataShowPlans }

func SelectPlanData(id plans.ID) string { return string(id) }

func ConfirmPaidData(id plans.ID) string { return paidPrefix + string(id) }

func ApproveData(userID int64) string {
	return approvePrefix + strconv.FormatInt(userID, 10)
}

func RejectData(userID int64) string {
	return rejectPrefix + strconv.FormatInt(userID, 10)
}
