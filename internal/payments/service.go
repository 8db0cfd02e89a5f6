// Package payments drives a user's purchase from "I have paid" through
// admin review, composing the pending tracker, the subscription ledger
// and the invite pool.
package payments

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clubgate/clubgate-bot/internal/invites"
	"github.com/clubgate/clubgate-bot/internal/ledger"
	"github.com/clubgate/clubgate-bot/internal/pending"
	"github.com/clubgate/clubgate-bot/internal/plans"
)

// ErrNoPendingPayment means a free-text message arrived from a user who
// never confirmed a plan; the message is not a transaction reference.
var ErrNoPendingPayment = errors.New("no pending payment for user")

// Claim is a submitted transaction reference awaiting admin review.
type Claim struct {
	ID          string
	UserID      int64
	Username    string
	Plan        plans.Plan
	TxReference string
}

type Service struct {
	log     *zap.SugaredLogger
	tracker *pending.Tracker
	ledger  *ledger.Ledger
	pool    *invites.Pool
}

func NewService(log *zap.SugaredLogger, tracker *pending.Tracker, l *ledger.Ledger, pool *invites.Pool) *Service {
	return &Service{
		log:     log,
		tracker: tracker,
		ledger:  l,
		pool:    pool,
	}
}

// ConfirmPaid remembers that the user claims to have paid for planID and
// now owes a transaction reference. A repeat confirmation overwrites the
// previous one.
func (s *Service) ConfirmPaid(userID int64, planID plans.ID, displayName string) {
	s.tracker.Begin(userID, planID, displayName)
	s.log.Infow("payment confirmed, awaiting reference",
		"user_id", userID, "plan", planID)
}

// SubmitReference consumes the user's pending payment, writes the
// subscription record and returns the claim the admin has to review.
// The ledger write happens here, before approval, matching the behavior
// the bot has always had.
func (s *Service) SubmitReference(userID int64, reference string) (*Claim, error) {
	p, ok := s.tracker.TakeAndClear(userID)
	if !ok {
		return nil, ErrNoPendingPayment
	}
	plan, ok := plans.ByID(p.PlanID)
	if !ok {
		return nil, fmt.Errorf("unknown plan %q for user %d", p.PlanID, userID)
	}
	if err := s.ledger.Upsert(p.DisplayName, userID, plan.DurationDays, plan.Price); err != nil {
		return nil, err
	}
	claim := &Claim{
		ID:          uuid.NewString(),
		UserID:      userID,
		Username:    p.DisplayName,
		Plan:        plan,
		TxReference: reference,
	}
	s.log.Infow("reference submitted",
		"claim_id", claim.ID, "user_id", userID, "username", claim.Username,
		"plan", plan.ID, "price", plan.Price)
	return claim, nil
}

// Approve allocates an invite link for the approved user. ok is false
// when the pool is exhausted.
func (s *Service) Approve(userID int64) (link string, ok bool, err error) {
	link, ok, err = s.pool.Allocate()
	if err != nil {
		return "", false, err
	}
	if !ok {
		s.log.Warnw("invite pool exhausted", "user_id", userID)
		return "", false, nil
	}
	s.log.Infow("invite issued", "user_id", userID)
	return link, true, nil
}

// Status reports the active subscription for username, nil when none.
func (s *Service) Status(username string) (*ledger.Info, error) {
	return s.ledger.LookupActive(username)
}
