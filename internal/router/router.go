package router

import (
	"context"

	"reddit-assistant/internal/model"
)

// Classify returns the intent of the first matching rule without running it.
func (r *Router) Classify(sess *model.Session, message string) Intent {
	return r.match(sess, newTurn(message)).Intent
}

// Route runs the first matching rule. Unresolved intents come back as
// IntentUnresolved errors carrying the corrective message for the user.
func (r *Router) Route(ctx context.Context, sess *model.Session, message string) (string, error) {
	t := newTurn(message)
	rule := r.match(sess, t)
	r.l.Infof(ctx, "%s: session %s routed to %s", LogPrefixRoute, sess.ID, rule.Intent)

	reply, err := rule.Handle(ctx, sess, t)
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (r *Router) match(sess *model.Session, t Turn) Rule {
	for _, rule := range r.rules {
		if rule.Match(sess, t) {
			return rule
		}
	}
	// The last rule always matches.
	return r.rules[len(r.rules)-1]
}
