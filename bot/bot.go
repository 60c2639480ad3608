// Package bot serves the solver over NATS, and runs it as a serverless
// function whose answers travel back over NATS.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/runner"
)

// QueueGroup lets several bots share one subject.
const QueueGroup = "bestword-solvers"

// Reply is what the bot sends back for every request.
type Reply struct {
	Response *runner.SolveResponse `json:"response,omitempty"`
	Error    string                `json:"error,omitempty"`
}

func errorReply(message string, err error) *Reply {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &Reply{Error: msg}
}

type Bot struct {
	solver  *runner.Solver
	subject string
}

func NewBot(solver *runner.Solver, subject string) *Bot {
	return &Bot{solver: solver, subject: subject}
}

// Connect dials the NATS server, retrying with backoff.
func Connect(ctx context.Context, url string, attempts uint) (*nats.Conn, error) {
	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(url, nats.Name("bestword-bot"))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Str("url", url).Msg("nats-connect-retry")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// Handle answers one JSON-encoded SolveRequest.
func (b *Bot) Handle(ctx context.Context, data []byte) *Reply {
	req := runner.SolveRequest{}
	if err := json.Unmarshal(data, &req); err != nil {
		return errorReply("could not parse request", err)
	}
	resp, err := b.solver.Solve(ctx, req)
	if err != nil {
		return errorReply("could not solve", err)
	}
	log.Info().Str("rack", req.Rack).Str("move", resp.Move.ShortDescription()).
		Int64("ms", resp.ElapsedMs).Msg("solved")
	return &Reply{Response: resp}
}

// Serve answers requests on the bot's subject until ctx is done, then drains
// the subscription.
func (b *Bot) Serve(ctx context.Context, nc *nats.Conn) error {
	sub, err := nc.QueueSubscribe(b.subject, QueueGroup, func(m *nats.Msg) {
		log.Debug().Int("bytes", len(m.Data)).Msg("recv")
		data, err := json.Marshal(b.Handle(ctx, m.Data))
		if err != nil {
			// Should never happen, but the requester still needs an answer.
			data, _ = json.Marshal(errorReply("could not encode reply", err))
		}
		if err := m.Respond(data); err != nil {
			log.Err(err).Msg("respond")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	log.Info().Str("subject", b.subject).Str("queue", QueueGroup).Msg("listening")
	<-ctx.Done()
	return sub.Drain()
}
