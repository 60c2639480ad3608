package bot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/runner"
)

const DefaultRequestTimeout = 10 * time.Second

// Client sends positions to a bot over NATS.
type Client struct {
	nc      *nats.Conn
	subject string
	timeout time.Duration
}

func NewClient(nc *nats.Conn, subject string) *Client {
	return &Client{nc: nc, subject: subject, timeout: DefaultRequestTimeout}
}

// Solve sends req to a bot and waits for its reply.
func (c *Client) Solve(ctx context.Context, req runner.SolveRequest) (*runner.SolveResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	res, err := c.nc.RequestWithContext(ctx, c.subject, data)
	if err != nil {
		if lerr := c.nc.LastError(); lerr != nil {
			log.Error().Err(lerr).Msg("nats-last-error")
		}
		return nil, err
	}
	log.Debug().Str("res", string(res.Data)).Msg("bot-reply")
	return decodeReply(res.Data)
}

func decodeReply(data []byte) (*runner.SolveResponse, error) {
	reply := Reply{}
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, errors.New("bot returned: " + reply.Error)
	}
	if reply.Response == nil {
		return nil, errors.New("bot returned an empty reply")
	}
	return reply.Response, nil
}
