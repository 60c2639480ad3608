package bot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/runner"
)

// LambdaEvent is the payload of the serverless solver.
type LambdaEvent struct {
	ID      string              `json:"id"`
	Request runner.SolveRequest `json:"request"`
	// ReplySubject, when set, also gets the reply over NATS.
	ReplySubject string `json:"reply_subject,omitempty"`
}

// HandleLambdaEvent solves the event's position. nc may be nil when nobody
// listens for replies over NATS.
func HandleLambdaEvent(ctx context.Context, solver *runner.Solver, nc *nats.Conn, evt LambdaEvent) (*Reply, error) {
	logger := log.With().Str("id", evt.ID).Logger()
	resp, err := solver.Solve(ctx, evt.Request)
	reply := &Reply{Response: resp}
	if err != nil {
		reply = errorReply("could not solve", err)
	}
	if evt.ReplySubject == "" || nc == nil {
		return reply, err
	}
	data, merr := json.Marshal(reply)
	if merr != nil {
		return nil, merr
	}
	logger.Info().Str("subject", evt.ReplySubject).Msg("sending-reply-via-nats")
	rerr := retry.Do(
		func() error {
			// Only the acknowledgement matters.
			_, err := nc.Request(evt.ReplySubject, data, 3*time.Second)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			logger.Err(err).Uint("n", n).Msg("did-not-receive-ack-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if rerr != nil {
		logger.Err(rerr).Msg("reply-failed")
	}
	return reply, err
}

// LambdaClient invokes a deployed solver function.
type LambdaClient struct {
	client   *lambda.Client
	function string
}

// NewLambdaClient loads AWS credentials and region from the environment.
func NewLambdaClient(ctx context.Context, function string) (*LambdaClient, error) {
	if function == "" {
		return nil, errors.New("no solver function configured")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &LambdaClient{client: lambda.NewFromConfig(cfg), function: function}, nil
}

func (c *LambdaClient) Solve(ctx context.Context, req runner.SolveRequest) (*runner.SolveResponse, error) {
	payload, err := json.Marshal(LambdaEvent{Request: req})
	if err != nil {
		return nil, err
	}
	out, err := c.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(c.function),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, err
	}
	if out.FunctionError != nil {
		return nil, errors.New("solver function failed: " + aws.ToString(out.FunctionError) +
			": " + string(out.Payload))
	}
	return decodeReply(out.Payload)
}
