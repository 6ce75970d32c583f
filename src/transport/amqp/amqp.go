// Package amqp is an AMQP-backed binding of the start-request / solution-
// chunk message contract, an alternative to the in-process channel
// transport cmd/letrboxd uses by default. A dispatcher process publishes
// StartRequest messages to a work queue; worker processes consume them
// and publish SolutionChunk messages back to a results queue.
package amqp

import (
	"encoding/json"

	"github.com/asticode/go-astiamqp"
	"github.com/pkg/errors"

	"github.com/nordzilla/letrboxd/src"
	"github.com/nordzilla/letrboxd/src/util"
)

// ErrTransportClosed is returned by Publish* calls made after Close.
var ErrTransportClosed = errors.New("amqp transport is closed")

// Config names the two queues this binding uses.
type Config struct {
	URL          string
	RequestQueue string
	ResultQueue  string
}

// Transport publishes StartRequests and consumes SolutionChunks over a
// broker connection.
type Transport struct {
	client *astiamqp.Client
	cfg    Config
	closed *util.AtomicBool
}

// Dial connects to the broker named by cfg.URL.
func Dial(cfg Config) (*Transport, error) {
	client, err := astiamqp.New(astiamqp.Configuration{Addr: cfg.URL})
	if err != nil {
		return nil, errors.Wrap(err, "dialing amqp broker")
	}
	return &Transport{client: client, cfg: cfg, closed: util.NewAtomicBool(false)}, nil
}

// Close releases the broker connection. Publish* calls that check the
// closed flag after Close has set it return ErrTransportClosed; a call
// that passed that check before Close set it still goes on to publish.
func (t *Transport) Close() error {
	t.closed.Set(true)
	return t.client.Close()
}

// PublishRequest sends one worker's assigned range as a StartRequest.
func (t *Transport) PublishRequest(req lbox.StartRequest) error {
	if t.closed.Get() {
		return ErrTransportClosed
	}
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "marshaling start request")
	}
	return t.client.Publish(t.cfg.RequestQueue, body)
}

// ConsumeRequests registers fn to run on every StartRequest delivered to
// the request queue, until the subscription is cancelled by the caller.
func (t *Transport) ConsumeRequests(fn func(lbox.StartRequest)) error {
	return t.client.Subscribe(t.cfg.RequestQueue, func(body []byte) error {
		var req lbox.StartRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return errors.Wrap(err, "unmarshaling start request")
		}
		fn(req)
		return nil
	})
}

// PublishChunk sends a worker's SolutionChunk back to the results queue.
func (t *Transport) PublishChunk(chunk lbox.SolutionChunk) error {
	if t.closed.Get() {
		return ErrTransportClosed
	}
	body, err := json.Marshal(chunk)
	if err != nil {
		return errors.Wrap(err, "marshaling solution chunk")
	}
	return t.client.Publish(t.cfg.ResultQueue, body)
}

// ConsumeChunks registers fn to run on every SolutionChunk delivered to
// the results queue.
func (t *Transport) ConsumeChunks(fn func(lbox.SolutionChunk)) error {
	return t.client.Subscribe(t.cfg.ResultQueue, func(body []byte) error {
		var chunk lbox.SolutionChunk
		if err := json.Unmarshal(body, &chunk); err != nil {
			return errors.Wrap(err, "unmarshaling solution chunk")
		}
		fn(chunk)
		return nil
	})
}
