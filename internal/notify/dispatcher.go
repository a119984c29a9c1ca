// Package notify builds, signs and sends channel notifications. A send never
// fails from the caller's point of view: errors end up in the Outcome, in the
// logs and, when applicable, in the retry queue.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/caip"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/types"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/validator"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/wallet"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrSend wraps every transmission failure reported by a Sender.
	ErrSend = errors.New("notification send failed")

	// ErrRejected marks a failure the notification API will never accept on
	// retry. Senders wrap it for permanent errors.
	ErrRejected = errors.New("notification rejected")

	// ErrNoRecipients is logged when every recipient of a request was malformed.
	ErrNoRecipients = errors.New("no valid recipients")
)

// Outcome is the terminal state of one Send call.
type Outcome int

const (
	OutcomeSent Outcome = iota + 1
	OutcomeFailedQueued
	OutcomeFailedDropped
	OutcomeSimulated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeFailedQueued:
		return "failed_queued"
	case OutcomeFailedDropped:
		return "failed_dropped"
	case OutcomeSimulated:
		return "simulated"
	default:
		return "unknown"
	}
}

// Failed reports whether the notification did not reach the API.
func (o Outcome) Failed() bool {
	return o == OutcomeFailedQueued || o == OutcomeFailedDropped
}

// Identity is the sending channel.
type Identity struct {
	Name string

	// Address is the channel's on-chain identity. When empty it is derived
	// from the channel's signing key.
	Address string

	ChainID int64
}

// KeyResolver returns the key a channel signs with.
type KeyResolver interface {
	ResolveSigningKey(ctx context.Context, channel string) (wallet.Key, error)
}

// Sender transmits a payload to the notification API. A nil error means the
// API accepted it. Failures that must not be retried wrap ErrRejected.
type Sender interface {
	Send(ctx context.Context, payload Payload) error
}

// RetryStore keeps failed payloads for the retry sweep.
type RetryStore interface {
	Insert(ctx context.Context, payload Payload) error
}

// Service is the notification dispatcher of one channel.
type Service interface {
	Send(ctx context.Context, req Request) Outcome
}

type service struct {
	identity Identity
	resolver KeyResolver
	sender   Sender

	retryStore RetryStore
	offChain   bool
	env        string
	clock      func() time.Time

	mu     sync.Mutex
	signer *wallet.Key

	notifications metric.Int64Counter
}

var _ Service = (*service)(nil)

// Send builds, signs and transmits one notification.
func (s *service) Send(ctx context.Context, req Request) Outcome {
	ctx, span := telemetry.Tracer().Start(ctx, "notify.Send", trace.WithAttributes(
		attribute.String("channel.name", s.identity.Name),
		attribute.String("notification.type", req.Type.String()),
	))
	defer span.End()

	outcome := s.send(ctx, req)

	span.SetAttributes(attribute.String("notification.outcome", outcome.String()))
	if outcome.Failed() {
		span.SetStatus(codes.Error, outcome.String())
	}
	s.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", s.identity.Name),
		attribute.String("outcome", outcome.String()),
	))

	return outcome
}

func (s *service) send(ctx context.Context, req Request) Outcome {
	if err := validator.Validate(req); err != nil {
		logger.Error(ctx, "invalid notification request",
			"channel.name", s.identity.Name,
			"error", err,
		)
		return OutcomeFailedDropped
	}

	payload, err := s.build(ctx, req)
	if err != nil {
		logger.Error(ctx, "could not build notification",
			"channel.name", s.identity.Name,
			"notification.type", req.Type.String(),
			"error", err,
		)
		return OutcomeFailedDropped
	}

	if req.Simulate {
		logger.Info(ctx, "notification simulated",
			"channel.name", s.identity.Name,
			"notification.type", req.Type.String(),
			"notification.recipients", len(payload.Recipients),
		)
		return OutcomeSimulated
	}

	err = s.sender.Send(ctx, payload)
	if err == nil {
		logger.Debug(ctx, "notification sent",
			"channel.name", s.identity.Name,
			"notification.type", req.Type.String(),
		)
		return OutcomeSent
	}

	err = fmt.Errorf("%w: %w", ErrSend, err)
	logger.Error(ctx, "notification send failed",
		"channel.name", s.identity.Name,
		"notification.type", req.Type.String(),
		"error", err,
	)

	return s.handleFailure(ctx, req, payload, err)
}

func (s *service) handleFailure(ctx context.Context, req Request, payload Payload, err error) Outcome {
	if errors.Is(err, ErrRejected) {
		return OutcomeFailedDropped
	}

	queue := s.offChain
	if req.Retry != nil {
		queue = *req.Retry
	}

	if !queue {
		return OutcomeFailedDropped
	}

	if s.retryStore == nil {
		logger.Warn(ctx, "no retry store registered, dropping notification",
			"channel.name", s.identity.Name,
		)
		return OutcomeFailedDropped
	}

	if err := s.retryStore.Insert(ctx, payload); err != nil {
		logger.Error(ctx, "could not queue failed notification",
			"channel.name", s.identity.Name,
			"error", err,
		)
		return OutcomeFailedDropped
	}

	return OutcomeFailedQueued
}

func (s *service) build(ctx context.Context, req Request) (Payload, error) {
	key, err := s.signingKey(ctx)
	if err != nil {
		return Payload{}, err
	}

	channelAddress := s.identity.Address
	if channelAddress == "" {
		channelAddress = key.Address()
	}

	channel, ok := caip.EIP155(s.identity.ChainID, channelAddress)
	if !ok {
		return Payload{}, fmt.Errorf("%w: channel address %q", caip.ErrFormatting, channelAddress)
	}

	sender, ok := caip.EIP155(s.identity.ChainID, key.Address())
	if !ok {
		return Payload{}, fmt.Errorf("%w: signer address %q", caip.ErrFormatting, key.Address())
	}

	recipients, err := s.recipients(req)
	if err != nil {
		return Payload{}, err
	}

	at := s.clock()
	if req.Timestamp != nil {
		at = *req.Timestamp
	}

	payload := Payload{
		Sender:       sender,
		Channel:      channel,
		Type:         req.Type,
		IdentityType: identityTypeDirect,
		Notification: Content{Title: req.Title, Body: req.Message},
		Data: Data{
			Title: req.PayloadTitle,
			Body:  AppendTimestamp(req.PayloadMessage, at),
			CTA:   req.CTA,
			Image: req.Image,
		},
		Recipients: recipients,
		Env:        s.env,
		Simulate:   req.Simulate,
	}

	if req.Expiry != nil {
		expiry := req.Expiry.Unix()
		payload.Expiry = &expiry
	}

	msg, err := payload.signingBytes()
	if err != nil {
		return Payload{}, err
	}

	sig, err := key.SignMessage(msg)
	if err != nil {
		return Payload{}, err
	}
	payload.Signature = encodeSignature(sig)

	return payload, nil
}

// signingKey resolves the channel key once per process. Failures are not
// cached so that a later call can recover.
func (s *service) signingKey(ctx context.Context) (wallet.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signer != nil {
		return *s.signer, nil
	}

	key, err := s.resolver.ResolveSigningKey(ctx, s.identity.Name)
	if err != nil {
		return wallet.Key{}, err
	}

	s.signer = &key
	return key, nil
}

func (s *service) recipients(req Request) ([]string, error) {
	if req.Type == Broadcast {
		return []string{BroadcastRecipient}, nil
	}

	var (
		recipients = make([]string, 0, len(req.Recipients))
		seen       = types.NewSet[string]()
	)
	for _, r := range req.Recipients {
		id, ok := s.formatRecipient(r)
		if ok && seen.AddNew(id) {
			recipients = append(recipients, id)
		}
	}

	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	return recipients, nil
}

// formatRecipient accepts CAIP-10 ids as they are and formats raw addresses
// on the channel's chain.
func (s *service) formatRecipient(r string) (string, bool) {
	if id, err := caip.Parse(r); err == nil {
		return id.String(), true
	}
	return caip.EIP155(s.identity.ChainID, r)
}

type config struct {
	retryStore RetryStore
	offChain   bool
	env        string
	clock      func() time.Time
	meter      metric.Meter
}

// Option configures the dispatcher built by New.
type Option func(*config)

// New returns a dispatcher for identity. Defaults: failed sends are queued when
// a retry store is registered, env "prod", wall clock, module meter.
func New(identity Identity, resolver KeyResolver, sender Sender, opts ...Option) *service {
	cfg := config{
		offChain: true,
		env:      "prod",
		clock:    time.Now,
		meter:    telemetry.Meter(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	notifications, err := cfg.meter.Int64Counter("showrunners.notifications",
		metric.WithDescription("Notification dispatch outcomes"),
	)
	if err != nil {
		logger.Warn(context.Background(), "could not create notifications counter", "error", err)
		notifications = noop.Int64Counter{}
	}

	return &service{
		identity:      identity,
		resolver:      resolver,
		sender:        sender,
		retryStore:    cfg.retryStore,
		offChain:      cfg.offChain,
		env:           cfg.env,
		clock:         cfg.clock,
		notifications: notifications,
	}
}

// WithRetryStore registers the store failed notifications are queued into.
func WithRetryStore(rs RetryStore) Option {
	return func(c *config) {
		c.retryStore = rs
	}
}

// WithOffChain sets whether failed sends are queued by default.
func WithOffChain(v bool) Option {
	return func(c *config) {
		c.offChain = v
	}
}

// WithEnv sets the notification API environment tag.
func WithEnv(env string) Option {
	return func(c *config) {
		c.env = env
	}
}

// WithClock replaces time.Now for the body timestamp marker.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithMeter replaces the meter the outcome counter is created on.
func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}
