package listener

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultListenTimeout = 2 * time.Second
	defaultPhraseLimit   = 5 * time.Second
	defaultRetryDelay    = time.Second
	defaultResultBuffer  = 16
)

type loopImpl struct {
	transcriber Transcriber
	pipeline    Pipeline
	timeout     time.Duration
	phraseLimit time.Duration
	retryDelay  time.Duration
	logger      *logrus.Logger

	listening atomic.Bool
	results   chan Result
	done      chan struct{}
}

type Config struct {
	Transcriber Transcriber
	Pipeline    Pipeline

	// ListenTimeout bounds one transcription attempt. It must stay short so
	// Stop is observed within roughly one attempt.
	ListenTimeout time.Duration

	// PhraseLimit caps how long a single utterance may run on.
	PhraseLimit time.Duration

	// RetryDelay is slept after a transient transcription error.
	RetryDelay time.Duration

	// ResultBuffer sizes the results channel. When the owner falls behind,
	// further results are dropped with a warning rather than stalling the
	// loop.
	ResultBuffer int

	Logger *logrus.Logger
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Transcriber == nil {
		return nil, fmt.Errorf("transcriber is nil")
	}

	if cfg.Pipeline == nil {
		return nil, fmt.Errorf("pipeline is nil")
	}

	timeout := cfg.ListenTimeout
	if timeout == 0 {
		timeout = defaultListenTimeout
	}

	phraseLimit := cfg.PhraseLimit
	if phraseLimit == 0 {
		phraseLimit = defaultPhraseLimit
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = defaultRetryDelay
	}

	buffer := cfg.ResultBuffer
	if buffer == 0 {
		buffer = defaultResultBuffer
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &loopImpl{
		transcriber: cfg.Transcriber,
		pipeline:    cfg.Pipeline,
		timeout:     timeout,
		phraseLimit: phraseLimit,
		retryDelay:  retryDelay,
		logger:      logger,
		results:     make(chan Result, buffer),
	}, nil
}

// Start launches the background listening loop. It fails if the loop is
// already running.
func (l *loopImpl) Start() error {
	if !l.listening.CompareAndSwap(false, true) {
		return fmt.Errorf("already listening")
	}

	l.done = make(chan struct{})

	go l.run()

	return nil
}

// Stop clears the listening flag and waits for the loop to observe it at the
// top of its next iteration, which is bounded by one listen timeout plus one
// retry delay.
func (l *loopImpl) Stop() {
	if !l.listening.CompareAndSwap(true, false) {
		return
	}

	<-l.done
}

func (l *loopImpl) Results() <-chan Result {
	return l.results
}

func (l *loopImpl) run() {
	defer close(l.done)

	l.logger.Info("listening loop started")

	for l.listening.Load() {
		l.iterate()
	}

	l.logger.Info("listening loop stopped")
}

// iterate acquires and interprets one utterance. It recovers from panics so
// no single malformed utterance can terminate the loop.
func (l *loopImpl) iterate() {
	defer func() {
		if r := recover(); r != nil {
			l.logger.WithField("panic", r).Error("recovered in listening loop")
			time.Sleep(l.retryDelay)
		}
	}()

	text, err := l.transcriber.Transcribe(l.timeout, l.phraseLimit)
	if err != nil {
		l.logger.WithError(err).Warn("transcription failed, retrying")
		time.Sleep(l.retryDelay)

		return
	}

	if text == "" {
		return
	}

	command := l.pipeline.Process(text)
	response := l.pipeline.Execute(command)

	select {
	case l.results <- Result{Command: command, Response: response}:
	default:
		l.logger.WithField("label", command.Label).Warn("result channel full, dropping")
	}
}
