package usecase

import (
	"time"

	"github.com/secmon-lab/later/pkg/service/datephrase"
	"github.com/secmon-lab/later/pkg/service/slack"
)

type UseCases struct {
	slackService slack.Service
	parser       DateParser
	clock        func() time.Time
	Later        *LaterUseCase
}

type Option func(*UseCases)

// WithClock replaces the wall clock used for reference instants and the local past check
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func WithDateParser(parser DateParser) Option {
	return func(uc *UseCases) {
		uc.parser = parser
	}
}

func New(slackService slack.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		slackService: slackService,
		parser:       datephrase.New(),
		clock:        time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Later = NewLaterUseCase(slackService, uc.parser, uc.clock)

	return uc
}
