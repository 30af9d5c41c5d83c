package publisher

import (
	"context"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

type TripPublisher interface {
	PublishTrip(ctx context.Context, trip *domain.Trip) error
}
